// Package overlay implements the eclipse ground-track tracer: the
// penumbra's visibility envelope and the umbral/antumbral central band
// swept out by the Moon's shadow over an EclipseRecord's validity window
// (spec.md §4.7). Like the contact solver, it is pure and re-entrant: no
// shared state, safe to run concurrently across eclipses.
package overlay

import "github.com/stellarpath/eclipsecore/model"

// Build traces the ground track for record and returns its visibility
// envelope and central band. Either polygon set may be empty if the shadow
// axis never meets the Earth's surface during the window (spec.md §7:
// NonFinitePolynomial / degenerate geometry never panics or errors here —
// an eclipse invisible everywhere on Earth simply has no overlays).
func Build(record model.EclipseRecord, cfg Config) model.Overlays {
	var overlays model.Overlays

	if envelope := buildPenumbraEnvelope(record, cfg); envelope != nil {
		overlays.Visible = []model.Polygon{model.Polygon(envelope)}
	}
	if band := buildCentralBand(record, cfg); band != nil {
		overlays.Central = []model.Polygon{model.Polygon(band)}
	}

	return overlays
}
