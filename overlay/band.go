package overlay

import (
	"math"
	"sort"

	"github.com/stellarpath/eclipsecore/model"
)

// frameOutline is one central-band cross-section: every outline point and
// each point's lateral coordinate relative to the sweep direction
// (negative = right of travel, positive = left). The frame's axis center is
// kept in a separate slice by buildCentralBand.
type frameOutline struct {
	points  []model.LatLon
	lateral []float64
}

// buildCentralBand implements spec.md §4.7 step 4. Returns nil if the axis
// never meets the Earth during the window, or meets it for only one frame
// (no sweep direction to project against).
func buildCentralBand(record model.EclipseRecord, cfg Config) []model.LatLon {
	var centers []model.LatLon
	var frames []frameOutline
	tMin, tMax := -cfg.WindowHours, cfg.WindowHours
	const slack = 1e-9
	for t := tMin; t <= tMax+slack; t += cfg.CentralSweepStepHours {
		lat, lon, ok := axisPoint(record, t)
		if !ok {
			continue
		}
		outline := traceOutline(lat, lon, umbralMetricAt(record, t), cfg.CentralBearings, cfg.CentralMaxRadiusDeg, cfg.BisectIterations)
		if len(outline) == 0 {
			continue
		}
		centers = append(centers, model.LatLon{LatDeg: lat, LonDeg: lon})
		frames = append(frames, frameOutline{points: outline})
	}
	if len(centers) < 2 {
		return nil
	}

	sweepBearing := initialBearing(centers[0].LatDeg, centers[0].LonDeg, centers[len(centers)-1].LatDeg, centers[len(centers)-1].LonDeg)

	for fi := range frames {
		center := centers[fi]
		lateral := make([]float64, len(frames[fi].points))
		for pi, p := range frames[fi].points {
			d := angularDistanceDeg(center.LatDeg, center.LonDeg, p.LatDeg, p.LonDeg)
			theta := initialBearing(center.LatDeg, center.LonDeg, p.LatDeg, p.LonDeg)
			lateral[pi] = d * math.Sin((sweepBearing-theta)*deg2rad)
		}
		frames[fi].lateral = lateral
	}

	leftEdge := make([]model.LatLon, len(frames))
	rightEdge := make([]model.LatLon, len(frames))
	for fi, f := range frames {
		leftIdx, rightIdx := 0, 0
		for pi := 1; pi < len(f.lateral); pi++ {
			if f.lateral[pi] > f.lateral[leftIdx] {
				leftIdx = pi
			}
			if f.lateral[pi] < f.lateral[rightIdx] {
				rightIdx = pi
			}
		}
		leftEdge[fi] = f.points[leftIdx]
		rightEdge[fi] = f.points[rightIdx]
	}

	// leftEdge runs frame0(left)->frameN(left). trailingCap picks up there
	// and crosses frameN left-to-right (descending lateral: left=largest
	// first), landing where rightEdge-reversed's frameN(right) starts.
	trailingCap := sortedByLateral(frames[len(frames)-1], false)
	// rightEdge naturally runs frame0(right)->frameN(right); reversed it
	// continues from trailingCap's end back to frame0(right).
	reverseLatLon(rightEdge)
	// leadingCap then closes the loop at frame0, right->left (ascending
	// lateral: right=smallest first), landing back at leftEdge's start.
	leadingCap := sortedByLateral(frames[0], true)

	band := make([]model.LatLon, 0, 2*len(frames)+len(leadingCap)+len(trailingCap)+1)
	band = append(band, leftEdge...)
	band = append(band, trailingCap...)
	band = append(band, rightEdge...)
	band = append(band, leadingCap...)
	if len(band) > 0 {
		band = append(band, band[0])
	}

	return simplify(band, cfg.SimplifyToleranceDeg)
}

// sortedByLateral returns f's points sorted by lateral coordinate: ascending
// (right->left, since right is the negative end) when ascending is true,
// descending (left->right) otherwise.
func sortedByLateral(f frameOutline, ascending bool) []model.LatLon {
	idx := make([]int, len(f.points))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if ascending {
			return f.lateral[idx[a]] < f.lateral[idx[b]]
		}
		return f.lateral[idx[a]] > f.lateral[idx[b]]
	})
	out := make([]model.LatLon, len(idx))
	for i, j := range idx {
		out[i] = f.points[j]
	}
	return out
}

func reverseLatLon(pts []model.LatLon) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
