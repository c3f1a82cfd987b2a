package overlay

import (
	"math"

	"github.com/stellarpath/eclipsecore/model"
)

// simplify reduces pts via Douglas-Peucker at toleranceDeg, treating
// (lat, lon) as flat planar coordinates — adequate at the tracer's small
// (<=80°) angular scales, with longitude deltas unwrapped across the
// antimeridian (spec.md §4.7). Endpoints are always kept.
func simplify(pts []model.LatLon, toleranceDeg float64) []model.LatLon {
	if len(pts) < 3 {
		return pts
	}
	keep := make([]bool, len(pts))
	keep[0] = true
	keep[len(pts)-1] = true
	douglasPeucker(pts, 0, len(pts)-1, toleranceDeg, keep)

	out := make([]model.LatLon, 0, len(pts))
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}

func douglasPeucker(pts []model.LatLon, lo, hi int, tolerance float64, keep []bool) {
	if hi <= lo+1 {
		return
	}
	maxDist := -1.0
	maxIdx := -1
	for i := lo + 1; i < hi; i++ {
		d := perpendicularDistance(pts[i], pts[lo], pts[hi])
		if d > maxDist {
			maxDist, maxIdx = d, i
		}
	}
	if maxDist <= tolerance {
		return
	}
	keep[maxIdx] = true
	douglasPeucker(pts, lo, maxIdx, tolerance, keep)
	douglasPeucker(pts, maxIdx, hi, tolerance, keep)
}

// perpendicularDistance computes the distance from p to the line through a
// and b, in the same flat (lat, lon) units as toleranceDeg. Both p and b are
// expressed as lon/lat offsets from a (spec.md §4.7: "longitude dateline
// wrapping during edge projection") so a band sweeping across the
// antimeridian (e.g. lon 179° -> -179°) sees a true ~2° delta rather than
// the raw ~358° one.
func perpendicularDistance(p, a, b model.LatLon) float64 {
	bx, by := lonLatDelta(a, b)
	px, py := lonLatDelta(a, p)
	if bx == 0 && by == 0 {
		return math.Hypot(px, py)
	}
	num := math.Abs(bx*py - by*px)
	den := math.Hypot(bx, by)
	return num / den
}

// lonLatDelta returns to's (lon, lat) offset from from, with the longitude
// component unwrapped to its shortest signed form in (-180, 180].
func lonLatDelta(from, to model.LatLon) (dx, dy float64) {
	dx = to.LonDeg - from.LonDeg
	if dx > 180 {
		dx -= 360
	} else if dx < -180 {
		dx += 360
	}
	dy = to.LatDeg - from.LatDeg
	return dx, dy
}
