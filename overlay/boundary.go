package overlay

import (
	"github.com/stellarpath/eclipsecore/angle"
	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/shadow"
)

// metricFunc evaluates a shadow metric (penumbral or umbral) at a ground
// position for a fixed instant. Negative means inside the shadow.
type metricFunc func(latDeg, lonDeg float64) float64

func penumbralMetricAt(record model.EclipseRecord, tHours float64) metricFunc {
	return func(latDeg, lonDeg float64) float64 {
		obs := model.Observer{LatDeg: latDeg, LonDeg: lonDeg}
		return shadow.Evaluate(record, obs, tHours).PenumbralMetric()
	}
}

func umbralMetricAt(record model.EclipseRecord, tHours float64) metricFunc {
	return func(latDeg, lonDeg float64) float64 {
		obs := model.Observer{LatDeg: latDeg, LonDeg: lonDeg}
		return shadow.Evaluate(record, obs, tHours).UmbralMetric()
	}
}

// traceOutline implements spec.md §4.7 step 2 around (centerLat, centerLon):
// for each of bearings evenly-spaced directions, bisect along the bearing
// between the center and a point rMaxDeg away to find the shadow boundary.
func traceOutline(centerLat, centerLon float64, metric metricFunc, bearings int, rMaxDeg float64, bisectIterations int) []model.LatLon {
	centerVal := metric(centerLat, centerLon)

	pts := make([]model.LatLon, 0, bearings)
	for i := 0; i < bearings; i++ {
		bearingDeg := 360.0 * float64(i) / float64(bearings)
		lat, lon, ok := boundaryOnBearing(centerLat, centerLon, bearingDeg, rMaxDeg, centerVal, metric, bisectIterations)
		if !ok {
			continue
		}
		pts = append(pts, model.LatLon{LatDeg: angle.ClampLatitude(lat), LonDeg: lon})
	}
	return pts
}

// boundaryOnBearing radially bisects a single bearing for the shadow
// boundary. ok is false when no boundary exists on this bearing (both the
// center and the far point lie outside the shadow).
func boundaryOnBearing(centerLat, centerLon, bearingDeg, rMaxDeg, centerVal float64, metric metricFunc, maxIter int) (float64, float64, bool) {
	farLat, farLon := destinationPoint(centerLat, centerLon, bearingDeg, rMaxDeg)
	farVal := metric(farLat, farLon)

	switch {
	case centerVal >= 0 && farVal >= 0:
		return 0, 0, false
	case centerVal < 0 && farVal < 0:
		return farLat, farLon, true
	}

	lo, hi := 0.0, rMaxDeg
	loVal := centerVal
	for i := 0; i < maxIter; i++ {
		mid := (lo + hi) / 2
		midLat, midLon := destinationPoint(centerLat, centerLon, bearingDeg, mid)
		midVal := metric(midLat, midLon)
		if sameSign(midVal, loVal) {
			lo, loVal = mid, midVal
		} else {
			hi = mid
		}
	}
	mid := (lo + hi) / 2
	boundaryLat, boundaryLon := destinationPoint(centerLat, centerLon, bearingDeg, mid)
	return boundaryLat, boundaryLon, true
}

func sameSign(a, b float64) bool {
	return (a < 0) == (b < 0)
}
