package overlay

import (
	"math"

	"github.com/stellarpath/eclipsecore/model"
)

// buildPenumbraEnvelope implements spec.md §4.7 step 3: sweep axis centers
// across the window, trace a penumbra outline at each, bucket every
// boundary point by bearing from the overall spherical centroid, and fill
// any empty buckets by interpolating between their nearest non-empty
// neighbors. Returns nil if the shadow axis never meets the Earth during
// the window.
func buildPenumbraEnvelope(record model.EclipseRecord, cfg Config) []model.LatLon {
	var allPts []model.LatLon
	tMin, tMax := -cfg.WindowHours, cfg.WindowHours
	const slack = 1e-9
	for t := tMin; t <= tMax+slack; t += cfg.PenumbraSweepStepHours {
		lat, lon, ok := axisPoint(record, t)
		if !ok {
			continue
		}
		outline := traceOutline(lat, lon, penumbralMetricAt(record, t), cfg.PenumbraBearings, cfg.PenumbraMaxRadiusDeg, cfg.BisectIterations)
		allPts = append(allPts, outline...)
	}
	if len(allPts) == 0 {
		return nil
	}

	centroidLat, centroidLon := sphericalCentroid(allPts)

	buckets := make([]*model.LatLon, cfg.EnvelopeBuckets)
	bucketWidth := 360.0 / float64(cfg.EnvelopeBuckets)
	for i := range allPts {
		p := allPts[i]
		bearing := initialBearing(centroidLat, centroidLon, p.LatDeg, p.LonDeg)
		idx := int(bearing / bucketWidth)
		if idx >= cfg.EnvelopeBuckets {
			idx = cfg.EnvelopeBuckets - 1
		}
		if buckets[idx] == nil {
			buckets[idx] = &allPts[i]
			continue
		}
		if angularDistanceDeg(centroidLat, centroidLon, p.LatDeg, p.LonDeg) >
			angularDistanceDeg(centroidLat, centroidLon, buckets[idx].LatDeg, buckets[idx].LonDeg) {
			buckets[idx] = &allPts[i]
		}
	}

	fillEmptyBuckets(buckets)

	polygon := make([]model.LatLon, 0, cfg.EnvelopeBuckets+1)
	for _, b := range buckets {
		if b != nil {
			polygon = append(polygon, *b)
		}
	}
	if len(polygon) == 0 {
		return nil
	}
	polygon = append(polygon, polygon[0])
	return polygon
}

// sphericalCentroid averages the unit-vector representations of pts and
// projects the result back onto the sphere.
func sphericalCentroid(pts []model.LatLon) (float64, float64) {
	var sx, sy, sz float64
	for _, p := range pts {
		latRad := p.LatDeg * deg2rad
		lonRad := p.LonDeg * deg2rad
		cosLat := math.Cos(latRad)
		sx += cosLat * math.Cos(lonRad)
		sy += cosLat * math.Sin(lonRad)
		sz += math.Sin(latRad)
	}
	n := float64(len(pts))
	sx, sy, sz = sx/n, sy/n, sz/n
	lat := math.Atan2(sz, math.Hypot(sx, sy)) * rad2deg
	lon := math.Atan2(sy, sx) * rad2deg
	return lat, lon
}

// fillEmptyBuckets fills every nil slot by spherical interpolation between
// its nearest non-empty neighbors, searching circularly in both directions.
func fillEmptyBuckets(buckets []*model.LatLon) {
	anyFilled := false
	for _, b := range buckets {
		if b != nil {
			anyFilled = true
			break
		}
	}
	if !anyFilled {
		return
	}

	for i := range buckets {
		if buckets[i] != nil {
			continue
		}
		left, leftDist := nearestFilled(buckets, i, -1)
		right, rightDist := nearestFilled(buckets, i, 1)
		if left == nil || right == nil {
			continue
		}
		gap := leftDist + rightDist
		t := float64(leftDist) / float64(gap)
		lat, lon := sphericalInterp(t, left.LatDeg, left.LonDeg, right.LatDeg, right.LonDeg)
		buckets[i] = &model.LatLon{LatDeg: lat, LonDeg: lon}
	}
}

// nearestFilled walks buckets circularly from i in the given direction
// (-1 or +1) and returns the first non-nil entry and its step distance.
func nearestFilled(buckets []*model.LatLon, i, dir int) (*model.LatLon, int) {
	n := len(buckets)
	for step := 1; step <= n; step++ {
		idx := ((i+dir*step)%n + n) % n
		if buckets[idx] != nil {
			return buckets[idx], step
		}
	}
	return nil, 0
}
