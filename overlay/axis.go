package overlay

import (
	"math"

	"github.com/stellarpath/eclipsecore/angle"
	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/polynomial"
)

// lineSpherePointDirection returns the two distances, along direction from
// point, at which the line intersects the sphere centered at center with the
// given radius. Both NaN if the line misses the sphere.
//
// Adapted from geometry.IntersectLineSphere, which only solves the
// origin-through-endpoint case; the shadow axis here is a line parallel to
// (but offset from) that origin, so the quadratic is re-derived for an
// arbitrary point/direction pair.
func lineSpherePointDirection(point, direction, center [3]float64, radius float64) (near, far float64) {
	dx := point[0] - center[0]
	dy := point[1] - center[1]
	dz := point[2] - center[2]

	b := 2.0 * (direction[0]*dx + direction[1]*dy + direction[2]*dz)
	c := dx*dx + dy*dy + dz*dz - radius*radius
	discriminant := b*b - 4.0*c
	if discriminant < 0 {
		return math.NaN(), math.NaN()
	}

	sq := math.Sqrt(discriminant)
	near = (-b - sq) / 2.0
	far = (-b + sq) / 2.0
	return near, far
}

// axisPoint locates the geocentric (lat, lon) where the Moon's shadow axis
// meets the Earth's surface at tHours, per spec.md §4.7 step 1. ok is false
// when x²+y² exceeds 2.5 (the axis passes too far from Earth to be worth
// tracing).
func axisPoint(record model.EclipseRecord, tHours float64) (latDeg, lonDeg float64, ok bool) {
	x := polynomial.Eval(record.X, tHours)
	y := polynomial.Eval(record.Y, tHours)
	d := polynomial.Eval(record.D, tHours)
	mu := polynomial.Eval(record.Mu, tHours)

	if x*x+y*y > 2.5 {
		return 0, 0, false
	}

	_, zeta0 := lineSpherePointDirection(
		[3]float64{x, y, 0}, [3]float64{0, 0, 1}, [3]float64{0, 0, 0}, 1.0,
	)
	if math.IsNaN(zeta0) || zeta0 < 0 {
		zeta0 = 0
	}

	dRad := d * deg2rad
	sinD, cosD := math.Sin(dRad), math.Cos(dRad)

	sinLat := clampUnit(sinD*zeta0 + y*cosD)
	latRad := math.Asin(sinLat)

	h := math.Atan2(x, cosD*zeta0-y*sinD)
	lon := angle.NormalizeSignedLon(h*rad2deg - mu)

	return angle.ClampLatitude(latRad * rad2deg), lon, true
}
