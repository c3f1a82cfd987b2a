package overlay

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/stellarpath/eclipsecore/angle"
)

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

// destinationPoint returns the point reached by travelling distDeg (degrees
// of great-circle arc) along bearingDeg from (latDeg, lonDeg), via the
// standard spherical direct formula (spec.md §4.7). lon is normalized to
// (-180, 180].
func destinationPoint(latDeg, lonDeg, bearingDeg, distDeg float64) (float64, float64) {
	phi1 := latDeg * deg2rad
	lambda1 := lonDeg * deg2rad
	theta := bearingDeg * deg2rad
	delta := distDeg * deg2rad

	sinPhi2 := math.Sin(phi1)*math.Cos(delta) + math.Cos(phi1)*math.Sin(delta)*math.Cos(theta)
	sinPhi2 = clampUnit(sinPhi2)
	phi2 := math.Asin(sinPhi2)

	y := math.Sin(theta) * math.Sin(delta) * math.Cos(phi1)
	x := math.Cos(delta) - math.Sin(phi1)*sinPhi2
	lambda2 := lambda1 + math.Atan2(y, x)

	return phi2 * rad2deg, angle.NormalizeSignedLon(lambda2 * rad2deg)
}

// initialBearing returns the forward azimuth, degrees from true north, from
// (lat1, lon1) to (lat2, lon2).
func initialBearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * deg2rad
	phi2 := lat2 * deg2rad
	dLambda := (lon2 - lon1) * deg2rad

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return angle.Normalize360(math.Atan2(y, x) * rad2deg)
}

// angularDistanceDeg returns the great-circle (haversine-equivalent) angular
// separation between two points, in degrees, via golang/geo's s2.
func angularDistanceDeg(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Degrees()
}

// sphericalInterp returns the point at parameter t (0 at a, 1 at b) along
// the geodesic between two points, via golang/geo's s2.Interpolate, which
// places the result at fraction t of the great-circle arc from a to b.
func sphericalInterp(t, lat1, lon1, lat2, lon2 float64) (float64, float64) {
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(lat1, lon1))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(lat2, lon2))
	p := s2.Interpolate(t, a, b)
	ll := s2.LatLngFromPoint(p)
	return ll.Lat.Degrees(), angle.NormalizeSignedLon(ll.Lng.Degrees())
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
