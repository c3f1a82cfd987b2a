// Package geodetic converts an observer's WGS84 geodetic position into
// direction cosines (ξ, η, ζ) on the eclipse fundamental plane, given the
// eclipse's instantaneous declination and Greenwich hour angle.
package geodetic

import "math"

const (
	deg2rad = math.Pi / 180.0

	// WGS84 ellipsoid, matching the constants used throughout the corpus'
	// geodetic conversions (flattening, then e^2 = f(2-f)).
	flattening     = 1.0 / 298.257223563
	eccentricity2  = flattening * (2.0 - flattening)
	equatorialRadM = 6_378_137.0
)

// FundamentalPlane computes the observer's direction cosines (ξ, η, ζ) on
// the fundamental plane, per spec §4.4.
//
// latDeg, lonDeg are the observer's WGS84 geodetic latitude/longitude in
// degrees (lonDeg east-positive); dDeg is the Besselian declination of the
// shadow axis at the instant of interest; muDeg is the Besselian Greenwich
// hour angle of the shadow axis; elevM is the observer's height above the
// WGS84 ellipsoid in meters.
func FundamentalPlane(latDeg, lonDeg, dDeg, muDeg, elevM float64) (xi, eta, zeta float64) {
	lat := latDeg * deg2rad
	d := dDeg * deg2rad

	// Hour angle: Besselian mu plus east-positive longitude.
	h := (muDeg + lonDeg) * deg2rad

	hElev := elevM / equatorialRadM

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	n := 1.0 / math.Sqrt(1.0-eccentricity2*sinLat*sinLat)

	rhoCosPhiPrime := (n + hElev) * cosLat
	rhoSinPhiPrime := (n*(1.0-eccentricity2) + hElev) * sinLat

	sinH, cosH := math.Sin(h), math.Cos(h)
	sinD, cosD := math.Sin(d), math.Cos(d)

	xi = rhoCosPhiPrime * sinH
	eta = rhoSinPhiPrime*cosD - rhoCosPhiPrime*cosH*sinD
	zeta = rhoSinPhiPrime*sinD + rhoCosPhiPrime*cosH*cosD
	return xi, eta, zeta
}
