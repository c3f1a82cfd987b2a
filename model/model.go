// Package model holds the value types shared by every eclipse-geometry
// component: the Besselian-element input record, the observer's position,
// the per-instant evaluated geometry, and the solver's output.
package model

// EclipseRecord is an immutable set of Besselian-element polynomials
// describing the Moon's shadow geometry over a +-3 hour window around a
// reference instant t0. Coefficient slices are lowest-order first; missing
// higher orders are treated as zero by polynomial.Eval.
type EclipseRecord struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	// DateYmd is the calendar date of t0 (YYYY-MM-DD, proleptic Gregorian,
	// treated as the UTC civil date of the TT instant).
	DateYmd string `json:"dateYmd"`

	// T0TtHours is decimal hours of t0 within DateYmd, TT scale. Values >=
	// 24 carry into the following day.
	T0TtHours float64 `json:"t0TtHours"`

	// DeltaTSeconds is TT-UTC at t0; may be negative for historical records.
	DeltaTSeconds float64 `json:"deltaTSeconds"`

	TanF1 float64 `json:"tanF1"` // tangent of the penumbral cone half-angle
	TanF2 float64 `json:"tanF2"` // tangent of the umbral cone half-angle

	X  []float64 `json:"x"`
	Y  []float64 `json:"y"`
	D  []float64 `json:"d"`
	Mu []float64 `json:"mu"`
	L1 []float64 `json:"l1"`
	L2 []float64 `json:"l2"`

	// Optional metadata, passthrough only — the solver does not consult
	// these when computing a location's circumstances.
	GreatestEclipseLatDeg *float64 `json:"greatestEclipseLatDeg,omitempty"`
	GreatestEclipseLonDeg *float64 `json:"greatestEclipseLonDeg,omitempty"`
	GreatestEclipseUtc    *string  `json:"greatestEclipseUtc,omitempty"`
}

// Kind is the eclipse's descriptive, record-level classification. The
// solver never trusts it for per-location classification — see
// KindAtLocation on Circumstances.
type Kind string

const (
	KindTotal   Kind = "total"
	KindAnnular Kind = "annular"
	KindPartial Kind = "partial"
	KindHybrid  Kind = "hybrid"
)

// Observer is an immutable geodetic position on Earth.
type Observer struct {
	LatDeg float64 `json:"latDeg"` // [-90, 90]
	LonDeg float64 `json:"lonDeg"` // east-positive
	ElevM  float64 `json:"elevM"`  // meters above the WGS84 ellipsoid
}

// LocalKind is the eclipse classification at a specific observer location.
type LocalKind string

const (
	LocalNone    LocalKind = "none"
	LocalPartial LocalKind = "partial"
	LocalTotal   LocalKind = "total"
	LocalAnnular LocalKind = "annular"
)

// EvalAtT is the fully evaluated per-instant geometry used by both metric
// functions.
type EvalAtT struct {
	THours float64

	X, Y, D, Mu, L1, L2 float64

	Xi, Eta, Zeta float64

	// Delta is the shadow-axis distance on the fundamental plane.
	Delta float64

	// L1Obs/L2Obs are the penumbral/umbral radii projected onto the
	// observer's tangent plane. L2Obs may be negative (total shadow).
	L1Obs, L2Obs float64
}

// PenumbralMetric is f_pen(t) = Delta - L1Obs; its zeros are C1/C4.
func (e EvalAtT) PenumbralMetric() float64 { return e.Delta - e.L1Obs }

// UmbralMetric is f_umb(t) = Delta - |L2Obs|; its zeros are C2/C3.
func (e EvalAtT) UmbralMetric() float64 {
	l2 := e.L2Obs
	if l2 < 0 {
		l2 = -l2
	}
	return e.Delta - l2
}

// Circumstances is the solver's output for one (EclipseRecord, Observer) pair.
type Circumstances struct {
	EclipseID       string
	Visible         bool
	KindAtLocation  LocalKind
	C1Utc           *string
	C2Utc           *string
	MaxUtc          *string
	C3Utc           *string
	C4Utc           *string
	Magnitude       *float64
	DurationSeconds *float64
	Debug           *Debug
}

// Debug carries optional diagnostics: root lists, bracket counts, and the
// evaluated geometry at the selected maximum-obscuration time.
type Debug struct {
	PenumbralRootsHours []float64
	UmbralRootsHours    []float64
	PenumbralBrackets   int
	UmbralBrackets      int
	MaxEval             EvalAtT
}

// Overlays is the output of the ground-track tracer.
type Overlays struct {
	Visible []Polygon // penumbra envelope
	Central []Polygon // umbra/antumbra band
}

// Polygon is an ordered, closed list of (latDeg, lonDeg) points.
// lat in [-89.9, 89.9], lon in (-180, 180].
type Polygon []LatLon

// LatLon is a single ground-track point.
type LatLon struct {
	LatDeg float64
	LonDeg float64
}
