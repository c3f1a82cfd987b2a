// Package shadow evaluates the full per-instant eclipse geometry: the
// Besselian polynomials, the observer's fundamental-plane direction
// cosines, and the distance/radius quantities the contact solver searches
// for roots of.
package shadow

import (
	"math"

	"github.com/stellarpath/eclipsecore/geodetic"
	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/polynomial"
)

// Evaluate computes model.EvalAtT for record/observer at tHours (hours from
// t0, TT). Evaluation order is fixed — see spec.md §9: "do not optimize by
// reassociating the geometric evaluator" — L1Obs and L2Obs must be computed
// in exactly the order below or snapshot tests drift in the last bit.
func Evaluate(record model.EclipseRecord, observer model.Observer, tHours float64) model.EvalAtT {
	x := polynomial.Eval(record.X, tHours)
	y := polynomial.Eval(record.Y, tHours)
	d := polynomial.Eval(record.D, tHours)
	mu := polynomial.Eval(record.Mu, tHours)
	l1 := polynomial.Eval(record.L1, tHours)
	l2 := polynomial.Eval(record.L2, tHours)

	xi, eta, zeta := geodetic.FundamentalPlane(observer.LatDeg, observer.LonDeg, d, mu, observer.ElevM)

	delta := math.Hypot(x-xi, y-eta)
	l1Obs := l1 - zeta*record.TanF1
	l2Obs := l2 - zeta*record.TanF2

	return model.EvalAtT{
		THours: tHours,
		X:      x, Y: y, D: d, Mu: mu, L1: l1, L2: l2,
		Xi: xi, Eta: eta, Zeta: zeta,
		Delta: delta,
		L1Obs: l1Obs, L2Obs: l2Obs,
	}
}

// Cache memoizes Evaluate per call, keyed on the exact tHours bits the
// bracketer/bisector produced, so every unique t is evaluated at most once
// and floating-point evaluation order stays deterministic across a single
// solver call. A Cache is never shared across calls (spec.md §5).
type Cache struct {
	record   model.EclipseRecord
	observer model.Observer
	values   map[float64]model.EvalAtT
}

// NewCache constructs a per-call evaluation cache for record/observer.
func NewCache(record model.EclipseRecord, observer model.Observer) *Cache {
	return &Cache{record: record, observer: observer, values: make(map[float64]model.EvalAtT)}
}

// At returns the cached (or freshly computed) EvalAtT for tHours.
func (c *Cache) At(tHours float64) model.EvalAtT {
	if v, ok := c.values[tHours]; ok {
		return v
	}
	v := Evaluate(c.record, c.observer, tHours)
	c.values[tHours] = v
	return v
}

// PenumbralMetric evaluates f_pen(tHours) via the cache.
func (c *Cache) PenumbralMetric(tHours float64) float64 {
	return c.At(tHours).PenumbralMetric()
}

// UmbralMetric evaluates f_umb(tHours) via the cache.
func (c *Cache) UmbralMetric(tHours float64) float64 {
	return c.At(tHours).UmbralMetric()
}
