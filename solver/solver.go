// Package solver implements the eclipse contact solver: given an
// EclipseRecord and an Observer, it locates the four contact times, the
// time of maximum obscuration, the visibility flag, the local eclipse
// classification, magnitude, and duration of centrality (spec.md §4.6, §4.7).
package solver

import (
	"math"
	"sort"

	"github.com/stellarpath/eclipsecore/instant"
	"github.com/stellarpath/eclipsecore/model"
	"github.com/stellarpath/eclipsecore/roots"
	"github.com/stellarpath/eclipsecore/shadow"
)

// Compute returns the Circumstances for record observed from observer.
// Side-effect-free and re-entrant: every call constructs and discards its
// own evaluation cache (spec.md §5); multiple calls may run concurrently on
// disjoint inputs.
//
// Compute never returns an error. A malformed record.DateYmd makes every
// UTC field in the result unformattable; Circumstances.Debug (when
// requested) still carries the raw root/bracket data, but all *Utc fields
// are nil in that case — see solver.ComputeUTC for a variant that surfaces
// the malformed-date condition as a typed error instead.
func Compute(record model.EclipseRecord, observer model.Observer, cfg Config) model.Circumstances {
	cache := shadow.NewCache(record, observer)
	tMin, tMax := -cfg.WindowHours, cfg.WindowHours

	penRoots, penBrackets := findRoots(cache.PenumbralMetric, tMin, tMax, cfg)
	umbRoots, umbBrackets := findRoots(cache.UmbralMetric, tMin, tMax, cfg)

	var c1, c4 *float64
	if len(penRoots) >= 1 {
		c1 = &penRoots[0]
	}
	if len(penRoots) >= 2 {
		c4 = &penRoots[len(penRoots)-1]
	}

	var c2, c3 *float64
	if len(umbRoots) >= 2 {
		c2 = &umbRoots[0]
		c3 = &umbRoots[len(umbRoots)-1]
	}

	visible := c1 != nil && c4 != nil

	maxT, kind := selectMaximum(cache, tMin, tMax, c1, c2, c3, c4, visible, cfg)
	maxEval := cache.At(maxT)

	result := model.Circumstances{
		EclipseID:      record.ID,
		Visible:        visible,
		KindAtLocation: kind,
	}

	result.C1Utc = formatContact(record, c1)
	result.C2Utc = formatContact(record, c2)
	result.C3Utc = formatContact(record, c3)
	result.C4Utc = formatContact(record, c4)
	maxT2 := maxT
	result.MaxUtc = formatContact(record, &maxT2)

	if c2 != nil && c3 != nil && *c3 > *c2 {
		d := (*c3 - *c2) * 3600.0
		result.DurationSeconds = &d
	}

	result.Magnitude = magnitude(visible, kind, maxEval)

	if cfg.Debug {
		result.Debug = &model.Debug{
			PenumbralRootsHours: penRoots,
			UmbralRootsHours:    umbRoots,
			PenumbralBrackets:   penBrackets,
			UmbralBrackets:      umbBrackets,
			MaxEval:             maxEval,
		}
	}

	return result
}

// findRoots brackets f over [tMin,tMax] at the coarse step and bisects each
// bracket, discarding null or non-finite results, returning the surviving
// roots sorted ascending plus the number of brackets considered.
func findRoots(f func(float64) float64, tMin, tMax float64, cfg Config) ([]float64, int) {
	brackets, err := roots.Find(f, tMin, tMax, cfg.CoarseStepHours)
	if err != nil {
		return nil, 0
	}
	var out []float64
	for _, b := range brackets {
		r, ok := roots.Bisect(f, b.A, b.B, cfg.BisectTolHours, cfg.BisectMaxIterations)
		if !ok || !finite(r.THours) {
			continue
		}
		out = append(out, r.THours)
	}
	sort.Float64s(out)
	return out, len(brackets)
}

// selectMaximum implements spec.md §4.6 step 6: choose the time of maximum
// obscuration and the local classification that goes with it.
func selectMaximum(cache *shadow.Cache, tMin, tMax float64, c1, c2, c3, c4 *float64, visible bool, cfg Config) (float64, model.LocalKind) {
	switch {
	case visible && c2 != nil && c3 != nil && *c3 > *c2:
		t := scanMinimum(cache.UmbralMetric, *c2, *c3, cfg.FineStepHours)
		if cache.At(t).L2Obs < 0 {
			return t, model.LocalTotal
		}
		return t, model.LocalAnnular

	case visible:
		t := scanMinimum(cache.PenumbralMetric, *c1, *c4, cfg.FineStepHours)
		return t, model.LocalPartial

	default:
		t := scanMinimum(func(t float64) float64 { return cache.At(t).Delta }, tMin, tMax, cfg.FineStepHours)
		return t, model.LocalNone
	}
}

// scanMinimum samples f on [a,b] at the given step (inclusive of b) and
// returns the t of the smallest finite sample.
func scanMinimum(f func(float64) float64, a, b, step float64) float64 {
	bestT := a
	bestV := math.Inf(1)
	const slack = 1e-9
	for t := a; t <= b+slack; t += step {
		v := f(t)
		if finite(v) && v < bestV {
			bestV = v
			bestT = t
		}
	}
	if bestV == math.Inf(1) {
		// Every sample was non-finite; fall back to the midpoint so the
		// caller always has a definite instant to format.
		return (a + b) / 2
	}
	return bestT
}

// magnitude implements spec.md §4.6 step 9.
func magnitude(visible bool, kind model.LocalKind, e model.EvalAtT) *float64 {
	if !visible || !finite(e.L1Obs) || e.L1Obs <= 0 || !finite(e.Delta) {
		return nil
	}
	if kind == model.LocalTotal || kind == model.LocalAnnular {
		one := 1.0
		return &one
	}
	m := clamp((e.L1Obs-e.Delta)/e.L1Obs, 0, 1)
	return &m
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatContact converts an optional contact time to a UTC string via
// instant.TT0/AtOffset/ToUTC, omitting the field if tHours is nil, non-finite,
// or the record's date cannot be parsed.
func formatContact(record model.EclipseRecord, tHours *float64) *string {
	if tHours == nil || !finite(*tHours) {
		return nil
	}
	tt0, err := instant.TT0(record.DateYmd, record.T0TtHours)
	if err != nil {
		return nil
	}
	tt := instant.AtOffset(tt0, *tHours)
	utc := instant.ToUTC(tt, record.DeltaTSeconds)
	s := instant.FormatUTC(utc)
	return &s
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
