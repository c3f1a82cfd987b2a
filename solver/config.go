package solver

// Config names the solver's tuning constants (spec.md §9: "magic numbers...
// should be surfaced as named configuration with defaults rather than
// inlined"). The zero Config is not valid; use DefaultConfig().
type Config struct {
	// WindowHours is the half-width of the search window around t0, hours.
	WindowHours float64

	// CoarseStepHours is the bracketing sample step for C1-C4, hours.
	CoarseStepHours float64

	// FineStepHours is the scan step used to locate the maximum-obscuration
	// time within [C1,C4] or [C2,C3], hours.
	FineStepHours float64

	// BisectTolHours is the absolute tolerance for contact-time bisection.
	BisectTolHours float64

	// BisectMaxIterations bounds each bisection; 0 uses roots.DefaultMaxIterations.
	BisectMaxIterations int

	// Debug, when true, populates Circumstances.Debug with root lists,
	// bracket counts, and the EvalAtT at the selected maximum.
	Debug bool
}

// DefaultConfig returns the constants spec.md §4.6/§9 names:
// +-3h window, 60s coarse step, 6s fine step, 1e-7h bisection tolerance.
func DefaultConfig() Config {
	return Config{
		WindowHours:         3.0,
		CoarseStepHours:     1.0 / 60.0,  // 60 s
		FineStepHours:       1.0 / 600.0, // 6 s
		BisectTolHours:      1e-7,
		BisectMaxIterations: 0,
		Debug:               false,
	}
}
