package roots

import (
	"math"
	"testing"
)

func TestFind_InvalidRange(t *testing.T) {
	if _, err := Find(func(float64) float64 { return 0 }, 5, 1, 1); err != ErrInvalidRange {
		t.Errorf("err = %v, want ErrInvalidRange", err)
	}
}

func TestFind_InvalidStep(t *testing.T) {
	if _, err := Find(func(float64) float64 { return 0 }, 0, 1, 0); err != ErrInvalidStep {
		t.Errorf("err = %v, want ErrInvalidStep", err)
	}
	if _, err := Find(func(float64) float64 { return 0 }, 0, 1, -1); err != ErrInvalidStep {
		t.Errorf("err = %v, want ErrInvalidStep", err)
	}
}

func TestFind_SingleSignChange(t *testing.T) {
	// f(t) = t - 5.5, crosses zero between 5 and 6 with step 1.
	f := func(t float64) float64 { return t - 5.5 }
	brackets, err := Find(f, 0, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(brackets) != 1 {
		t.Fatalf("got %d brackets, want 1: %+v", len(brackets), brackets)
	}
	b := brackets[0]
	if b.A != 5 || b.B != 6 {
		t.Errorf("bracket = [%v, %v], want [5, 6]", b.A, b.B)
	}
	if b.FA*b.FB > 0 {
		t.Errorf("FA*FB = %v, want <= 0", b.FA*b.FB)
	}
}

func TestFind_MultipleRoots(t *testing.T) {
	// f(t) = sin(t), roots at 0, pi, 2pi within [-0.5, 7].
	f := math.Sin
	brackets, err := Find(f, -0.5, 7, 0.3)
	if err != nil {
		t.Fatal(err)
	}
	if len(brackets) < 2 {
		t.Fatalf("got %d brackets, want >= 2", len(brackets))
	}
	for i := 1; i < len(brackets); i++ {
		if brackets[i].A < brackets[i-1].A {
			t.Errorf("brackets not ascending: %+v", brackets)
		}
	}
}

func TestFind_DegenerateZeroSample(t *testing.T) {
	// f(5) exactly 0.
	f := func(t float64) float64 { return t - 5 }
	brackets, err := Find(f, 0, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, b := range brackets {
		if b.A == 4.5 && b.B == 5.5 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected degenerate bracket [4.5, 5.5] among %+v", brackets)
	}
}

func TestFind_FlatZeroRunYieldsNoBrackets(t *testing.T) {
	f := func(t float64) float64 { return 0 }
	brackets, err := Find(f, 0, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(brackets) != 0 {
		t.Errorf("expected no brackets for an identically-zero function, got %+v", brackets)
	}
}

func TestFind_SkipsNonFiniteSamples(t *testing.T) {
	f := func(t float64) float64 {
		if t == 3 {
			return math.NaN()
		}
		return t - 3.5
	}
	brackets, err := Find(f, 0, 6, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range brackets {
		if math.IsNaN(b.FA) || math.IsNaN(b.FB) {
			t.Errorf("bracket contains NaN endpoint: %+v", b)
		}
	}
}

// P2 (bracket guarantee): for any returned bracket, f(a) and f(b) are finite
// and f(a)*f(b) <= 0.
func TestFind_P2BracketGuarantee(t *testing.T) {
	f := func(t float64) float64 { return math.Cos(t) - 0.3*t }
	brackets, err := Find(f, -5, 5, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range brackets {
		if math.IsNaN(b.FA) || math.IsInf(b.FA, 0) || math.IsNaN(b.FB) || math.IsInf(b.FB, 0) {
			t.Errorf("bracket has non-finite endpoint: %+v", b)
		}
		if b.FA*b.FB > 1e-9 {
			t.Errorf("bracket %+v: FA*FB = %v, want <= 0", b, b.FA*b.FB)
		}
	}
}

func TestBisect_ExactEndpointZero(t *testing.T) {
	f := func(t float64) float64 { return t - 2 }
	r, ok := Bisect(f, 2, 5, 1e-7, 0)
	if !ok || !r.OK || r.THours != 2 || r.Iterations != 0 {
		t.Errorf("Bisect = %+v, ok=%v, want THours=2, OK=true, Iterations=0", r, ok)
	}
}

func TestBisect_Convergence(t *testing.T) {
	// P3: monotone linear test function, |result - true_root| <= 1.1*tol.
	trueRoot := 3.14159
	f := func(t float64) float64 { return t - trueRoot }
	tol := 1e-7
	r, ok := Bisect(f, 0, 10, tol, 0)
	if !ok || !r.OK {
		t.Fatalf("Bisect failed: %+v, ok=%v", r, ok)
	}
	if math.Abs(r.THours-trueRoot) > 1.1*tol {
		t.Errorf("THours = %v, want within %v of %v", r.THours, 1.1*tol, trueRoot)
	}
}

func TestBisect_SameSignEndpoints(t *testing.T) {
	f := func(t float64) float64 { return t*t + 1 } // always positive
	_, ok := Bisect(f, -1, 1, 1e-7, 0)
	if ok {
		t.Errorf("Bisect with same-sign endpoints should return ok=false")
	}
}

func TestBisect_NonFiniteEndpoint(t *testing.T) {
	f := func(t float64) float64 {
		if t == 0 {
			return math.NaN()
		}
		return t - 1
	}
	_, ok := Bisect(f, 0, 2, 1e-7, 0)
	if ok {
		t.Errorf("Bisect with non-finite endpoint should return ok=false")
	}
}

func TestBisect_NonFiniteMidpointAborts(t *testing.T) {
	f := func(t float64) float64 {
		if math.Abs(t-5) < 1e-9 {
			return math.NaN()
		}
		return t - 5
	}
	_, ok := Bisect(f, 4, 6, 1e-7, 0)
	// The first midpoint of [4, 6] is exactly 5, where f is NaN.
	if ok {
		t.Errorf("Bisect with a NaN midpoint should abort with ok=false")
	}
}

func TestBisect_MaxIterationsFallback(t *testing.T) {
	// An irrational root with an unreasonably tight tolerance and a tiny
	// iteration cap never converges; result should be OK=false but still returned.
	f := func(t float64) float64 { return t - math.Sqrt2 }
	r, ok := Bisect(f, 0, 2, 1e-15, 3)
	if !ok {
		t.Fatal("Bisect should still return a midpoint, not null, on iteration exhaustion")
	}
	if r.OK {
		t.Errorf("expected OK=false after exhausting 3 iterations at 1e-15 tolerance")
	}
	if r.Iterations != 3 {
		t.Errorf("Iterations = %d, want 3", r.Iterations)
	}
}
