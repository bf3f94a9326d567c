package quad

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pitchlab/internal/dynamo"
	"gonum.org/v1/gonum/integrate"
)

func samples(f func(float64) float64, n int, h float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(float64(i) * h)
	}
	return out
}

func TestNewtonCotes4_Constant(t *testing.T) {
	const c = 3.5
	for _, n := range []int{4, 7, 10, 31, 1000} {
		for _, h := range []float64{0.01, 0.2, 1.5} {
			f := samples(func(float64) float64 { return c }, n, h)
			got, err := NewtonCotes4(f, h)
			if err != nil {
				t.Fatalf("n=%d: unexpected error: %v", n, err)
			}
			want := c * h * float64(n-1)
			if math.Abs(got-want) > 1e-9*math.Max(1, want) {
				t.Errorf("n=%d h=%g: got %.12f, want %.12f", n, h, got, want)
			}
		}
	}
}

func TestNewtonCotes4_ExactForCubics(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	// Antiderivative: x⁴/4 - x² + x.
	F := func(x float64) float64 { return x*x*x*x/4 - x*x + x }

	const n, h = 13, 0.25
	got, err := NewtonCotes4(samples(f, n, h), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := h * float64(n-1)
	if want := F(b) - F(0); math.Abs(got-want) > 1e-12 {
		t.Errorf("got %.15f, want %.15f", got, want)
	}
}

func TestNewtonCotes4_AgreesWithSimpson(t *testing.T) {
	const n, h = 301, 0.01
	f := samples(math.Sin, n, h)
	x := samples(func(x float64) float64 { return x }, n, h)

	got, err := NewtonCotes4(f, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref := integrate.Simpsons(x, f); math.Abs(got-ref) > 1e-8 {
		t.Errorf("3/8 rule %.12f differs from Simpson %.12f", got, ref)
	}
}

func TestNewtonCotes4_IncompatibleSize(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 6, 8, 1001} {
		got, err := NewtonCotes4(make([]float64, n), 0.1)
		if !errors.Is(err, dynamo.ErrSizeMismatch) {
			t.Errorf("n=%d: expected ErrSizeMismatch, got %v", n, err)
		}
		if got != 0 {
			t.Errorf("n=%d: expected no result, got %f", n, got)
		}
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{1, false}, {3, false}, {4, true}, {5, false}, {7, true}, {997, true}, {999, false},
	}
	for _, tt := range tests {
		if got := Compatible(tt.n); got != tt.want {
			t.Errorf("Compatible(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestTrapezoid(t *testing.T) {
	f := []float64{1, 3, 5, 7}
	got, err := Trapezoid(f, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Linear data is integrated exactly: mean 4 over length 1.5.
	if math.Abs(got-6) > 1e-12 {
		t.Errorf("got %f, want 6", got)
	}

	if _, err := Trapezoid([]float64{1}, 0.5); !errors.Is(err, dynamo.ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestRulesDiffer(t *testing.T) {
	const n, h = 7, 0.5
	f := samples(func(x float64) float64 { return x * x }, n, h)

	nc, err := NewtonCotes4(f, h)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := Trapezoid(f, h)
	if err != nil {
		t.Fatal(err)
	}
	// x² over [0, 3]: 3/8 is exact, trapezoid overestimates.
	if math.Abs(nc-9) > 1e-12 {
		t.Errorf("3/8 rule got %f, want 9", nc)
	}
	if tr <= nc {
		t.Errorf("expected trapezoid %f to overestimate %f", tr, nc)
	}
}

func TestRules_RejectBadSpacing(t *testing.T) {
	f := []float64{5, 6, 7, 8}
	for _, h := range []float64{0, -0.2, math.NaN(), math.Inf(1)} {
		if _, err := NewtonCotes4(f, h); !errors.Is(err, dynamo.ErrOutOfDomain) {
			t.Errorf("NewtonCotes4 h=%g: expected ErrOutOfDomain, got %v", h, err)
		}
		if _, err := Trapezoid(f, h); !errors.Is(err, dynamo.ErrOutOfDomain) {
			t.Errorf("Trapezoid h=%g: expected ErrOutOfDomain, got %v", h, err)
		}
	}
}
