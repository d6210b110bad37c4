package activation

import (
	"math"
	"testing"
)

func TestSigmoidZero(t *testing.T) {
	if s := Sigmoid(0); s != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", s)
	}
}

func TestSigmoidMonotonicAndBounded(t *testing.T) {
	prev := Sigmoid(-30)
	for x := -30.0 + 0.25; x <= 30; x += 0.25 {
		s := Sigmoid(x)
		if s <= 0 || s >= 1 {
			t.Fatalf("Sigmoid(%v) = %v, not in (0, 1)", x, s)
		}
		if s < prev {
			t.Fatalf("Sigmoid is not increasing at %v (%v < %v)", x, s, prev)
		}
		prev = s
	}
}

func TestSigmoidDeriv(t *testing.T) {
	for _, x := range []float64{-10, -3.5, -1, -0.1, 0, 0.1, 1, 2.25, 7, 10} {
		want := Sigmoid(x) * (1 - Sigmoid(x))
		if d := SigmoidDeriv(x); math.Abs(d-want) > 1e-9 {
			t.Errorf("SigmoidDeriv(%v) = %v, want %v", x, d, want)
		}
		if d := DerivFromResponse(Sigmoid(x)); math.Abs(d-want) > 1e-9 {
			t.Errorf("DerivFromResponse(Sigmoid(%v)) = %v, want %v", x, d, want)
		}
	}

	if d := SigmoidDeriv(0); d != 0.25 {
		t.Errorf("SigmoidDeriv(0) = %v, want 0.25", d)
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 9},
		{"negative", -4, 16},
		{"fraction", 0.5, 0.25},
		{"negative fraction", -1.5, 2.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Square(tc.x); got != tc.want {
				t.Errorf("Square(%v) = %v, want %v", tc.x, got, tc.want)
			}
		})
	}
}
