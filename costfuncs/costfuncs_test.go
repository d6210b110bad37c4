package costfuncs

import (
	"math"
	"testing"
)

func TestCost(t *testing.T) {
	errs := []float64{0.5, -1, 2}

	tests := []struct {
		cf   CostFunction
		want float64
	}{
		{HalfSSE(), (0.25 + 1 + 4) / 2},
		{MSE(), (0.125 + 0.5 + 2) / 3},
		{Abs(), 3.5},
		{Huber(1), (0.125 + 0.5 + 1.5) / 3},
	}

	for _, tc := range tests {
		t.Run(tc.cf.TypeString(), func(t *testing.T) {
			if got := tc.cf.Cost(errs); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Cost(%v) = %v, want %v", errs, got, tc.want)
			}
			if got := tc.cf.Cost(nil); got != 0 {
				t.Errorf("Cost(nil) = %v, want 0", got)
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"half-sse", "mse", "abs", "huber"} {
		cf, err := Get(name)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
			continue
		}
		if cf.TypeString() != name {
			t.Errorf("Get(%q).TypeString() = %q", name, cf.TypeString())
		}
	}

	if _, err := Get("cross-entropy"); err == nil {
		t.Error("Get of unregistered name succeeded")
	}
	if err := Register(func() CostFunction { return MSE() }); err == nil {
		t.Error("registering a duplicate name succeeded")
	}
	if n := len(Names()); n != 4 {
		t.Errorf("len(Names()) = %d, want 4", n)
	}
}

func TestSetDefault(t *testing.T) {
	if err := SetDefault("huber-delta", math.NaN()); err == nil {
		t.Error("SetDefault accepted NaN")
	}
	if err := SetDefault("no-such-value", 1); err == nil {
		t.Error("SetDefault accepted an unknown name")
	}
}
