package trainer

import (
	"math"
	"testing"
)

func TestSetAdd(t *testing.T) {
	s := NewSet(
		Datum{[]float64{0, 0}, []float64{0}},
		Datum{[]float64{0, 1}, []float64{1}},
	)

	in := []float64{1, 0}
	s.Add(in, []float64{1})
	in[0] = 5 // must not reach the Set

	s.Add([]float64{0, 1}, []float64{0.5})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}

	want := [][]float64{{0, 0}, {0, 1}, {1, 0}}
	for i, w := range want {
		d := s.At(i)
		if d.Inputs[0] != w[0] || d.Inputs[1] != w[1] {
			t.Errorf("At(%d).Inputs = %v, want %v", i, d.Inputs, w)
		}
	}

	if outs, ok := s.Get([]float64{0, 1}); !ok || outs[0] != 0.5 {
		t.Errorf("Get({0, 1}) = %v, %v; want [0.5], true", outs, ok)
	}
	if _, ok := s.Get([]float64{5, 0}); ok {
		t.Error("Get found inputs that were changed after Add")
	}
}

func TestSetKeysAreBitwise(t *testing.T) {
	s := NewSet()
	s.Add([]float64{0}, []float64{1})
	s.Add([]float64{math.Copysign(0, -1)}, []float64{2})
	s.Add([]float64{math.NaN()}, []float64{3})
	s.Add([]float64{math.NaN()}, []float64{4})

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if outs, _ := s.Get([]float64{math.NaN()}); len(outs) != 1 || outs[0] != 4 {
		t.Errorf("Get(NaN) = %v, want [4]", outs)
	}

	var nilSet *Set
	if nilSet.Len() != 0 {
		t.Error("nil Set has examples")
	}
}

func TestSetHandsOutCopies(t *testing.T) {
	s := NewSet(Datum{[]float64{1, 2}, []float64{3}})

	outs, _ := s.Get([]float64{1, 2})
	outs[0] = 9

	d := s.At(0)
	d.Inputs[0] = 7
	d.Outputs[0] = 8

	got, ok := s.Get([]float64{1, 2})
	if !ok {
		t.Fatal("changing a returned Datum changed the key of the Set")
	}
	if got[0] != 3 {
		t.Errorf("outputs = %v, want [3]", got)
	}
	if in := s.At(0).Inputs; in[0] != 1 || in[1] != 2 {
		t.Errorf("At(0).Inputs = %v, want [1 2]", in)
	}
}
