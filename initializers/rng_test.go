package initializers

import (
	"testing"
)

func TestUniformBetween(t *testing.T) {
	u := Uniform(7)
	for i := 0; i < 10000; i++ {
		v := u.Between(-0.1, 0.1)
		if v < -0.1 || v >= 0.1 {
			t.Fatalf("Between(-0.1, 0.1) gave %v on draw %d", v, i)
		}
	}
}

func TestUniformSeeded(t *testing.T) {
	a, b := Uniform(42), Uniform(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Between(-1, 1), b.Between(-1, 1); x != y {
			t.Fatalf("draw %d differs for equal seeds: %v != %v", i, x, y)
		}
	}

	c := Uniform(43)
	same := true
	for i := 0; i < 10; i++ {
		if a.Between(0, 1) != c.Between(0, 1) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced the same sequence")
	}
}

func TestUniformOtherBounds(t *testing.T) {
	u := Uniform(1)
	for i := 0; i < 1000; i++ {
		if v := u.Between(2, 3); v < 2 || v >= 3 {
			t.Fatalf("Between(2, 3) = %v on draw %d", v, i)
		}
	}
}

func TestConstantAndSequence(t *testing.T) {
	if v := Constant(0.3).Between(-1, 1); v != 0.3 {
		t.Errorf("Constant(0.3).Between() = %v", v)
	}

	s := Sequence(1, 2, 3)
	want := []float64{1, 2, 3, 1, 2}
	for i, w := range want {
		if v := s.Between(0, 0); v != w {
			t.Errorf("Sequence draw %d = %v, want %v", i, v, w)
		}
	}
}
