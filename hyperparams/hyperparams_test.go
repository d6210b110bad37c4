package hyperparams

import (
	"testing"
)

func TestConstant(t *testing.T) {
	c := Constant(0.3)
	for _, e := range []int{0, 1, 1000} {
		if v := c.Value(e); v != 0.3 {
			t.Errorf("Value(%d) = %v, want 0.3", e, v)
		}
	}
}

func TestStep(t *testing.T) {
	s := Step(1).Add(100, 0.1).Add(10, 0.5)

	tests := []struct {
		epoch int
		want  float64
	}{
		{0, 1},
		{9, 1},
		{10, 0.5},
		{99, 0.5},
		{100, 0.1},
		{5000, 0.1},
	}

	for _, tc := range tests {
		if v := s.Value(tc.epoch); v != tc.want {
			t.Errorf("Value(%d) = %v, want %v", tc.epoch, v, tc.want)
		}
	}
}

func TestParseStep(t *testing.T) {
	s, err := ParseStep(0.5, "2000:0.25, 4000:0.1")
	if err != nil {
		t.Fatal(err)
	}

	if v := s.Value(1999); v != 0.5 {
		t.Errorf("Value(1999) = %v, want 0.5", v)
	}
	if v := s.Value(3000); v != 0.25 {
		t.Errorf("Value(3000) = %v, want 0.25", v)
	}
	if v := s.Value(4000); v != 0.1 {
		t.Errorf("Value(4000) = %v, want 0.1", v)
	}

	if s, err = ParseStep(0.5, ""); err != nil || s.Value(10) != 0.5 {
		t.Errorf("ParseStep of empty string = %v, %v", s, err)
	}

	for _, bad := range []string{"10", "a:1", "10:b", "-1:0.5", "1:2:3"} {
		if _, err := ParseStep(0.5, bad); err == nil {
			t.Errorf("ParseStep(%q) succeeded", bad)
		}
	}
}
