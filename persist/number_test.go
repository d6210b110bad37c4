package persist

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberEncoding(t *testing.T) {
	cases := []struct {
		f    float64
		want string
	}{
		{0.25, `0.25`},
		{-3, `-3`},
		{1e-300, `1e-300`},
		{math.Copysign(0, -1), `-0`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
		{math.Float64frombits(0x7ff8000000000001), `"NaN(0x7ff8000000000001)"`},
	}

	for _, c := range cases {
		data, err := json.Marshal(number(c.f))
		if err != nil {
			t.Fatalf("Marshal(%v) failed: %v", c.f, err)
		}
		if string(data) != c.want {
			t.Errorf("Marshal(%v) = %s, want %s", c.f, data, c.want)
		}

		var n number
		if err := json.Unmarshal(data, &n); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", data, err)
		}
		if math.Float64bits(float64(n)) != math.Float64bits(c.f) {
			t.Errorf("Unmarshal(%s) = %v, want %v", data, float64(n), c.f)
		}
	}
}

func TestNumberDecodeBad(t *testing.T) {
	for _, s := range []string{`"Inf"`, `"NaN(0x3ff0000000000000)"`, `"NaN(zz)"`, `true`} {
		var n number
		if err := json.Unmarshal([]byte(s), &n); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", s)
		}
	}
}
