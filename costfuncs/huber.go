package costfuncs

import (
	"math"
)

type huber struct {
	δ float64
}

// Huber returns the Huber Loss Function, averaged over the outputs. δ controls the bounds of the
// transition between MSE and Absolute Value.
func Huber(δ float64) huber {
	return huber{δ}
}

func (h huber) TypeString() string {
	return "huber"
}

func (h huber) Cost(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}

	var sum float64
	for _, e := range errs {
		d := math.Abs(e)
		if d <= h.δ {
			sum += 0.5 * d * d
		} else {
			sum += h.δ*d - 0.5*h.δ*h.δ
		}
	}

	return sum / float64(len(errs))
}
