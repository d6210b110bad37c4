package costfuncs

import (
	"math"
)

type abs struct{}

// Abs returns the Absolute Value cost function: the sum of the absolute errors. This is the
// quantity returned by Network.TrainAbsolute.
func Abs() abs {
	return abs{}
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Cost(errs []float64) float64 {
	var sum float64
	for _, e := range errs {
		sum += math.Abs(e)
	}

	return sum
}
