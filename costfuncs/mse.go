package costfuncs

import (
	"github.com/LazureLeming/object-oriented-neural-network/activation"
)

type halfSSE struct{}

// HalfSSE returns the cost function reported by the trainer: the sum of the squared errors,
// divided by two. It is not averaged over the number of outputs.
func HalfSSE() halfSSE {
	return halfSSE{}
}

func (h halfSSE) TypeString() string {
	return "half-sse"
}

func (h halfSSE) Cost(errs []float64) float64 {
	var sum float64
	for _, e := range errs {
		sum += activation.Square(e)
	}

	return sum / 2
}

type mse struct{}

// MSE returns the mean squared error cost function: the average of half of each squared error.
func MSE() mse {
	return mse{}
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(errs []float64) float64 {
	if len(errs) == 0 {
		return 0
	}

	var sum float64
	for _, e := range errs {
		sum += 0.5 * activation.Square(e)
	}

	return sum / float64(len(errs))
}
