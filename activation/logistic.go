// Package activation holds the scalar functions used by the neurons of a network: the logistic
// (sigmoid) activation, its derivative, and squaring.
package activation

import (
	"math"
)

// Sigmoid returns the logistic function of x: 1 / (1 + e^-x).
//
// Overflow is not guarded; very large negative inputs produce +Inf in the exponent and a result
// of 0, which is what the standard floating-point rules give.
func Sigmoid(x float64) float64 {
	return 1 / (math.Exp(-x) + 1)
}

// SigmoidDeriv returns the derivative of Sigmoid at x, computed as sigmoid(x) * (1 - sigmoid(x)).
func SigmoidDeriv(x float64) float64 {
	s := Sigmoid(x)
	return s * (1 - s)
}

// DerivFromResponse returns the derivative of Sigmoid given a value r that has already been
// passed through it. This is the form used during backpropagation, where the response of a
// neuron is already known.
func DerivFromResponse(r float64) float64 {
	return r * (1 - r)
}

// Square returns x*x
func Square(x float64) float64 {
	return x * x
}
