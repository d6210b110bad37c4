package neuralnet

import (
	"fmt"
	"math"
)

// SetValue sets the value that the InputUnit will pass on
func (u *InputUnit) SetValue(v float64) {
	u.value = v
}

// Response returns the value of the InputUnit, unchanged
func (u *InputUnit) Response() float64 {
	return u.value
}

// String offers a short description of the Neuron, of the form:
//	<layer: %d, index: %d, kind: %s>
// Given a Neuron that is nil, String will return:
//	<nil>
func (n *Neuron) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<layer: %d, index: %d, kind: %s>", n.layer, n.index, n.kind)
}

// Layer returns the index of the layer that the Neuron belongs to. The first layer after the
// inputs is layer 0.
func (n *Neuron) Layer() int {
	return n.layer
}

// Index returns the position of the Neuron within its layer
func (n *Neuron) Index() int {
	return n.index
}

// IsOutput returns whether or not the Neuron is in the output layer of its Network
func (n *Neuron) IsOutput() bool {
	return n.kind == output
}

// Response returns the response calculated by the most recent forward pass
func (n *Neuron) Response() float64 {
	return n.response
}

// Error returns the error calculated by the most recent backward pass
func (n *Neuron) Error() float64 {
	return n.err
}

// Bias returns the current bias of the Neuron
func (n *Neuron) Bias() float64 {
	return n.bias
}

// NumIncoming returns the number of connections into the Neuron
func (n *Neuron) NumIncoming() int {
	return len(n.incoming)
}

// Weight returns the weight on the k'th incoming connection. Index-out-of-bounds panics are
// allowed to go through.
func (n *Neuron) Weight(k int) float64 {
	return n.weights[k]
}

// Weights returns a copy of the weights on each of the incoming connections, in order
func (n *Neuron) Weights() []float64 {
	ws := make([]float64, len(n.weights))
	copy(ws, n.weights)
	return ws
}

// Incoming returns a copy of the indexes of the producers in the previous layer that the Neuron
// receives input from. The weight of Incoming()[k] is Weight(k).
func (n *Neuron) Incoming() []int {
	in := make([]int, len(n.incoming))
	copy(in, n.incoming)
	return in
}

// Outgoing returns a copy of the indexes of the Neurons in the next layer that read this Neuron's
// error during backpropagation.
func (n *Neuron) Outgoing() []int {
	out := make([]int, len(n.outgoing))
	copy(out, n.outgoing)
	return out
}

// SetTarget sets the expected response of the output Neuron for the current example
func (o OutputNeuron) SetTarget(t float64) {
	o.target = t
}

// Target returns the expected response most recently given to the output Neuron
func (o OutputNeuron) Target() float64 {
	return o.target
}

// AbsoluteError returns |error| of the output Neuron
func (o OutputNeuron) AbsoluteError() float64 {
	return math.Abs(o.err)
}
