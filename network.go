package neuralnet

import (
	"github.com/google/uuid"
)

// The accessors below read the Network without waiting for a pass to finish; they should not be
// called while CalculateResponse or Train is running on another goroutine.

// ID returns the identifier given to the Network when it was created. Clones of a Network, and
// Networks restored from its State, share its ID.
func (net *Network) ID() uuid.UUID {
	return net.id
}

// NumInputs returns the number of input values the Network expects
func (net *Network) NumInputs() int {
	return len(net.inputs)
}

// NumOutputs returns the number of values the Network produces
func (net *Network) NumOutputs() int {
	return len(net.outputLayer())
}

// NumLayers returns the number of layers of Neurons, including the output layer but not the
// inputs.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// LayerSizes returns the number of Neurons in each layer, in order. The last value is equal to
// NumOutputs().
func (net *Network) LayerSizes() []int {
	sizes := make([]int, len(net.layers))
	for l := range net.layers {
		sizes[l] = len(net.layers[l])
	}

	return sizes
}

// Workers returns the number of goroutines used to calculate each layer
func (net *Network) Workers() int {
	return net.workers
}

// SetWorkers changes the number of goroutines used to calculate each layer. Values < 1 are
// ignored.
func (net *Network) SetWorkers(n int) *Network {
	if n >= 1 {
		net.passMux.Lock()
		net.workers = n
		net.passMux.Unlock()
	}

	return net
}

// Input returns the n'th input unit of the Network. Index-out-of-bounds panics are allowed to go
// through.
func (net *Network) Input(n int) *InputUnit {
	return &net.inputs[n]
}

// Neuron returns the Neuron at the given position. Index-out-of-bounds panics are allowed to go
// through.
func (net *Network) Neuron(layer, index int) *Neuron {
	return &net.layers[layer][index]
}

// Output returns the n'th output Neuron of the Network. Index-out-of-bounds panics are allowed to
// go through.
func (net *Network) Output(n int) OutputNeuron {
	return OutputNeuron{&net.outputLayer()[n]}
}

// Outputs returns the output Neurons of the Network, in order
func (net *Network) Outputs() []OutputNeuron {
	out := net.outputLayer()
	os := make([]OutputNeuron, len(out))
	for i := range out {
		os[i] = OutputNeuron{&out[i]}
	}

	return os
}

// Evaluated returns whether or not the responses of the Neurons reflect the most recent inputs.
// It is false for new Networks, for clones, and after a pass has failed.
func (net *Network) Evaluated() bool {
	return net.stat >= evaluated
}
