package neuralnet

import (
	"math"
)

// Clone returns a structurally independent copy of the Network: the same topology, weights,
// biases, ID, and number of workers. Transient values (responses, errors, targets) are not copied.
//
// Changes to either Network after Clone do not affect the other.
func (net *Network) Clone() *Network {
	net.passMux.Lock()
	defer net.passMux.Unlock()

	c := &Network{
		id:      net.id,
		inputs:  make([]InputUnit, len(net.inputs)),
		layers:  make([][]Neuron, len(net.layers)),
		workers: net.workers,
		stat:    finalized,
	}

	for l := range net.layers {
		c.layers[l] = make([]Neuron, len(net.layers[l]))
		for i := range net.layers[l] {
			c.layers[l][i] = net.layers[l][i].clone()
		}
	}

	return c
}

func (n *Neuron) clone() Neuron {
	c := Neuron{
		kind:          n.kind,
		layer:         n.layer,
		index:         n.index,
		incoming:      make([]int, len(n.incoming)),
		weights:       make([]float64, len(n.weights)),
		outgoing:      make([]int, len(n.outgoing)),
		bias:          n.bias,
		weightChanges: make([]float64, len(n.weights)),
	}

	copy(c.incoming, n.incoming)
	copy(c.weights, n.weights)
	copy(c.outgoing, n.outgoing)

	return c
}

// Equal returns whether or not two Networks have the same topology and bit-for-bit identical
// weights and biases. IDs, workers, and transient values are not compared.
func (net *Network) Equal(other *Network) bool {
	if net == other {
		return true
	} else if net == nil || other == nil {
		return false
	}

	if len(net.inputs) != len(other.inputs) || len(net.layers) != len(other.layers) {
		return false
	}

	for l := range net.layers {
		if len(net.layers[l]) != len(other.layers[l]) {
			return false
		}

		for i := range net.layers[l] {
			if !net.layers[l][i].equal(&other.layers[l][i]) {
				return false
			}
		}
	}

	return true
}

func (n *Neuron) equal(o *Neuron) bool {
	if n.kind != o.kind || !sameBits(n.bias, o.bias) {
		return false
	} else if len(n.incoming) != len(o.incoming) || len(n.outgoing) != len(o.outgoing) {
		return false
	}

	for k := range n.incoming {
		if n.incoming[k] != o.incoming[k] || !sameBits(n.weights[k], o.weights[k]) {
			return false
		}
	}

	for k := range n.outgoing {
		if n.outgoing[k] != o.outgoing[k] {
			return false
		}
	}

	return true
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}
