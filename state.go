package neuralnet

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/LazureLeming/object-oriented-neural-network/utils"
)

// State is the complete, exportable description of a Network: its topology, weights, and biases.
// Transient values are not included. The fields are public to allow encoding; the 'persist'
// subpackage provides the standard encoding.
type State struct {
	ID     string       `json:"id"`
	Inputs int          `json:"inputs"`
	Layers []LayerState `json:"layers"`
}

// LayerState is the State of a single layer of Neurons
type LayerState struct {
	Neurons []NeuronState `json:"neurons"`
}

// NeuronState is the State of a single Neuron. Weights[k] is the weight of the connection from
// Incoming[k].
type NeuronState struct {
	Incoming []int     `json:"incoming"`
	Weights  []float64 `json:"weights"`
	Outgoing []int     `json:"outgoing"`
	Bias     float64   `json:"bias"`
}

// State returns a copy of the State of the Network
func (net *Network) State() *State {
	net.passMux.Lock()
	defer net.passMux.Unlock()

	s := &State{
		ID:     net.id.String(),
		Inputs: len(net.inputs),
		Layers: make([]LayerState, len(net.layers)),
	}

	for l := range net.layers {
		ns := make([]NeuronState, len(net.layers[l]))
		for i := range net.layers[l] {
			n := net.layers[l][i].clone()
			ns[i] = NeuronState{
				Incoming: n.incoming,
				Weights:  n.weights,
				Outgoing: n.outgoing,
				Bias:     n.bias,
			}
		}

		s.Layers[l].Neurons = ns
	}

	return s
}

// FromState rebuilds a Network from its State. The State must describe a fully-connected
// feedforward network: at least one input, at least one layer with at least one Neuron in the last
// layer, incoming connections covering exactly the previous layer, and outgoing connections
// covering exactly the next layer (none, for the output layer). Otherwise, FromState returns an
// error of type TopologyError.
//
// The returned Network uses utils.DefaultWorkers() goroutines per layer, and does not share any
// memory with the State.
func FromState(s *State) (*Network, error) {
	if s == nil {
		return nil, NilArgError{"State"}
	} else if s.Inputs < 1 {
		return nil, errors.Wrapf(ErrNoInputs, "Can't rebuild Network with %d inputs", s.Inputs)
	} else if len(s.Layers) == 0 || len(s.Layers[len(s.Layers)-1].Neurons) == 0 {
		return nil, errors.Wrapf(ErrNoOutputs, "Can't rebuild Network without output Neurons")
	}

	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't rebuild Network, bad ID %q", s.ID)
	}

	net := &Network{
		id:      id,
		inputs:  make([]InputUnit, s.Inputs),
		layers:  make([][]Neuron, len(s.Layers)),
		workers: utils.DefaultWorkers(),
	}

	for l, ls := range s.Layers {
		numPrev := s.Inputs
		if l > 0 {
			numPrev = len(s.Layers[l-1].Neurons)
		}

		var numNext int
		k := output
		if l < len(s.Layers)-1 {
			numNext = len(s.Layers[l+1].Neurons)
			k = hidden
		}

		net.layers[l] = make([]Neuron, len(ls.Neurons))
		for i, ns := range ls.Neurons {
			if len(ns.Weights) != len(ns.Incoming) {
				return nil, TopologyError{l, i, "number of weights does not match incoming connections"}
			} else if !covers(ns.Incoming, numPrev) {
				return nil, TopologyError{l, i, "incoming connections do not cover the previous layer"}
			} else if !covers(ns.Outgoing, numNext) {
				return nil, TopologyError{l, i, "outgoing connections do not cover the next layer"}
			}

			n := Neuron{
				kind:          k,
				layer:         l,
				index:         i,
				incoming:      make([]int, len(ns.Incoming)),
				weights:       make([]float64, len(ns.Weights)),
				outgoing:      make([]int, len(ns.Outgoing)),
				bias:          ns.Bias,
				weightChanges: make([]float64, len(ns.Weights)),
			}

			copy(n.incoming, ns.Incoming)
			copy(n.weights, ns.Weights)
			copy(n.outgoing, ns.Outgoing)

			net.layers[l][i] = n
		}
	}

	net.stat = finalized
	return net, nil
}

// covers returns whether or not 'indexes' contains each of 0 → n-1 exactly once
func covers(indexes []int, n int) bool {
	if len(indexes) != n {
		return false
	}

	seen := make([]bool, n)
	for _, i := range indexes {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}
