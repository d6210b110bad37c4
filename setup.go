package neuralnet

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/LazureLeming/object-oriented-neural-network/initializers"
	"github.com/LazureLeming/object-oriented-neural-network/utils"
)

// Config gives the shape of a Network, along with the sources it is built from.
type Config struct {
	// Inputs and Outputs are the number of values given to and produced by the Network. Both
	// must be at least 1.
	Inputs, Outputs int

	// Hidden is the size of each hidden layer, in order. Sizes may be zero; such a Network is
	// legal but will be unable to learn.
	Hidden []int

	// RNG provides every initial weight and bias. If nil, initializers.Uniform(DefaultSeed) is
	// used.
	RNG initializers.RNG

	// Workers is the number of goroutines used to calculate each layer. Values < 1 are replaced
	// by utils.DefaultWorkers().
	Workers int
}

// New creates and connects all of the Neurons of a Network with the shape given by the Config.
//
// Each Neuron draws its bias from the RNG as it is created, layer by layer. Once all Neurons exist,
// they are connected: every Neuron draws the weights of its incoming connections in the order of
// the producers in the previous layer. With the same RNG seed, New always produces the same
// Network.
func New(cfg Config) (*Network, error) {
	if cfg.Inputs < 1 {
		return nil, errors.Wrapf(ErrNoInputs, "Can't create Network with %d inputs", cfg.Inputs)
	} else if cfg.Outputs < 1 {
		return nil, errors.Wrapf(ErrNoOutputs, "Can't create Network with %d outputs", cfg.Outputs)
	}

	for i, size := range cfg.Hidden {
		if size < 0 {
			return nil, errors.Wrapf(ErrNegativeSize, "Can't create hidden layer %d with size %d", i, size)
		}
	}

	rng := cfg.RNG
	if rng == nil {
		rng = initializers.Uniform(DefaultSeed)
	}

	net := &Network{
		id:      uuid.New(),
		inputs:  make([]InputUnit, cfg.Inputs),
		layers:  make([][]Neuron, 0, len(cfg.Hidden)+1),
		workers: cfg.Workers,
	}

	if net.workers < 1 {
		net.workers = utils.DefaultWorkers()
	}

	lower, upper := defaultValue["weight-lower"], defaultValue["weight-upper"]

	for _, size := range cfg.Hidden {
		net.addLayer(size, hidden, rng, lower, upper)
	}
	net.addLayer(cfg.Outputs, output, rng, lower, upper)

	net.connect(rng, lower, upper)

	net.stat = finalized
	return net, nil
}

// addLayer appends a layer of 'size' Neurons to the end of the Network, giving each a bias
func (net *Network) addLayer(size int, k kind, rng initializers.RNG, lower, upper float64) {
	l := len(net.layers)
	layer := make([]Neuron, size)
	for i := range layer {
		layer[i] = Neuron{
			kind:  k,
			layer: l,
			index: i,
			bias:  rng.Between(lower, upper),
		}
	}

	net.layers = append(net.layers, layer)
}

// connect wires every layer to the ones beside it. Incoming connections are made first, from the
// first layer to the last, followed by the outgoing connections.
func (net *Network) connect(rng initializers.RNG, lower, upper float64) {
	for l := range net.layers {
		numPrev := net.layerInputs(l)
		for i := range net.layers[l] {
			net.layers[l][i].connectIncoming(numPrev, rng, lower, upper)
		}
	}

	for l := range net.layers {
		var numNext int
		if l < len(net.layers)-1 {
			numNext = len(net.layers[l+1])
		}

		for i := range net.layers[l] {
			net.layers[l][i].connectOutgoing(numNext)
		}
	}
}

// connectIncoming replaces any previous incoming connections with one to each of the 'num'
// producers of the previous layer, with weights drawn from the RNG
func (n *Neuron) connectIncoming(num int, rng initializers.RNG, lower, upper float64) {
	n.incoming = make([]int, num)
	n.weights = make([]float64, num)
	n.weightChanges = make([]float64, num)

	for k := range n.incoming {
		n.incoming[k] = k
		n.weights[k] = rng.Between(lower, upper)
	}
}

// connectOutgoing replaces the outgoing connections with one to each of the 'num' Neurons of the
// next layer
func (n *Neuron) connectOutgoing(num int) {
	n.outgoing = make([]int, num)
	for o := range n.outgoing {
		n.outgoing[o] = o
	}
}

// layerInputs returns the number of producers feeding layer l
func (net *Network) layerInputs(l int) int {
	if l == 0 {
		return len(net.inputs)
	}

	return len(net.layers[l-1])
}
