package neuralnet

import (
	"sync"

	"github.com/google/uuid"
)

// Network is a fully-connected feedforward neural network, trained by backpropagation. It is an
// arena of Neurons arranged in layers: every Neuron of a layer receives input from every producer
// of the layer before it (the InputUnits, for the first layer), and the final layer is made of
// output Neurons.
//
// The topology of a Network is fixed once it has been constructed. Passes through a Network are
// serialized; a Network may be shared between goroutines, but only one pass runs at a time.
type Network struct {
	// identifies the Network across clones and persistence. Kept by Clone.
	id uuid.UUID

	inputs []InputUnit

	// layers[len(layers)-1] is the output layer, and always exists
	layers [][]Neuron

	// the number of goroutines used to calculate each layer
	workers int

	stat status

	// held for the entirety of each pass
	passMux sync.Mutex
}

// kind is the rule that a Neuron uses to calculate its error
type kind int8

const (
	// error is taken from the Neurons in the next layer
	hidden kind = iota

	// error is taken from the target value
	output
)

func (k kind) String() string {
	if k == output {
		return "output"
	}

	return "hidden"
}

// ResponseProducer is anything that can serve as input to a Neuron: an InputUnit or another
// Neuron.
type ResponseProducer interface {
	Response() float64
}

// InputUnit holds a single input value to the Network. It passes its value on without applying
// any activation.
type InputUnit struct {
	value float64
}

// Neuron is a single unit of a layer. It holds the weights of its connections from the previous
// layer, along with a bias, and the transient response and error from the most recent pass.
//
// Neurons are owned by their Network; the connections between them are stored as indexes into the
// neighbouring layers rather than as references.
type Neuron struct {
	kind kind

	// position in the Network
	layer, index int

	// indexes into the previous layer (or into the Network inputs, for the first layer). The
	// weight of the connection from incoming[k] is weights[k].
	incoming []int
	weights  []float64

	// indexes into the next layer. Always empty for output Neurons.
	outgoing []int

	bias float64

	// transient values from the most recent pass
	response float64
	err      float64

	// only used by output Neurons
	target float64

	// changes to the weights and bias that have been calculated but not yet applied
	weightChanges []float64
	biasChange    float64
}

// OutputNeuron is a view of one of the Neurons in the output layer of a Network. It calculates its
// error from a target value instead of from the Neurons after it.
type OutputNeuron struct {
	*Neuron
}
