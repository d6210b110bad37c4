package neuralnet

import (
	"math"

	"github.com/pkg/errors"

	"github.com/LazureLeming/object-oriented-neural-network/activation"
	"github.com/LazureLeming/object-oriented-neural-network/utils"
)

// the number of Neurons handed to a goroutine at a time
const opsPerThread int = 1

// calculateResponse sets the response of the Neuron from the responses of its producers, given by
// 'prev', which must already be up to date.
func (n *Neuron) calculateResponse(prev func(int) float64) {
	var sum float64
	for k, from := range n.incoming {
		sum += prev(from) * n.weights[k]
	}

	n.response = activation.Sigmoid(sum + n.bias)
}

// calculateError sets the error of the Neuron. Output Neurons compare their response to their
// target; all others sum the scaled errors of the Neurons in 'next', which must already be up to
// date.
func (n *Neuron) calculateError(next []Neuron) {
	if n.kind == output {
		n.err = n.target - n.response
		return
	}

	var sum float64
	for _, o := range n.outgoing {
		sum += next[o].scaledError(n.index)
	}

	n.err = sum * activation.DerivFromResponse(n.response)
}

// scaledError returns the error of the Neuron, scaled by the weight of its connection from the
// producer at index 'from' of the previous layer
func (n *Neuron) scaledError(from int) float64 {
	return n.weights[n.slot(from)] * n.err
}

// slot returns the position in n.incoming of the producer at index 'from'. Networks built by New
// always connect in order, so the first check almost always succeeds.
func (n *Neuron) slot(from int) int {
	if from < len(n.incoming) && n.incoming[from] == from {
		return from
	}

	for k, in := range n.incoming {
		if in == from {
			return k
		}
	}

	panic(errors.Errorf("Neuron %v has no connection from producer %d", n, from))
}

// stageAdjust calculates the changes to the weights and bias of the Neuron, without applying them.
// It reads only the Neuron's own error and the responses of its producers.
func (n *Neuron) stageAdjust(learningRate float64, prev func(int) float64) {
	for k, from := range n.incoming {
		n.weightChanges[k] = n.err * prev(from) * learningRate
	}

	n.biasChange = n.err * learningRate
}

// applyChanges adds the staged changes to the weights and bias of the Neuron
func (n *Neuron) applyChanges() {
	for k := range n.weights {
		n.weights[k] += n.weightChanges[k]
		n.weightChanges[k] = 0
	}

	n.bias += n.biasChange
	n.biasChange = 0
}

// producers returns a function giving the response of the i'th producer feeding layer l
func (net *Network) producers(l int) func(int) float64 {
	if l == 0 {
		inputs := net.inputs
		return func(i int) float64 {
			return inputs[i].value
		}
	}

	prev := net.layers[l-1]
	return func(i int) float64 {
		return prev[i].response
	}
}

// forEach runs 'f' on every Neuron of layer l, spread across the Network's workers, and returns
// only once all of them have finished.
func (net *Network) forEach(l int, f func(*Neuron)) error {
	layer := net.layers[l]
	return utils.MultiThread(0, len(layer), func(i int) error {
		f(&layer[i])
		return nil
	}, opsPerThread, net.workers)
}

func (net *Network) checkInputs(inputs []float64) error {
	if len(inputs) != len(net.inputs) {
		return DimensionMismatchError{len(net.inputs), len(inputs), "inputs"}
	}

	return nil
}

func (net *Network) checkTargets(targets []float64) error {
	if out := net.outputLayer(); len(targets) != len(out) {
		return DimensionMismatchError{len(out), len(targets), "targets"}
	}

	return nil
}

// evaluate sets the inputs of the Network and calculates the response of every Neuron, one layer
// at a time. Assumes that the inputs have already been checked.
func (net *Network) evaluate(inputs []float64) error {
	net.stat = finalized

	for i := range net.inputs {
		net.inputs[i].value = inputs[i]
	}

	for l := range net.layers {
		prev := net.producers(l)
		err := net.forEach(l, func(n *Neuron) {
			n.calculateResponse(prev)
		})

		if err != nil {
			return errors.Wrapf(err, "Calculating responses of layer %d failed\n", l)
		}
	}

	net.stat = evaluated
	return nil
}

// getDeltas calculates the error of every Neuron, from the output layer back to the first
func (net *Network) getDeltas() error {
	if net.stat < evaluated {
		return ErrNotEvaluated
	}

	for l := len(net.layers) - 1; l >= 0; l-- {
		var next []Neuron
		if l+1 < len(net.layers) {
			next = net.layers[l+1]
		}

		err := net.forEach(l, func(n *Neuron) {
			n.calculateError(next)
		})

		if err != nil {
			net.stat = evaluated
			return errors.Wrapf(err, "Calculating errors of layer %d failed\n", l)
		}
	}

	net.stat = deltas
	return nil
}

// adjust changes the weights and biases of every Neuron, using the errors from getDeltas. All of
// the changes are calculated before any of them are applied, so a failure leaves the weights as
// they were.
func (net *Network) adjust(learningRate float64) error {
	if net.stat < deltas {
		return ErrNoDeltas
	}

	for l := len(net.layers) - 1; l >= 0; l-- {
		prev := net.producers(l)
		err := net.forEach(l, func(n *Neuron) {
			n.stageAdjust(learningRate, prev)
		})

		if err != nil {
			return errors.Wrapf(err, "Calculating adjustments of layer %d failed\n", l)
		}
	}

	for l := range net.layers {
		for i := range net.layers[l] {
			net.layers[l][i].applyChanges()
		}
	}

	net.stat = adjusted
	return nil
}

// CalculateResponse returns the responses of the output Neurons for the given inputs. If the
// number of inputs doesn't match the Network, a DimensionMismatchError is returned and the
// Network is left unchanged.
//
// Each layer is calculated with its Neurons spread across the Network's workers; no layer is
// started before the previous one has finished.
func (net *Network) CalculateResponse(inputs []float64) ([]float64, error) {
	net.passMux.Lock()
	defer net.passMux.Unlock()

	if err := net.checkInputs(inputs); err != nil {
		return nil, err
	}

	if err := net.evaluate(inputs); err != nil {
		return nil, err
	}

	return net.outputResponses(), nil
}

// Train runs a single step of backpropagation: it sets the targets of the output Neurons,
// calculates the response to the inputs, calculates the error of every Neuron, and adjusts all
// weights and biases by learningRate * error * input. Train returns the error (target - response)
// of each output Neuron, as it was before the adjustment.
//
// If the number of inputs or targets doesn't match the Network, a DimensionMismatchError is
// returned and the Network is left unchanged. A learning rate of 0 calculates errors without
// changing any weights.
func (net *Network) Train(inputs, targets []float64, learningRate float64) ([]float64, error) {
	net.passMux.Lock()
	defer net.passMux.Unlock()

	if err := net.checkInputs(inputs); err != nil {
		return nil, err
	} else if err := net.checkTargets(targets); err != nil {
		return nil, err
	}

	out := net.outputLayer()
	for i := range out {
		out[i].target = targets[i]
	}

	if err := net.evaluate(inputs); err != nil {
		return nil, errors.Wrapf(err, "Getting outputs failed\n")
	}

	if err := net.getDeltas(); err != nil {
		return nil, errors.Wrapf(err, "Getting deltas failed\n")
	}

	if err := net.adjust(learningRate); err != nil {
		return nil, errors.Wrapf(err, "Adjusting weights failed\n")
	}

	return net.outputErrors(), nil
}

// TrainAbsolute performs the same operation as Train, but returns the sum of the absolute errors
// of the output Neurons instead of each error.
func (net *Network) TrainAbsolute(inputs, targets []float64, learningRate float64) (float64, error) {
	errs, err := net.Train(inputs, targets, learningRate)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, e := range errs {
		sum += math.Abs(e)
	}

	return sum, nil
}

func (net *Network) outputLayer() []Neuron {
	return net.layers[len(net.layers)-1]
}

func (net *Network) outputResponses() []float64 {
	out := net.outputLayer()
	rs := make([]float64, len(out))
	for i := range out {
		rs[i] = out[i].response
	}

	return rs
}

func (net *Network) outputErrors() []float64 {
	out := net.outputLayer()
	es := make([]float64, len(out))
	for i := range out {
		es[i] = out[i].err
	}

	return es
}
