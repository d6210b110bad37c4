// Package neuralnet provides a fully-connected feedforward neural network, trained one example at
// a time by backpropagation. Every Neuron is its own small record, with sigmoid activation, a bias,
// and a weight for each producer in the layer before it; nothing is vectorized.
//
// Creating Networks
//
// Networks are built from a Config, giving the number of inputs and outputs and the size of each
// hidden layer:
//
//		net, err := neuralnet.New(neuralnet.Config{
//			Inputs:  2,
//			Outputs: 1,
//			Hidden:  []int{2},
//			RNG:     initializers.Uniform(seed),
//		})
//
// The topology is fixed from then on. All initial weights and biases are drawn from the RNG, by
// default uniformly from [-0.1, 0.1); see SetDefault. Two Networks built from RNGs with the same
// seed are identical.
//
// Using Networks
//
// Responses are given by:
//
//		outs, err := net.CalculateResponse(inputs)
//
// and a single step of training by:
//
//		errs, err := net.Train(inputs, targets, learningRate)
//
// which returns the error (target - response) of each output. Both fail with a
// DimensionMismatchError, before touching the Network, if the vectors don't match its shape.
//
// Each layer is spread across a bounded number of goroutines (see SetWorkers), and every layer
// finishes before the next one starts. A panic inside any single Neuron fails the entire pass.
//
// Saving and Loading
//
// The full topology and weights of a Network can be exported with State and rebuilt with
// FromState. The subpackage 'persist' encodes States as bytes and files, and 'store' keeps them in
// a SQLite database. Repeated training over sets of examples is handled by the subpackage
// 'trainer'.
package neuralnet
