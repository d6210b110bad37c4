package neuralnet

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrNoInputs     = Error{"Network must have at least one input"}
	ErrNoOutputs    = Error{"Network must have at least one output"}
	ErrNegativeSize = Error{"Hidden layer size is negative"}
	ErrNotEvaluated = Error{"Network has not been evaluated"}
	ErrNoDeltas     = Error{"Network errors have not been calculated"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// DimensionMismatchError is returned when the length of an input or target vector does not match
// the number of inputs or outputs of the Network. What is either "inputs" or "targets".
//
// A DimensionMismatchError is always returned before any part of the Network has been changed.
type DimensionMismatchError struct {
	Expected, Given int
	What            string
}

func (err DimensionMismatchError) Error() string {
	return fmt.Sprintf("Number of %s does not match Network (expected %d, given %d)", err.What, err.Expected, err.Given)
}

// IsDimensionMismatch returns whether or not the cause of the error is a DimensionMismatchError.
func IsDimensionMismatch(err error) bool {
	_, ok := errors.Cause(err).(DimensionMismatchError)
	return ok
}

// TopologyError is returned when a Network can't be rebuilt from a State because the connections
// it describes do not form a fully-connected feedforward network.
type TopologyError struct {
	Layer, Neuron int
	Reason        string
}

func (err TopologyError) Error() string {
	return fmt.Sprintf("Invalid topology at layer %d, neuron %d: %s", err.Layer, err.Neuron, err.Reason)
}
