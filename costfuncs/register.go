// Package costfuncs provides the functions used to summarize the output errors of a network into a
// single cost, for reporting. None of them affect training; the network always learns from the
// raw error of each output.
package costfuncs

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// CostFunction reduces the errors (target - response) of each output to a single value
type CostFunction interface {
	// TypeString returns the name that the CostFunction is registered under
	TypeString() string

	Cost(errs []float64) float64
}

var registered map[string]func() CostFunction

func init() {
	list := []func() CostFunction{
		func() CostFunction { return HalfSSE() },
		func() CostFunction { return MSE() },
		func() CostFunction { return Abs() },
		func() CostFunction { return Huber(defaultValue["huber-delta"]) },
	}

	defaultValue = map[string]float64{
		"huber-delta": 1,
	}

	registered = make(map[string]func() CostFunction)
	for _, f := range list {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Register makes a CostFunction available through Get, under its TypeString. Register fails if
// the name is already taken.
func Register(f func() CostFunction) error {
	if f == nil {
		return errors.Errorf("Can't register nil CostFunction constructor")
	}

	name := f().TypeString()
	if _, ok := registered[name]; ok {
		return errors.Errorf("CostFunction %q is already registered", name)
	}

	registered[name] = f
	return nil
}

// Get returns a new instance of the CostFunction registered under the given name
func Get(name string) (CostFunction, error) {
	f, ok := registered[name]
	if !ok {
		return nil, errors.Errorf("No CostFunction registered with name %q", name)
	}

	return f(), nil
}

// Names returns the names of every registered CostFunction, sorted
func Names() []string {
	names := make([]string, 0, len(registered))
	for n := range registered {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

var defaultValue map[string]float64

// SetDefault sets the default values for certain CostFunctions, as returned by Get. The only value
// that can be set is "huber-delta".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
