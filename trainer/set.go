package trainer

import (
	"encoding/binary"
	"math"

	nn "github.com/LazureLeming/object-oriented-neural-network"
)

// Datum is a single labeled example
type Datum struct {
	// Inputs must have the same size as the inputs of the Network
	Inputs []float64

	// Outputs is the expected output of the Network, given the inputs. It must have the same size
	// as the outputs of the Network.
	Outputs []float64
}

// Fits indicates whether or not the Datum's dimensions match those of the Network
func (d Datum) Fits(net *nn.Network) bool {
	return len(d.Inputs) == net.NumInputs() && len(d.Outputs) == net.NumOutputs()
}

func (d Datum) copy() Datum {
	return Datum{
		Inputs:  append([]float64(nil), d.Inputs...),
		Outputs: append([]float64(nil), d.Outputs...),
	}
}

// Set is a collection of examples, keyed by their inputs. Inputs are compared by value, bit for
// bit, and examples are kept in the order they were first added.
type Set struct {
	data  []Datum
	index map[string]int
}

// NewSet returns a Set containing the given examples, added in order
func NewSet(data ...Datum) *Set {
	s := &Set{index: make(map[string]int)}
	for _, d := range data {
		s.Add(d.Inputs, d.Outputs)
	}

	return s
}

// Add adds an example to the Set. If an example with the same inputs is already present, its
// outputs are replaced. Both slices are copied.
func (s *Set) Add(inputs, outputs []float64) {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	d := Datum{inputs, outputs}.copy()

	k := key(inputs)
	if i, ok := s.index[k]; ok {
		s.data[i] = d
		return
	}

	s.index[k] = len(s.data)
	s.data = append(s.data, d)
}

// Get returns a copy of the expected outputs for the given inputs, and whether or not they were
// present
func (s *Set) Get(inputs []float64) ([]float64, bool) {
	i, ok := s.index[key(inputs)]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), s.data[i].Outputs...), true
}

// Len returns the number of examples in the Set. A nil Set has no examples.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.data)
}

// At returns a copy of the i'th example of the Set. Index-out-of-bounds panics are allowed to go
// through.
func (s *Set) At(i int) Datum {
	return s.data[i].copy()
}

// at returns the i'th example without copying it. The slices must not be changed.
func (s *Set) at(i int) Datum {
	return s.data[i]
}

// fits returns the index of the first example that does not fit the Network, or -1
func (s *Set) fits(net *nn.Network) int {
	for i := 0; i < s.Len(); i++ {
		if !s.data[i].Fits(net) {
			return i
		}
	}

	return -1
}

func key(inputs []float64) string {
	b := make([]byte, 8*len(inputs))
	for i, v := range inputs {
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(v))
	}

	return string(b)
}
