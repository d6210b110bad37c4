package persist

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nn "github.com/LazureLeming/object-oriented-neural-network"
)

// number is a float64 that survives JSON exactly. Finite values are written as JSON numbers, in
// the shortest form that reads back to the same bits. Infinities are written as the strings "+Inf"
// and "-Inf", and NaNs as "NaN(0x...)" holding their bits.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(fmt.Sprintf(`"NaN(0x%016x)"`, math.Float64bits(f))), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (n *number) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" {
		return nil
	}

	if !strings.HasPrefix(str, `"`) {
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return errors.Wrapf(err, "Bad number %s\n", str)
		}

		*n = number(f)
		return nil
	}

	str, err := strconv.Unquote(str)
	if err != nil {
		return errors.Wrapf(err, "Bad number %s\n", data)
	}

	switch {
	case str == "+Inf":
		*n = number(math.Inf(1))
	case str == "-Inf":
		*n = number(math.Inf(-1))
	case str == "NaN":
		*n = number(math.NaN())
	case strings.HasPrefix(str, "NaN(") && strings.HasSuffix(str, ")"):
		bits, err := strconv.ParseUint(str[4:len(str)-1], 0, 64)
		if err != nil {
			return errors.Wrapf(err, "Bad NaN %q\n", str)
		}

		f := math.Float64frombits(bits)
		if !math.IsNaN(f) {
			return errors.Errorf("Bad NaN %q, bits are not a NaN", str)
		}
		*n = number(f)
	default:
		return errors.Errorf("Bad number %q", str)
	}

	return nil
}

type layerDoc struct {
	Neurons []neuronDoc `json:"neurons"`
}

type neuronDoc struct {
	Incoming []int    `json:"incoming"`
	Weights  []number `json:"weights"`
	Outgoing []int    `json:"outgoing"`
	Bias     number   `json:"bias"`
}

type networkDoc struct {
	ID     string     `json:"id"`
	Inputs int        `json:"inputs"`
	Layers []layerDoc `json:"layers"`
}

func toDoc(s *nn.State) *networkDoc {
	d := &networkDoc{
		ID:     s.ID,
		Inputs: s.Inputs,
		Layers: make([]layerDoc, len(s.Layers)),
	}

	for l, ls := range s.Layers {
		ns := make([]neuronDoc, len(ls.Neurons))
		for i, n := range ls.Neurons {
			ws := make([]number, len(n.Weights))
			for k, w := range n.Weights {
				ws[k] = number(w)
			}

			ns[i] = neuronDoc{n.Incoming, ws, n.Outgoing, number(n.Bias)}
		}

		d.Layers[l].Neurons = ns
	}

	return d
}

// state returns the State described by the document, or nil if there is no document
func (d *networkDoc) state() *nn.State {
	if d == nil {
		return nil
	}

	s := &nn.State{
		ID:     d.ID,
		Inputs: d.Inputs,
		Layers: make([]nn.LayerState, len(d.Layers)),
	}

	for l, ld := range d.Layers {
		ns := make([]nn.NeuronState, len(ld.Neurons))
		for i, n := range ld.Neurons {
			ws := make([]float64, len(n.Weights))
			for k, w := range n.Weights {
				ws[k] = float64(w)
			}

			ns[i] = nn.NeuronState{Incoming: n.Incoming, Weights: ws, Outgoing: n.Outgoing, Bias: float64(n.Bias)}
		}

		s.Layers[l].Neurons = ns
	}

	return s
}
