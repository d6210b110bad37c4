package neuralnet

import (
	"github.com/pkg/errors"
	"math"
)

// DefaultSeed is the seed of the RNG used to initialize a Network when Config.RNG is nil
const DefaultSeed int64 = 1

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"weight-lower": -0.1,
		"weight-upper": 0.1,
	}
}

// SetDefault sets the default values used when constructing Networks. The values that can be set
// are: "weight-lower" and "weight-upper", the range from which every initial weight and bias is
// drawn.
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
