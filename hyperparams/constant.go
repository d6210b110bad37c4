package hyperparams

type constant float64

// Constant returns a HyperParameter that always has the same value
func Constant(value float64) constant {
	return constant(value)
}

func (c constant) TypeString() string {
	return "constant"
}

func (c constant) Value(epoch int) float64 {
	return float64(c)
}
