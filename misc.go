package neuralnet

// ArgMax returns the index of the largest value. Ties go to the first occurrence. If 'values' is
// empty, ArgMax returns -1.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	max := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[max] {
			max = i
		}
	}

	return max
}

// CorrectHighest returns whether or not the largest value in each is at the same index.
func CorrectHighest(outs, targets []float64) bool {
	return ArgMax(outs) == ArgMax(targets)
}

// CorrectRound returns whether or not each output rounds to its target, rounding to 1 at 0.5 and
// above and to 0 below it.
//
// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		var r float64
		if outs[i] >= 0.5 {
			r = 1
		}

		if r != targets[i] {
			return false
		}
	}

	return true
}
