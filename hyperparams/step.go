package hyperparams

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type step struct {
	Epoch int
	Val   float64
}

type stepper []step

// Step returns a HyperParameter that starts at 'base' and changes at each step added with Add.
func Step(base float64) *stepper {
	s := stepper{{0, base}}
	return &s
}

// Add adds a step to the HyperParameter, so that it has 'value' from 'epoch' onwards. Steps may be
// added in any order.
func (s *stepper) Add(epoch int, value float64) *stepper {
	*s = append(*s, step{epoch, value})
	sort.SliceStable(*s, func(i, j int) bool {
		return (*s)[i].Epoch < (*s)[j].Epoch
	})

	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(epoch int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].Epoch > epoch {
			return sl[i-1].Val
		}
	}

	return sl[len(sl)-1].Val
}

// ParseStep builds a Step HyperParameter from a string of the form "epoch:value,epoch:value",
// starting from 'base'. An empty string gives a Step that is always 'base'.
func ParseStep(base float64, str string) (*stepper, error) {
	s := Step(base)
	if strings.TrimSpace(str) == "" {
		return s, nil
	}

	for _, part := range strings.Split(str, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) != 2 {
			return nil, errors.Errorf("Bad step %q, should be epoch:value", part)
		}

		epoch, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "Bad epoch in step %q\n", part)
		} else if epoch < 0 {
			return nil, errors.Errorf("Bad epoch in step %q, must not be negative", part)
		}

		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Bad value in step %q\n", part)
		}

		s.Add(epoch, value)
	}

	return s, nil
}
