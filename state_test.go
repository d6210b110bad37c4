package neuralnet

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/LazureLeming/object-oriented-neural-network/initializers"
)

func TestCloneIndependent(t *testing.T) {
	net := newNet(t, Config{Inputs: 2, Outputs: 1, Hidden: []int{3}, RNG: initializers.Uniform(21)})
	c := net.Clone()

	if c.ID() != net.ID() {
		t.Errorf("clone ID = %v, want %v", c.ID(), net.ID())
	}
	if !c.Equal(net) {
		t.Fatal("clone is not equal to original")
	}

	if _, err := c.Train([]float64{1, 1}, []float64{0}, 0.5); err != nil {
		t.Fatal(err)
	}

	if c.Equal(net) {
		t.Error("training the clone changed the original")
	}

	if !net.Equal(newNet(t, Config{Inputs: 2, Outputs: 1, Hidden: []int{3}, RNG: initializers.Uniform(21)})) {
		t.Error("original no longer matches a fresh Network from the same seed")
	}
}

func TestStateRoundTrip(t *testing.T) {
	net := newNet(t, Config{Inputs: 3, Outputs: 2, Hidden: []int{4, 0, 2}, RNG: initializers.Uniform(8)})
	if _, err := net.Train([]float64{1, 0, 1}, []float64{1, 0}, 0.4); err != nil {
		t.Fatal(err)
	}

	s := net.State()
	loaded, err := FromState(s)
	if err != nil {
		t.Fatalf("FromState failed: %v", err)
	}

	if loaded.ID() != net.ID() {
		t.Errorf("ID = %v, want %v", loaded.ID(), net.ID())
	}
	if !loaded.Equal(net) {
		t.Fatal("rebuilt Network is not equal to original")
	}

	// the State must not share memory with either Network
	s.Layers[0].Neurons[0].Weights[0] += 1
	if !loaded.Equal(net) {
		t.Error("changing the State changed a Network")
	}

	inputs := []float64{0.2, 0.4, 0.6}
	want, _ := net.CalculateResponse(inputs)
	got, err := loaded.CalculateResponse(inputs)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if !sameBits(got[i], want[i]) {
			t.Errorf("output %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromStateInvalid(t *testing.T) {
	valid := func() *State {
		return newNet(t, Config{Inputs: 2, Outputs: 1, Hidden: []int{2}}).State()
	}

	tests := []struct {
		name     string
		change   func(s *State)
		topology bool
	}{
		{"no inputs", func(s *State) { s.Inputs = 0 }, false},
		{"no layers", func(s *State) { s.Layers = nil }, false},
		{"bad id", func(s *State) { s.ID = "not-a-uuid" }, false},
		{"missing weight", func(s *State) {
			n := &s.Layers[0].Neurons[1]
			n.Weights = n.Weights[:1]
		}, true},
		{"duplicate incoming", func(s *State) { s.Layers[1].Neurons[0].Incoming = []int{0, 0} }, true},
		{"incoming out of range", func(s *State) { s.Layers[0].Neurons[0].Incoming = []int{0, 2} }, true},
		{"outgoing from output", func(s *State) { s.Layers[1].Neurons[0].Outgoing = []int{0} }, true},
		{"missing outgoing", func(s *State) { s.Layers[0].Neurons[0].Outgoing = nil }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.change(s)

			net, err := FromState(s)
			if err == nil {
				t.Fatal("FromState succeeded, want error")
			}
			if net != nil {
				t.Error("FromState returned non-nil Network with error")
			}

			_, isTopology := errors.Cause(err).(TopologyError)
			if isTopology != tc.topology {
				t.Errorf("error = %v, TopologyError: %v, want %v", err, isTopology, tc.topology)
			}
		})
	}

	if _, err := FromState(nil); err == nil {
		t.Error("FromState(nil) succeeded")
	}
}
