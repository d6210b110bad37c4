package neuralnet

import (
	"testing"

	"github.com/LazureLeming/object-oriented-neural-network/initializers"
)

var xor = []struct {
	in  []float64
	out float64
}{
	{[]float64{0, 0}, 0},
	{[]float64{0, 1}, 1},
	{[]float64{1, 0}, 1},
	{[]float64{1, 1}, 0},
}

// trainXOR trains for at most 'epochs' passes over the XOR examples, in a fixed order, and returns
// the number of epochs before every example was classified correctly, or -1.
func trainXOR(t *testing.T, net *Network, epochs int, rate float64) int {
	t.Helper()

	for e := 1; e <= epochs; e++ {
		for _, ex := range xor {
			if _, err := net.Train(ex.in, []float64{ex.out}, rate); err != nil {
				t.Fatal(err)
			}
		}

		if e%100 != 0 {
			continue
		}

		correct := true
		for _, ex := range xor {
			out, err := net.CalculateResponse(ex.in)
			if err != nil {
				t.Fatal(err)
			}
			if !CorrectRound(out, []float64{ex.out}) {
				correct = false
				break
			}
		}

		if correct {
			return e
		}
	}

	return -1
}

func TestXORConverges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	// with starting weights in [-0.1, 0.1), two hidden Neurons only escape the plateau for some
	// seeds; eight converge reliably
	net := newNet(t, Config{Inputs: 2, Outputs: 1, Hidden: []int{8}, RNG: initializers.Uniform(DefaultSeed), Workers: 1})

	if e := trainXOR(t, net, 5000, 0.5); e < 0 {
		t.Fatal("XOR not learned within 5000 epochs")
	} else {
		t.Logf("XOR learned after %d epochs", e)
	}
}

// xorSeed is a seed for which a Network with two hidden Neurons learns XOR within 5000 epochs
// (after about 800) at a learning rate of 0.5, presenting the examples in order. Most seeds leave
// such a small Network stuck on the plateau.
const xorSeed int64 = 13

func TestXORTwoHidden(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	net := newNet(t, Config{Inputs: 2, Outputs: 1, Hidden: []int{2}, RNG: initializers.Uniform(xorSeed), Workers: 1})

	if e := trainXOR(t, net, 5000, 0.5); e < 0 {
		t.Fatalf("XOR not learned within 5000 epochs with seed %d", xorSeed)
	} else {
		t.Logf("XOR learned after %d epochs", e)
	}
}
