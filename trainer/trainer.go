// Package trainer drives a Network through repeated epochs of stochastic training over a set of
// examples, keeping a checkpoint of the Network that training can be rolled back to.
package trainer

import (
	"math/rand"

	"github.com/pkg/errors"

	nn "github.com/LazureLeming/object-oriented-neural-network"
	"github.com/LazureLeming/object-oriented-neural-network/costfuncs"
	"github.com/LazureLeming/object-oriented-neural-network/hyperparams"
	"github.com/LazureLeming/object-oriented-neural-network/persist"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrNilNetwork = Error{"Network is nil"}
	ErrNilSet     = Error{"Training set is nil"}
	ErrEmptySet   = Error{"Set has no examples"}
	ErrNoEpochs   = Error{"Number of epochs must be at least 1"}
)

// A wrapper for sending back the progress of training or testing
type Result struct {
	// The number of epochs completed by the Trainer, including the one the Result is from
	Epoch int

	// The total cost over the epoch, from the Trainer's CostFunction. Zero for tests.
	Cost float64

	// The fraction of the testing set classified correctly, 0 → 1. Only set for tests.
	Accuracy float64

	// The result is either from a test or from training
	IsTest bool
}

type Args struct {
	Network *nn.Network

	// Training is the set of examples presented during each epoch. Testing is used only by
	// Evaluate, and may be nil.
	Training, Testing *Set

	// Epochs is the number of passes over Training made by each call to Run. It must be at least
	// 1.
	Epochs int

	// LearningRate is passed to Network.Train for every example. It is not bounded.
	LearningRate float64

	// Schedule, if not nil, replaces LearningRate at the start of each epoch with its value for
	// the number of epochs completed so far.
	Schedule hyperparams.HyperParameter

	// Seed is the seed of the random source used to shuffle the training examples. The source
	// is created once, by New, and continues across epochs and calls to Run.
	Seed int64

	// Cost summarizes the output errors of each example. The default is costfuncs.HalfSSE(),
	// giving half of the sum of squared errors over the epoch.
	Cost costfuncs.CostFunction

	// Update is how training and testing results are returned. Update can be left nil.
	Update func(Result)
}

// Trainer holds a Network and a checkpoint of it, along with the examples to train and test on.
// A Trainer is not safe for concurrent use.
type Trainer struct {
	network *nn.Network
	saved   *nn.Network

	training, testing *Set

	epochs       int
	learningRate float64
	schedule     hyperparams.HyperParameter

	// the number of epochs run so far
	completed int

	rng    *rand.Rand
	cost   costfuncs.CostFunction
	update func(Result)
}

// New returns a Trainer for the given arguments, with the Network already checkpointed. Every
// example in both sets must fit the Network.
func New(args Args) (*Trainer, error) {
	if args.Network == nil {
		return nil, ErrNilNetwork
	} else if args.Training == nil {
		return nil, ErrNilSet
	} else if args.Epochs < 1 {
		return nil, errors.Wrapf(ErrNoEpochs, "Can't train for %d epochs", args.Epochs)
	}

	if args.Testing == nil {
		args.Testing = NewSet()
	}

	if args.Cost == nil {
		args.Cost = costfuncs.HalfSSE()
	}

	if args.Update == nil {
		args.Update = func(Result) {}
	}

	t := &Trainer{
		training:     args.Training,
		testing:      args.Testing,
		epochs:       args.Epochs,
		learningRate: args.LearningRate,
		schedule:     args.Schedule,
		rng:          rand.New(rand.NewSource(args.Seed)),
		cost:         args.Cost,
		update:       args.Update,
	}

	if err := t.SetNetwork(args.Network); err != nil {
		return nil, err
	}

	return t, nil
}

// check returns an error if any of the examples do not fit the Network
func (t *Trainer) check(net *nn.Network) error {
	for _, s := range []struct {
		name string
		set  *Set
	}{{"training", t.training}, {"testing", t.testing}} {
		if i := s.set.fits(net); i >= 0 {
			d := s.set.At(i)
			return errors.Errorf("Example %d of %s set has %d inputs and %d outputs, Network has %d and %d",
				i, s.name, len(d.Inputs), len(d.Outputs), net.NumInputs(), net.NumOutputs())
		}
	}

	return nil
}

// Network returns the active Network
func (t *Trainer) Network() *nn.Network {
	return t.network
}

// SetNetwork replaces the active Network and immediately checkpoints it. If the examples do not
// fit the Network, the Trainer is left unchanged.
func (t *Trainer) SetNetwork(net *nn.Network) error {
	if net == nil {
		return ErrNilNetwork
	} else if err := t.check(net); err != nil {
		return errors.Wrapf(err, "Can't set Network\n")
	}

	t.network = net
	t.Save()
	return nil
}

// Save copies the active Network into the checkpoint
func (t *Trainer) Save() {
	t.saved = t.network.Clone()
}

// Restore replaces the active Network with a copy of the checkpoint. Further training does not
// affect the checkpoint.
func (t *Trainer) Restore() {
	t.network = t.saved.Clone()
}

// Epochs returns the number of epochs run by each call to Run
func (t *Trainer) Epochs() int {
	return t.epochs
}

// SetEpochs sets the number of epochs run by each call to Run
func (t *Trainer) SetEpochs(n int) error {
	if n < 1 {
		return errors.Wrapf(ErrNoEpochs, "Can't train for %d epochs", n)
	}

	t.epochs = n
	return nil
}

// LearningRate returns the learning rate used for training
func (t *Trainer) LearningRate() float64 {
	return t.learningRate
}

// SetLearningRate sets the learning rate used for training, removing any Schedule
func (t *Trainer) SetLearningRate(r float64) {
	t.learningRate = r
	t.schedule = nil
}

// Completed returns the total number of epochs run by the Trainer
func (t *Trainer) Completed() int {
	return t.completed
}

// TrainingSize returns the number of examples in the training set
func (t *Trainer) TrainingSize() int {
	return t.training.Len()
}

// TestingSize returns the number of examples in the testing set
func (t *Trainer) TestingSize() int {
	return t.testing.Len()
}

// epoch presents every training example to the Network once, in a newly shuffled order, and
// returns the total cost
func (t *Trainer) epoch() (float64, error) {
	if t.schedule != nil {
		t.learningRate = t.schedule.Value(t.completed)
	}

	order := t.rng.Perm(t.training.Len())

	var cost float64
	for _, i := range order {
		d := t.training.at(i)

		errs, err := t.network.Train(d.Inputs, d.Outputs, t.learningRate)
		if err != nil {
			return cost, errors.Wrapf(err, "Training on example %d failed\n", i)
		}

		cost += t.cost.Cost(errs)
	}

	t.completed++
	return cost, nil
}

// Run trains the active Network for the set number of epochs, returning the total cost of each
// epoch, in order. A Result is sent to Update after each epoch.
//
// If training fails, Run returns the costs of the epochs that completed.
func (t *Trainer) Run() ([]float64, error) {
	costs := make([]float64, 0, t.epochs)
	for e := 0; e < t.epochs; e++ {
		c, err := t.epoch()
		if err != nil {
			return costs, errors.Wrapf(err, "Epoch %d failed\n", t.completed+1)
		}

		costs = append(costs, c)
		t.update(Result{Epoch: t.completed, Cost: c})
	}

	return costs, nil
}

// Mismatch is an example from the testing set that the Network classified incorrectly
type Mismatch struct {
	Inputs []float64

	// the response of the Network
	Computed []float64

	// the index of the largest value in the expected and computed outputs
	Expected, Got int
}

// Evaluation is the result of testing the active Network
type Evaluation struct {
	Mismatches []Mismatch

	// the fraction of the testing set classified correctly, 0 → 1
	Accuracy float64
}

// Evaluate classifies every example in the testing set with the active Network, by the index of
// its largest output (ties go to the first), and compares it to the class of the expected outputs.
// The Network is not trained.
func (t *Trainer) Evaluate() (Evaluation, error) {
	size := t.testing.Len()
	if size == 0 {
		return Evaluation{}, errors.Wrapf(ErrEmptySet, "Can't evaluate Network\n")
	}

	var ev Evaluation
	for i := 0; i < size; i++ {
		d := t.testing.at(i)

		outs, err := t.network.CalculateResponse(d.Inputs)
		if err != nil {
			return Evaluation{}, errors.Wrapf(err, "Testing on example %d failed\n", i)
		}

		if expected, got := nn.ArgMax(d.Outputs), nn.ArgMax(outs); expected != got {
			inputs := append([]float64(nil), d.Inputs...)
			ev.Mismatches = append(ev.Mismatches, Mismatch{inputs, outs, expected, got})
		}
	}

	ev.Accuracy = float64(size-len(ev.Mismatches)) / float64(size)
	return ev, nil
}

// TrainWithEvaluation runs the set number of epochs like Run, but evaluates the Network after each
// one. Both the training and the testing Result of each epoch are sent to Update, in that order.
// It returns the cost and the accuracy of each epoch.
//
// The evaluation does not change how the Network is trained.
func (t *Trainer) TrainWithEvaluation() (costs, accuracies []float64, err error) {
	if t.testing.Len() == 0 {
		return nil, nil, errors.Wrapf(ErrEmptySet, "Can't evaluate Network\n")
	}

	for e := 0; e < t.epochs; e++ {
		c, err := t.epoch()
		if err != nil {
			return costs, accuracies, errors.Wrapf(err, "Epoch %d failed\n", t.completed+1)
		}

		costs = append(costs, c)
		t.update(Result{Epoch: t.completed, Cost: c})

		ev, err := t.Evaluate()
		if err != nil {
			return costs, accuracies, errors.Wrapf(err, "Evaluating epoch %d failed\n", t.completed)
		}

		accuracies = append(accuracies, ev.Accuracy)
		t.update(Result{Epoch: t.completed, Accuracy: ev.Accuracy, IsTest: true})
	}

	return costs, accuracies, nil
}

// SaveFile writes the active Network to the file at 'path', replacing anything already there
func (t *Trainer) SaveFile(path string) error {
	return persist.Save(t.network, path, true)
}

// LoadFile replaces the active Network with one read from 'path'. The checkpoint is not changed.
// If reading fails, or the examples don't fit the Network that was read, the Trainer is left
// unchanged.
func (t *Trainer) LoadFile(path string) error {
	net, err := persist.Load(path)
	if err != nil {
		return err
	}

	if err = t.check(net); err != nil {
		return errors.Wrapf(err, "Can't use Network from %s\n", path)
	}

	t.network = net
	return nil
}
