// Package hyperparams provides schedules for values that change over the course of training, such
// as the learning rate.
package hyperparams

// HyperParameter gives a value for each epoch of training. Epochs are counted from 0.
type HyperParameter interface {
	// TypeString returns a short name for the type of schedule
	TypeString() string

	Value(epoch int) float64
}
