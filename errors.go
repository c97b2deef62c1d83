package anny

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrNoLayers     = Error{"Network must be given at least one Layer"}
	ErrNotActivated = Error{"Network has not been activated"}
	ErrNoDeltas     = Error{"Network has no propagated deltas"}
	ErrNoGradients  = Error{"Network has no accumulated gradients"}

	ErrNotAssembled = Error{"Layer has not been assembled into a Network"}

	ErrRegisterNilReturn = Error{"Function return is nil"}

	ErrNoDefaultActivation  = Error{"no default Activation has been set (import the activations subpackage)"}
	ErrNoDefaultCostFunc    = Error{"no default CostFunction has been set (import the costfuncs subpackage)"}
	ErrNoDefaultInitializer = Error{"no default Initializer has been set (import the initializers subpackage)"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError records a vector whose length does not fit the part of the Network it was
// given to. It is always returned before any neuron state has been touched.
type SizeMismatchError struct {
	Expected, Got int
	What          string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("wrong number of %s: expected %d, got %d", err.What, err.Expected, err.Got)
}
