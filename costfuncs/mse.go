// Package costfuncs is the catalog of provided cost functions. Importing it registers every
// entry by name and sets MSE as the default.
package costfuncs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type mse bool

// MSE returns the mean squared error cost function: (1/n) * Σ (outs[i] - targets[i])^2. This is
// the default cost function.
func MSE() *mse {
	m := mse(false)
	return &m
}

// L2 is a proxy for MSE.
func L2() *mse {
	return MSE()
}

func (m *mse) TypeString() string {
	return "mse"
}

// PrintOuts makes every Cost call print the targets and outputs it was given, for debugging.
func (m *mse) PrintOuts() *mse {
	*m = mse(true)
	return m
}

func (m *mse) NoPrint() *mse {
	*m = mse(false)
	return m
}

func (m *mse) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, lengthMismatch(len(outs), len(targets))
	}

	diff := make([]float64, len(outs))
	copy(diff, outs)
	floats.Sub(diff, targets)

	if bool(*m) {
		fmt.Println(targets, outs)
	}

	return floats.Dot(diff, diff) / float64(len(outs)), nil
}

// Derivs returns outs - targets, elementwise. The constant 2/n factor of the true gradient is
// the same for every connection and folds into the learning rate.
func (m *mse) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	copy(ds, outs)
	floats.Sub(ds, targets)

	return ds
}
