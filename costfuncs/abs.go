package costfuncs

import (
	"fmt"
	"math"
)

type abs bool

// Abs returns the absolute value (L1) cost function: (1/n) * Σ |outs[i] - targets[i]|.
func Abs() *abs {
	a := abs(false)
	return &a
}

// L1 is a proxy for Abs.
func L1() *abs {
	return Abs()
}

func (a *abs) TypeString() string {
	return "abs"
}

func (a *abs) PrintOuts() *abs {
	*a = abs(true)
	return a
}

func (a *abs) NoPrint() *abs {
	*a = abs(false)
	return a
}

func (a *abs) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, lengthMismatch(len(outs), len(targets))
	}

	var sum float64
	for i := range outs {
		sum += math.Abs(outs[i] - targets[i])
	}

	if bool(*a) {
		fmt.Println(targets, outs)
	}

	return sum / float64(len(outs)), nil
}

func (a *abs) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = math.Copysign(1, outs[i]-targets[i])
	}

	return ds
}
