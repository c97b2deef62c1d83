package costfuncs

import (
	"fmt"
	"math"
)

// keeps log() and the derivative's division finite when an output saturates at 0 or 1
const ceEpsilon float64 = 1e-12

type crossEntropy bool

// CrossEntropy returns the categorical cross-entropy cost, -Σ targets[i]*ln(outs[i]). Outputs are
// clamped away from zero, so a fully-wrong prediction costs a large finite amount rather than
// +Inf. Meant for output layers whose values form a probability distribution (e.g. Softmax).
func CrossEntropy() *crossEntropy {
	c := crossEntropy(false)
	return &c
}

// NegativeLog is a proxy for CrossEntropy.
func NegativeLog() *crossEntropy {
	return CrossEntropy()
}

func (c *crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c *crossEntropy) PrintOuts() *crossEntropy {
	*c = crossEntropy(true)
	return c
}

func (c *crossEntropy) NoPrint() *crossEntropy {
	*c = crossEntropy(false)
	return c
}

func (c *crossEntropy) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, lengthMismatch(len(outs), len(targets))
	}

	var sum float64
	for i := range outs {
		sum -= targets[i] * math.Log(math.Max(outs[i], ceEpsilon))
	}

	if bool(*c) {
		fmt.Println(targets, outs)
	}

	return sum, nil
}

func (c *crossEntropy) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		ds[i] = -targets[i] / math.Max(outs[i], ceEpsilon)
	}

	return ds
}
