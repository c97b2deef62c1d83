package costfuncs

import (
	"fmt"
	"math"
)

type huber struct {
	delta float64
	print bool
}

// Huber returns the Huber loss, quadratic within ±delta of the target and linear outside. delta
// controls where the transition between MSE-like and Abs-like behavior happens.
func Huber(delta float64) *huber {
	return &huber{delta: delta}
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) PrintOuts() *huber {
	h.print = true
	return h
}

func (h *huber) NoPrint() *huber {
	h.print = false
	return h
}

func (h *huber) Cost(outs, targets []float64) (float64, error) {
	if len(outs) != len(targets) {
		return 0, lengthMismatch(len(outs), len(targets))
	}

	var sum float64
	for i := range outs {
		d := math.Abs(outs[i] - targets[i])
		if d <= h.delta {
			sum += 0.5 * d * d
		} else {
			sum += h.delta*d - 0.5*h.delta*h.delta
		}
	}

	if h.print {
		fmt.Println(targets, outs)
	}

	return sum / float64(len(outs)), nil
}

func (h *huber) Derivs(outs, targets []float64) []float64 {
	ds := make([]float64, len(outs))
	for i := range outs {
		d := outs[i] - targets[i]
		if d >= -h.delta && d <= h.delta {
			ds[i] = d
		} else {
			ds[i] = h.delta * math.Copysign(1, d)
		}
	}

	return ds
}
