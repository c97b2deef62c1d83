package activations

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type softmax int8

// Softmax returns the layer-normalized exponential: values[i] = e^pres[i] / Σ e^pres[j]. Every
// value lands in (0, 1) and the layer's values sum to 1. The maximum pre-activation is subtracted
// before exponentiating, so arbitrarily large inputs stay finite.
func Softmax() softmax {
	return softmax(0)
}

func (t softmax) TypeString() string {
	return "softmax"
}

// Evaluate gives the unnormalized numerator; the Network only calls it for neurons outside a
// Layerwise layer.
func (t softmax) Evaluate(pre float64) float64 {
	return math.Exp(math.Min(pre, expCutoff))
}

func (t softmax) Deriv(pre, value float64) float64 {
	// the diagonal of the softmax Jacobian
	return value * (1 - value)
}

func (t softmax) EvaluateLayer(pres, values []float64) {
	max := floats.Max(pres)

	var sum float64
	for i, p := range pres {
		values[i] = math.Exp(p - max)
		sum += values[i]
	}

	floats.Scale(1/sum, values)
}

type unitSum int8

// UnitSum returns the plain normalizer: values[i] = pres[i] / Σ pres[j]. Unlike Softmax it keeps
// the inputs' proportions (and signs). A layer summing to exactly zero comes out uniform, 1/n
// everywhere.
func UnitSum() unitSum {
	return unitSum(0)
}

func (t unitSum) TypeString() string {
	return "unit-sum"
}

func (t unitSum) Evaluate(pre float64) float64 {
	return pre
}

func (t unitSum) Deriv(pre, value float64) float64 {
	if pre == 0 {
		return 0
	}

	return value * (1 - value) / pre
}

func (t unitSum) EvaluateLayer(pres, values []float64) {
	sum := floats.Sum(pres)
	if sum == 0 {
		for i := range values {
			values[i] = 1 / float64(len(values))
		}
		return
	}

	copy(values, pres)
	floats.Scale(1/sum, values)
}
