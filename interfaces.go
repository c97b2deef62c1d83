package anny

// Activation is a pointwise activation function, mapping a neuron's pre-activation (the weighted
// sum of its inputs) to its output value. Implementations are expected to be stateless; all of the
// provided ones live in the subpackage "activations".
type Activation interface {
	// TypeString returns the string corresponding to the type of the Activation. For example:
	// the Activation "Logistic" should return "logistic", or something to that effect.
	TypeString() string

	// Evaluate returns the output value for the given pre-activation. Implementations must stay
	// within their documented output range for every finite input, without producing NaN or ±Inf.
	Evaluate(pre float64) float64

	// Deriv returns the local derivative d(value)/d(pre) at the given pre-activation. The output
	// value is supplied alongside because most derivatives are cheaper to express in terms of it
	// (e.g. v*(1-v) for the logistic function).
	Deriv(pre, value float64) float64
}

// Layerwise is an Activation whose output for one neuron depends on the pre-activations of every
// sibling neuron in the same Layer (softmax and friends). The Layer collects all pre-activations
// first and then applies EvaluateLayer in a single call; Evaluate is never used for these.
type Layerwise interface {
	Activation

	// EvaluateLayer fills values[i] with the normalized output for pres[i]. len(values) is always
	// equal to len(pres). Bias neurons are excluded from both slices.
	EvaluateLayer(pres, values []float64)
}

// CostFunction measures how far the Network's output vector is from a target vector. The provided
// implementations live in the subpackage "costfuncs"; the default is mean squared error.
type CostFunction interface {
	// TypeString returns the string corresponding to the type of the CostFunction.
	TypeString() string

	// Cost returns the scalar cost for the given output and target vectors. Returns error if the
	// two lengths differ.
	Cost(outs, targets []float64) (float64, error)

	// Derivs returns the derivative of the total cost w.r.t. each output value. Lengths may be
	// assumed equal; Cost has always been called with the same vectors first.
	Derivs(outs, targets []float64) []float64
}

// Initializer produces the starting weight for a single connection, given the fan-in of its
// target (the number of neurons in the source Layer, bias included). Implementations live in the
// subpackage "initializers" and must be seedable so that tests can be reproducible.
type Initializer interface {
	// TypeString returns the string corresponding to the type of the Initializer.
	TypeString() string

	// Weight returns a fresh initial weight. fanIn is always >= 1. Magnitudes are expected to
	// shrink as fanIn grows, to keep early activations away from saturation.
	Weight(fanIn int) float64
}
