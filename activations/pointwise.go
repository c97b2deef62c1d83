package activations

import (
	"math"
)

type identity int8

// Identity returns the identity activation, f(x) = x.
func Identity() identity {
	return identity(0)
}

func (t identity) TypeString() string {
	return "identity"
}

func (t identity) Evaluate(pre float64) float64 {
	return pre
}

func (t identity) Deriv(pre, value float64) float64 {
	return 1
}

type relu int8

// ReLU returns the rectified linear activation, f(x) = max(0, x). Range [0, +inf).
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Evaluate(pre float64) float64 {
	return math.Max(0, pre)
}

func (t relu) Deriv(pre, value float64) float64 {
	if pre > 0 {
		return 1
	}

	return 0
}

// past this point ln(1+e^x) is indistinguishable from x in float64
const softplusCutoff float64 = 30

type softplus int8

// Softplus returns the smooth rectifier, f(x) = ln(1 + e^x). Range (0, +inf). Large inputs
// short-circuit to f(x) = x instead of overflowing the exponential.
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Evaluate(pre float64) float64 {
	if pre > softplusCutoff {
		return pre
	}

	return math.Log1p(math.Exp(pre))
}

func (t softplus) Deriv(pre, value float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*pre)
}

type ramp int8

// Ramp returns the linear activation clamped to [-1, +1]: ramp(2) == 1, ramp(-2) == -1, and the
// identity in between.
func Ramp() ramp {
	return ramp(0)
}

func (t ramp) TypeString() string {
	return "ramp"
}

func (t ramp) Evaluate(pre float64) float64 {
	if pre > 1 {
		return 1
	} else if pre < -1 {
		return -1
	}

	return pre
}

func (t ramp) Deriv(pre, value float64) float64 {
	if pre > -1 && pre < 1 {
		return 1
	}

	return 0
}

type step int8

// Step returns the Heaviside step activation: exactly 1 for positive input, exactly 0 otherwise.
// Its derivative is 0 everywhere, so it cannot carry a training signal.
func Step() step {
	return step(0)
}

func (t step) TypeString() string {
	return "step"
}

func (t step) Evaluate(pre float64) float64 {
	if pre > 0 {
		return 1
	}

	return 0
}

func (t step) Deriv(pre, value float64) float64 {
	return 0
}

type sine int8

// Sine returns f(x) = sin(x). Range [-1, +1].
func Sine() sine {
	return sine(0)
}

func (t sine) TypeString() string {
	return "sine"
}

func (t sine) Evaluate(pre float64) float64 {
	return math.Sin(pre)
}

func (t sine) Deriv(pre, value float64) float64 {
	return math.Cos(pre)
}

type sqrt int8

// Sqrt returns the square-root activation: f(x) = sqrt(x) for non-negative input, 0 for negative.
// Range [0, +inf).
func Sqrt() sqrt {
	return sqrt(0)
}

func (t sqrt) TypeString() string {
	return "sqrt"
}

func (t sqrt) Evaluate(pre float64) float64 {
	if pre <= 0 {
		return 0
	}

	return math.Sqrt(pre)
}

func (t sqrt) Deriv(pre, value float64) float64 {
	if pre <= 0 {
		return 0
	}

	return 0.5 / math.Sqrt(pre)
}

// inputs are clamped here before exponentiating; e^700 is still finite in float64
const expCutoff float64 = 700

type exponential int8

// Exp returns f(x) = e^x, with the input clamped so the result stays finite. Range (0, +inf).
func Exp() exponential {
	return exponential(0)
}

func (t exponential) TypeString() string {
	return "exp"
}

func (t exponential) Evaluate(pre float64) float64 {
	return math.Exp(math.Min(pre, expCutoff))
}

func (t exponential) Deriv(pre, value float64) float64 {
	return value
}
