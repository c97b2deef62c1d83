package activations

import (
	"math"
)

type logistic int8

// Logistic returns the standard logistic sigmoid, f(x) = 1/(1 + e^-x). Range (0, 1). This is the
// default activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Evaluate(pre float64) float64 {
	// equivalent to 1/(1+e^-x), without the overflow for very negative x
	return 0.5 + 0.5*math.Tanh(0.5*pre)
}

func (t logistic) Deriv(pre, value float64) float64 {
	return value * (1 - value)
}

type tanh int8

// Tanh returns the hyperbolic tangent activation. Range (-1, +1).
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Evaluate(pre float64) float64 {
	return math.Tanh(pre)
}

func (t tanh) Deriv(pre, value float64) float64 {
	return 1 - value*value
}

const (
	lecunScale float64 = 1.7159
	lecunSlope float64 = 2.0 / 3
)

type lecunTanh int8

// LeCunTanh returns the scaled tanh from LeCun's "Efficient BackProp",
// f(x) = 1.7159*tanh(2x/3). Range (-1.7159, +1.7159), with f(±1) = ±1.
func LeCunTanh() lecunTanh {
	return lecunTanh(0)
}

func (t lecunTanh) TypeString() string {
	return "lecun-tanh"
}

func (t lecunTanh) Evaluate(pre float64) float64 {
	return lecunScale * math.Tanh(lecunSlope*pre)
}

func (t lecunTanh) Deriv(pre, value float64) float64 {
	inner := value / lecunScale
	return lecunScale * lecunSlope * (1 - inner*inner)
}

// past this the rational approximation is within float64 noise of ±1
const ratTanhCutoff float64 = 3

type ratTanh int8

// RatTanh returns a rational approximation of tanh, f(x) = x*(27 + x^2)/(27 + 9x^2), which is
// cheaper than the real thing and exactly ±1 outside of ±3.
func RatTanh() ratTanh {
	return ratTanh(0)
}

func (t ratTanh) TypeString() string {
	return "rat-tanh"
}

func (t ratTanh) Evaluate(pre float64) float64 {
	if pre >= ratTanhCutoff {
		return 1
	} else if pre <= -ratTanhCutoff {
		return -1
	}

	return pre * (27 + pre*pre) / (27 + 9*pre*pre)
}

func (t ratTanh) Deriv(pre, value float64) float64 {
	if pre >= ratTanhCutoff || pre <= -ratTanhCutoff {
		return 0
	}

	n := pre*pre - 9
	d := 27 + 9*pre*pre
	return 9 * n * n / (d * d)
}
