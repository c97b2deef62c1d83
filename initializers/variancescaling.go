package initializers

import (
	"math"
)

type varianceScaling struct {
	gen    *truncNormal
	factor float64
}

// VarianceScaling returns an initializer drawing from a truncated normal with standard deviation
// sqrt(factor/fanIn). The factor defaults to 1 ("varscl-factor", settable by SetDefault), which
// is LeCun initialization.
func VarianceScaling() *varianceScaling {
	return &varianceScaling{TruncNormal(), defaultValue["varscl-factor"]}
}

// Factor sets the scaling factor.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// Seed pins the underlying RNG to a reproducible stream.
func (v *varianceScaling) Seed(s int64) *varianceScaling {
	v.gen.seed(s)
	return v
}

func (v *varianceScaling) TypeString() string {
	return "variance-scaling"
}

// Weight is the implementation of anny.Initializer.
func (v *varianceScaling) Weight(fanIn int) float64 {
	return v.gen.SD(math.Sqrt(v.factor / float64(fanIn))).Gen()
}
