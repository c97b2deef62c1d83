package initializers

type leCun struct {
	*varianceScaling
}

// LeCun is VarianceScaling with factor 1.
func LeCun() leCun {
	return leCun{VarianceScaling().Factor(1)}
}

type he struct {
	*varianceScaling
}

// He is VarianceScaling with factor 2, the usual choice for ReLU layers.
func He() he {
	return he{VarianceScaling().Factor(2)}
}

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG for the weights as-is. There is no
// fan-in scaling beyond whatever the RNG does itself.
func Random(g RNG) random {
	return random{g}
}

func (r random) TypeString() string {
	return "random"
}

// Weight is the implementation of anny.Initializer.
func (r random) Weight(fanIn int) float64 {
	return r.Gen()
}

type constant float64

// Constant returns an Initializer that sets every weight to the same value. Training from a
// constant start point keeps neurons within a layer identical to each other, so this is mostly
// useful for reproducing exact runs and for tests.
func Constant(v float64) constant {
	return constant(v)
}

func (c constant) TypeString() string {
	return "constant"
}

// Weight is the implementation of anny.Initializer.
func (c constant) Weight(fanIn int) float64 {
	return float64(c)
}
