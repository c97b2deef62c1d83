package initializers

type fanInScaled struct {
	gen RNG
}

// FanIn returns the fan-in-scaled initializer: a uniform draw from (-1, 1) divided by the number
// of inputs feeding the connection's target layer. Zero-mean, and the variance shrinks as fan-in
// grows, which keeps wide layers from saturating their activations at the start of training.
//
// FanIn is the default Initializer.
func FanIn() *fanInScaled {
	return &fanInScaled{Uniform().Bounds(-1, 1)}
}

// From swaps the underlying RNG; the fan-in division still applies on top of it.
func (f *fanInScaled) From(g RNG) *fanInScaled {
	f.gen = g
	return f
}

// Seed pins the underlying RNG to a reproducible stream, if it supports seeding.
func (f *fanInScaled) Seed(v int64) *fanInScaled {
	if s, ok := f.gen.(seeder); ok {
		s.seed(v)
	}

	return f
}

func (f *fanInScaled) TypeString() string {
	return "fan-in"
}

// Weight is the implementation of anny.Initializer.
func (f *fanInScaled) Weight(fanIn int) float64 {
	return f.gen.Gen() / float64(fanIn)
}
