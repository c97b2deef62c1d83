// Package initializers is the catalog of provided weight initializers and the RNGs backing them.
// Importing it registers every entry by name and sets FanIn as the default initializer.
package initializers

import "math/rand"

// RNG needs no explanation.
type RNG interface {
	Gen() float64
}

// source is embedded in every RNG here: unseeded it draws from the shared math/rand source,
// seeded it carries its own stream so runs can be reproduced.
type source struct {
	rnd *rand.Rand
}

func (s *source) seed(v int64) {
	s.rnd = rand.New(rand.NewSource(v))
}

func (s *source) float64() float64 {
	if s.rnd != nil {
		return s.rnd.Float64()
	}

	return rand.Float64()
}

func (s *source) normFloat64() float64 {
	if s.rnd != nil {
		return s.rnd.NormFloat64()
	}

	return rand.NormFloat64()
}

// a seeder is any RNG that can be pinned to a reproducible stream
type seeder interface {
	RNG
	seed(v int64)
}

type uniform struct {
	source
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its bounds, which can be set
// by Bounds. The default bounds ("uniform-lower" and "uniform-upper") can be set by SetDefault.
func Uniform() *uniform {
	return &uniform{lower: defaultValue["uniform-lower"], upper: defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed pins the RNG to its own reproducible stream.
func (u *uniform) Seed(v int64) *uniform {
	u.seed(v)
	return u
}

// Gen is the implementation of RNG for Uniform.
func (u *uniform) Gen() float64 {
	return u.float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	source
	mean, sd float64
}

// Normal returns an RNG that draws from a normal distribution. The center and standard deviation
// can be set by Mean and SD; their defaults ("normal-mean" and "normal-sd") by SetDefault.
func Normal() *normal {
	return &normal{mean: defaultValue["normal-mean"], sd: defaultValue["normal-sd"]}
}

// SD sets the standard deviation of the distribution.
func (n *normal) SD(sd float64) *normal {
	n.sd = sd
	return n
}

// Mean sets the center of the distribution.
func (n *normal) Mean(mean float64) *normal {
	n.mean = mean
	return n
}

// Seed pins the RNG to its own reproducible stream.
func (n *normal) Seed(v int64) *normal {
	n.seed(v)
	return n
}

// Gen is the implementation of RNG for Normal.
func (n *normal) Gen() float64 {
	return n.normFloat64()*n.sd + n.mean
}

const defaultTrunc float64 = 2.0

type truncNormal struct {
	*normal
	trunc float64
}

// TruncNormal returns an RNG like Normal but with the tails cut off, by default at 2 standard
// deviations. Mean, SD, and Seed work as they do on Normal; the cutoff can be moved by Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations kept on either side of the mean. Trunc panics if
// given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// SD sets the standard deviation of the distribution.
func (t *truncNormal) SD(sd float64) *truncNormal {
	t.normal.SD(sd)
	return t
}

// Mean sets the center of the distribution.
func (t *truncNormal) Mean(mean float64) *truncNormal {
	t.normal.Mean(mean)
	return t
}

// Seed pins the RNG to its own reproducible stream.
func (t *truncNormal) Seed(v int64) *truncNormal {
	t.seed(v)
	return t
}

// Gen is the implementation of RNG for TruncNormal.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.normFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.sd + t.mean
	}
}
