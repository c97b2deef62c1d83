package initializers

import (
	"math"

	"github.com/pkg/errors"

	"github.com/dryzhkov/anny"
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": -1,
		"uniform-upper": 1,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
	}

	list := map[string]func() anny.Initializer{
		FanIn().TypeString():           func() anny.Initializer { return FanIn() },
		VarianceScaling().TypeString(): func() anny.Initializer { return VarianceScaling() },
		Random(Uniform()).TypeString(): func() anny.Initializer { return Random(Uniform()) },
		Constant(0).TypeString():       func() anny.Initializer { return Constant(0) },
	}

	for s, f := range list {
		if err := anny.RegisterInitializer(s, f); err != nil {
			panic(err.Error())
		}
	}

	anny.SetDefaultInitializer(func() anny.Initializer { return FanIn() })
}

// SetDefault overrides one of the named default values the catalog's constructors start from
// ("uniform-lower", "uniform-upper", "normal-mean", "normal-sd", "varscl-factor").
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error.
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
