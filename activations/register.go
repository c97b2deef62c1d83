package activations

import (
	"github.com/dryzhkov/anny"
)

func init() {
	catalog := map[string]func() anny.Activation{
		"identity":   func() anny.Activation { return Identity() },
		"logistic":   func() anny.Activation { return Logistic() },
		"tanh":       func() anny.Activation { return Tanh() },
		"lecun-tanh": func() anny.Activation { return LeCunTanh() },
		"rat-tanh":   func() anny.Activation { return RatTanh() },
		"relu":       func() anny.Activation { return ReLU() },
		"softplus":   func() anny.Activation { return Softplus() },
		"ramp":       func() anny.Activation { return Ramp() },
		"step":       func() anny.Activation { return Step() },
		"sine":       func() anny.Activation { return Sine() },
		"sqrt":       func() anny.Activation { return Sqrt() },
		"exp":        func() anny.Activation { return Exp() },
		"softmax":    func() anny.Activation { return Softmax() },
		"unit-sum":   func() anny.Activation { return UnitSum() },
	}

	for name, f := range catalog {
		if err := anny.RegisterActivation(name, f); err != nil {
			panic(err)
		}
	}

	anny.SetDefaultActivation(func() anny.Activation { return Logistic() })
}
