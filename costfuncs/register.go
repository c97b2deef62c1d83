package costfuncs

import (
	"github.com/pkg/errors"

	"github.com/dryzhkov/anny"
)

func lengthMismatch(outs, targets int) error {
	return errors.Errorf("output and target lengths differ (%d vs %d)", outs, targets)
}

func init() {
	list := map[string]func() anny.CostFunction{
		MSE().TypeString():          func() anny.CostFunction { return MSE() },
		Abs().TypeString():          func() anny.CostFunction { return Abs() },
		CrossEntropy().TypeString(): func() anny.CostFunction { return CrossEntropy() },
		Huber(1).TypeString():       func() anny.CostFunction { return Huber(1) },
	}

	for s, f := range list {
		if err := anny.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}

	anny.SetDefaultCostFunction(func() anny.CostFunction { return MSE() })
}
