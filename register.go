package anny

import (
	"github.com/pkg/errors"
)

// The registries map TypeStrings to blank-value constructors, so that callers can look catalog
// entries up by name. Each catalog subpackage registers its own types from init().
var (
	activations   = make(map[string]func() Activation)
	costFunctions = make(map[string]func() CostFunction)
	inits         = make(map[string]func() Initializer)
)

// Defaults used by the Sizes construction mode. These are nil until a catalog subpackage sets
// them; constructing a Network from raw sizes without importing those subpackages is an error.
var (
	defaultActivation  func() Activation
	defaultCostFunc    func() CostFunction
	defaultInitializer func() Initializer
)

// RegisterActivation adds an Activation constructor to the registry under the given name,
// usually the TypeString of what f returns. Returns error if the name is taken or if f (or its
// return) is nil.
func RegisterActivation(name string, f func() Activation) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	} else if activations[name] != nil {
		return errors.Errorf("Activation %q has already been registered", name)
	}

	activations[name] = f
	return nil
}

// RegisterCostFunction performs the same operation as RegisterActivation, for CostFunctions.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	} else if costFunctions[name] != nil {
		return errors.Errorf("CostFunction %q has already been registered", name)
	}

	costFunctions[name] = f
	return nil
}

// RegisterInitializer performs the same operation as RegisterActivation, for Initializers.
func RegisterInitializer(name string, f func() Initializer) error {
	if f == nil || f() == nil {
		return ErrRegisterNilReturn
	} else if inits[name] != nil {
		return errors.Errorf("Initializer %q has already been registered", name)
	}

	inits[name] = f
	return nil
}

// ActivationByName returns a fresh instance of the Activation registered under the given name.
func ActivationByName(name string) (Activation, error) {
	f := activations[name]
	if f == nil {
		return nil, errors.Errorf("no Activation has been registered with name %q", name)
	}

	return f(), nil
}

// CostFunctionByName returns a fresh instance of the CostFunction registered under the given name.
func CostFunctionByName(name string) (CostFunction, error) {
	f := costFunctions[name]
	if f == nil {
		return nil, errors.Errorf("no CostFunction has been registered with name %q", name)
	}

	return f(), nil
}

// InitializerByName returns a fresh instance of the Initializer registered under the given name.
func InitializerByName(name string) (Initializer, error) {
	f := inits[name]
	if f == nil {
		return nil, errors.Errorf("no Initializer has been registered with name %q", name)
	}

	return f(), nil
}

// SetDefaultActivation sets the Activation used for layers that the Network builds itself from
// raw sizes. The subpackage "activations" sets this to Logistic from init().
func SetDefaultActivation(f func() Activation) {
	defaultActivation = f
}

// SetDefaultCostFunction sets the CostFunction given to Networks that are not handed one
// explicitly. The subpackage "costfuncs" sets this to MSE from init().
func SetDefaultCostFunction(f func() CostFunction) {
	defaultCostFunc = f
}

// SetDefaultInitializer sets the Initializer used for connections that the Network creates
// itself from raw sizes. The subpackage "initializers" sets this to FanIn from init().
func SetDefaultInitializer(f func() Initializer) {
	defaultInitializer = f
}
