package anny

// Network is the main structure that is used to learn to map input to output functions. It owns
// the arena of every Neuron and Connection, an ordered sequence of Layers over that arena, and
// the bookkeeping for one training step at a time.
type Network struct {
	layers []*Layer

	// the arenas; Neurons and Connections are indexed by their ids
	neurons []*Neuron
	conns   []*Connection

	cf CostFunction

	// results of the most recent forward pass / cost evaluation
	lastOutput []float64
	lastCost   float64

	// whether or not the network should panic when it encounters an error
	panicErrors bool

	stat status
}

// PanicErrors makes all future errors from this Network panic instead of being returned, which
// can de-clutter prototyping code. It returns the Network.
func (net *Network) PanicErrors() *Network {
	net.panicErrors = true
	return net
}

// ChangeCost changes the CostFunction of the Network. This allows different CostFunctions for
// training and final model evaluation. If cf is nil, ChangeCost will panic with type NilArgError.
func (net *Network) ChangeCost(cf CostFunction) *Network {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}

	net.cf = cf
	return net
}

// NumLayers returns the number of Layers in the Network.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns the index'th Layer, first (input) to last (output). Index-out-of-bounds panics
// are allowed to go through.
func (net *Network) Layer(index int) *Layer {
	return net.layers[index]
}

// InputSize returns the number of input values the Network expects: the input Layer's neuron
// count, not counting its bias neuron.
func (net *Network) InputSize() int {
	return net.layers[0].inputSize()
}

// OutputSize returns the length of the vector Activate returns: the output Layer's total neuron
// count. If the output Layer was built with a bias neuron, its constant 1 occupies the last slot
// (see Layer.Activate); target vectors must match this full length.
func (net *Network) OutputSize() int {
	return net.layers[len(net.layers)-1].Size()
}

// Neurons returns the list of all Neurons in the Network, sorted by id such that Neurons()[n]
// has id=n. The slice that Neurons returns is a copy; the Neurons themselves are not.
func (net *Network) Neurons() []*Neuron {
	ns := make([]*Neuron, len(net.neurons))
	copy(ns, net.neurons)
	return ns
}

// Connections returns the list of all Connections in the Network, sorted by id, as a copied
// slice.
func (net *Network) Connections() []*Connection {
	cs := make([]*Connection, len(net.conns))
	copy(cs, net.conns)
	return cs
}

// LastOutput returns a copy of the output vector from the most recent forward pass, or nil if
// the Network has not been activated yet.
func (net *Network) LastOutput() []float64 {
	if net.lastOutput == nil {
		return nil
	}

	out := make([]float64, len(net.lastOutput))
	copy(out, net.lastOutput)
	return out
}

// LastCost returns the result of the most recent call to Cost.
func (net *Network) LastCost() float64 {
	return net.lastCost
}

// Activate runs one forward pass: the input Layer takes the given values positionally, then every
// following Layer activates in order, each only after its predecessor has finished. The output
// Layer's value vector is stored and returned (as a copy).
//
// Returns type SizeMismatchError if len(inputs) is not exactly InputSize(), before any neuron
// state is touched. Repeated calls with the same inputs and unchanged weights return the same
// output.
func (net *Network) Activate(inputs []float64) ([]float64, error) {
	if len(inputs) != net.InputSize() {
		return nil, net.setError(SizeMismatchError{net.InputSize(), len(inputs), "inputs"})
	}

	out, err := net.layers[0].Activate(inputs)
	if err != nil {
		return nil, net.setError(err)
	}

	for _, l := range net.layers[1:] {
		if out, err = l.Activate(nil); err != nil {
			return nil, net.setError(err)
		}
	}

	net.lastOutput = out
	net.stat = activated

	dupe := make([]float64, len(out))
	copy(dupe, out)
	return dupe, nil
}

// Cost runs the Network's CostFunction against the output of the most recent forward pass,
// storing and returning the result. No neuron state is mutated. Returns ErrNotActivated if there
// has been no forward pass, and type SizeMismatchError if len(targets) != OutputSize().
func (net *Network) Cost(targets []float64) (float64, error) {
	if net.stat < activated {
		return 0, net.setError(ErrNotActivated)
	} else if len(targets) != net.OutputSize() {
		return 0, net.setError(SizeMismatchError{net.OutputSize(), len(targets), "targets"})
	}

	c, err := net.cf.Cost(net.lastOutput, targets)
	if err != nil {
		return 0, net.setError(err)
	}

	net.lastCost = c
	return c, nil
}

// Backprop propagates error backwards from the given targets: the output Layer's deltas come
// from the CostFunction's derivatives (composed, per Neuron, with the activation function's local
// derivative), and every earlier Layer then finalizes its deltas strictly back-to-front. The
// input Layer is included for symmetry; its deltas feed no weight updates, since it owns no
// incoming Connections.
//
// Requires a completed forward pass.
func (net *Network) Backprop(targets []float64) error {
	if net.stat < activated {
		return net.setError(ErrNotActivated)
	} else if len(targets) != net.OutputSize() {
		return net.setError(SizeMismatchError{net.OutputSize(), len(targets), "targets"})
	}

	derivs := net.cf.Derivs(net.lastOutput, targets)

	if err := net.layers[len(net.layers)-1].Backprop(derivs); err != nil {
		return net.setError(err)
	}

	for i := len(net.layers) - 2; i >= 0; i-- {
		if err := net.layers[i].Backprop(nil); err != nil {
			return net.setError(err)
		}
	}

	net.stat = backpropped
	return nil
}

// AccumulateGradients adds the current example's gradient -- each Connection's source value times
// its target's delta -- into every Connection's accumulator, output Layer first, then backwards
// through the rest. Multiple Activate/Backprop/AccumulateGradients cycles may run before a single
// UpdateWeights; their gradients sum, which is what makes mini-batch training work.
//
// Requires finalized deltas (Backprop).
func (net *Network) AccumulateGradients() error {
	if net.stat < backpropped {
		return net.setError(ErrNoDeltas)
	}

	for i := len(net.layers) - 1; i >= 0; i-- {
		if err := net.layers[i].AccumulateGradients(); err != nil {
			return net.setError(err)
		}
	}

	net.stat = accumulated
	return nil
}

// UpdateWeights applies every Connection's accumulated gradient exactly once, scaled by the
// learning rate, and resets the accumulators, completing the training step. Traversal order
// matches AccumulateGradients.
//
// Requires accumulated gradients.
func (net *Network) UpdateWeights(learningRate float64) error {
	if net.stat < accumulated {
		return net.setError(ErrNoGradients)
	}

	for i := len(net.layers) - 1; i >= 0; i-- {
		if err := net.layers[i].ApplyWeightUpdates(learningRate); err != nil {
			return net.setError(err)
		}
	}

	net.stat = assembled
	return nil
}
