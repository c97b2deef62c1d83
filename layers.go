package anny

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/dryzhkov/anny/utils"
)

// one index per goroutine request; layers are small enough that griddier scheduling buys nothing
const opsPerThread, threadsPerCPU int = 1, 1

// A Layer is an ordered, fixed-size group of Neurons that activate and train together. Layers are
// constructed standalone with NewLayer, optionally wired with Connect, and become live once
// adopted into a Network by New; any problem encountered by the fluent construction methods is
// held on the Layer and surfaced at that point (or earlier, through Err).
type Layer struct {
	name string

	// nil until the Layer has been adopted into a Network
	host *Network

	// fixed order; the bias neuron, if any, is last
	neurons []*Neuron

	hasBias bool
	act     Activation

	// Connect calls recorded during construction, materialized into Connections at New. A pair
	// connected twice gets two parallel edges; that is a caller error, not something the Layer
	// checks for.
	pending []connectIntent

	err error
}

type connectIntent struct {
	next *Layer
	init Initializer
}

// NewLayer returns a Layer holding size fresh Neurons, in fixed order, with no bias and no
// activation function. Both can be set with AddBias and Act; an Activation must be set (or a
// default registered) before the Layer is given to New.
func NewLayer(size int) *Layer {
	l := new(Layer)

	if size < 1 {
		l.err = errors.Errorf("Layer must have size >= 1 (%d)", size)
		return l
	}

	l.neurons = make([]*Neuron, size)
	for i := range l.neurons {
		l.neurons[i] = &Neuron{id: -1}
	}

	return l
}

// Name sets the name used to print this Layer, returning the same Layer. Purely cosmetic.
func (l *Layer) Name(name string) *Layer {
	l.name = name
	return l
}

// AddBias appends a bias neuron -- constant output 1, no trainable inputs -- as the last Neuron
// of the Layer, returning the same Layer. Calling AddBias twice is an error.
func (l *Layer) AddBias() *Layer {
	if l.err != nil {
		return l
	} else if l.hasBias {
		l.err = errors.Errorf("Layer %v already has a bias neuron", l)
		return l
	} else if l.host != nil {
		l.err = errors.Errorf("Layer %v has already been assembled", l)
		return l
	}

	l.neurons = append(l.neurons, &Neuron{id: -1, isBias: true})
	l.hasBias = true
	return l
}

// Act sets the activation function for every Neuron in the Layer, returning the same Layer.
func (l *Layer) Act(act Activation) *Layer {
	if l.err != nil {
		return l
	} else if act == nil {
		l.err = NilArgError{"Activation"}
		return l
	} else if l.host != nil {
		l.err = errors.Errorf("Layer %v has already been assembled", l)
		return l
	}

	l.act = act
	return l
}

// Connect records a dense connection from every Neuron in this Layer to every non-bias Neuron in
// next, with initial weights to be drawn from init using this Layer's total neuron count as
// fan-in. The edges themselves are created when the Layers are assembled into a Network.
//
// Connect should be called at most once per Layer pair: a second call produces a second, parallel
// set of edges.
func (l *Layer) Connect(next *Layer, init Initializer) *Layer {
	if l.err != nil {
		return l
	} else if next == nil {
		l.err = NilArgError{"next Layer"}
		return l
	} else if init == nil {
		l.err = NilArgError{"Initializer"}
		return l
	} else if l.host != nil {
		l.err = errors.Errorf("Layer %v has already been assembled", l)
		return l
	}

	l.pending = append(l.pending, connectIntent{next, init})
	return l
}

// Err returns any error encountered by the fluent construction methods. New checks this for every
// Layer it is given, so checking it directly is optional.
func (l *Layer) Err() error {
	return l.err
}

// String returns the Layer's name surrounded by double quotes, or:
//	<layer, size: %d>
// if no name has been set.
func (l *Layer) String() string {
	if l == nil {
		return "<nil>"
	}

	if l.name != "" {
		return "\"" + l.name + "\""
	}

	return fmt.Sprintf("<layer, size: %d>", len(l.neurons))
}

// Size returns the total number of Neurons in the Layer, bias included.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// HasBias returns whether or not the Layer's last Neuron is a bias neuron.
func (l *Layer) HasBias() bool {
	return l.hasBias
}

// Activation returns the activation function shared by the Layer's Neurons.
func (l *Layer) Activation() Activation {
	return l.act
}

// Neuron returns the index'th Neuron, in the fixed construction order (bias last).
// Index-out-of-bounds panics are allowed to go through.
func (l *Layer) Neuron(index int) *Neuron {
	return l.neurons[index]
}

// inputSize is the number of explicit input values the Layer accepts: every Neuron except the
// bias.
func (l *Layer) inputSize() int {
	if l.hasBias {
		return len(l.neurons) - 1
	}

	return len(l.neurons)
}

// Activate recomputes every Neuron's value, in parallel within the Layer. For the input layer,
// inputs are handed to the Neurons positionally; every other Layer must be given nil. The
// returned vector preserves neuron order and includes the bias neuron's constant 1 as its last
// element if the Layer has one.
//
// Layers using a Layerwise activation (e.g. softmax) are normalized over the pre-activations of
// all non-bias Neurons, after every sum has been computed.
func (l *Layer) Activate(inputs []float64) ([]float64, error) {
	if l.host == nil {
		return nil, ErrNotAssembled
	} else if inputs != nil && len(inputs) != l.inputSize() {
		return nil, l.host.setError(SizeMismatchError{l.inputSize(), len(inputs), "inputs"})
	}

	if lw, ok := l.act.(Layerwise); ok {
		l.activateLayerwise(lw, inputs)
	} else {
		f := func(i int) {
			if inputs != nil && i < len(inputs) {
				l.neurons[i].Activate(inputs[i])
			} else {
				l.neurons[i].Activate()
			}
		}

		utils.MultiThread(0, len(l.neurons), f, opsPerThread, threadsPerCPU)
	}

	return l.Values(), nil
}

// activateLayerwise runs the two-phase path for normalized activations: all pre-activations
// first, then one normalization pass over the non-bias Neurons.
func (l *Layer) activateLayerwise(lw Layerwise, inputs []float64) {
	pres := make([]float64, 0, len(l.neurons))
	raw := make([]*Neuron, 0, len(l.neurons))

	for i, n := range l.neurons {
		var needsAct bool
		if inputs != nil && i < len(inputs) {
			needsAct = n.gather(inputs[i])
		} else {
			needsAct = n.gather()
		}

		if needsAct {
			pres = append(pres, n.pre)
			raw = append(raw, n)
		}
	}

	// every neuron may be pass-through (bias, or explicit input with no incoming edges), in
	// which case there is nothing to normalize
	if len(pres) == 0 {
		return
	}

	values := make([]float64, len(pres))
	lw.EvaluateLayer(pres, values)

	for i, n := range raw {
		n.value = values[i]
	}
}

// Values returns a copy of the ordered vector of the Neurons' current values.
func (l *Layer) Values() []float64 {
	vs := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		vs[i] = n.value
	}

	return vs
}

// Backprop finalizes the deltas of every Neuron in the Layer. For the output layer, costDerivs
// must hold the derivative of the cost w.r.t. each of the Layer's values (one per Neuron, bias
// slot included); every other Layer must be given nil, and pulls its deltas from the Layers it
// feeds into. Must only be called after every successor Layer's deltas are final.
func (l *Layer) Backprop(costDerivs []float64) error {
	if l.host == nil {
		return ErrNotAssembled
	}

	if costDerivs != nil {
		if len(costDerivs) != len(l.neurons) {
			return l.host.setError(SizeMismatchError{len(l.neurons), len(costDerivs), "cost derivatives"})
		}

		f := func(i int) {
			l.neurons[i].SetOutputDelta(costDerivs[i])
		}
		utils.MultiThread(0, len(l.neurons), f, opsPerThread, threadsPerCPU)
		return nil
	}

	f := func(i int) {
		l.neurons[i].PropagateDelta()
	}
	utils.MultiThread(0, len(l.neurons), f, opsPerThread, threadsPerCPU)
	return nil
}

// AccumulateGradients fans out to every Neuron, adding the current example's gradients to the
// Layer's outgoing Connections. Neurons own disjoint outgoing sets, so the fan-out is safe to run
// in parallel.
func (l *Layer) AccumulateGradients() error {
	if l.host == nil {
		return ErrNotAssembled
	}

	f := func(i int) {
		l.neurons[i].AccumulateGradients()
	}
	utils.MultiThread(0, len(l.neurons), f, opsPerThread, threadsPerCPU)
	return nil
}

// ApplyWeightUpdates fans out to every Neuron, applying and resetting the accumulated gradient of
// each outgoing Connection exactly once.
func (l *Layer) ApplyWeightUpdates(learningRate float64) error {
	if l.host == nil {
		return ErrNotAssembled
	}

	f := func(i int) {
		l.neurons[i].ApplyWeightUpdates(learningRate)
	}
	utils.MultiThread(0, len(l.neurons), f, opsPerThread, threadsPerCPU)
	return nil
}
