package anny

import (
	"fmt"
)

// the constant output of a bias neuron
const biasValue float64 = 1

// A Neuron holds a single activation value and its error delta, and is joined to other Neurons by
// Connections. Neurons live in an arena owned by the Network; their incoming and outgoing slices
// hold connection ids into that arena, in creation order.
type Neuron struct {
	id   int
	host *Network

	act    Activation
	isBias bool

	// the weighted input sum from the last forward pass, kept because the local derivative during
	// backpropagation is taken at this point
	pre float64

	value float64
	delta float64

	// set when the last forward pass took an explicit input verbatim, without applying the
	// activation function; the local derivative is then 1, not the activation's
	passthrough bool

	in, out []int
}

// String returns a short identifying description of the Neuron, of the form:
//	<neuron %d, Activation: %s>
// or, for bias neurons:
//	<bias neuron %d>
// If given a Neuron that is nil, String will return "<nil>".
func (n *Neuron) String() string {
	if n == nil {
		return "<nil>"
	}

	if n.isBias {
		return fmt.Sprintf("<bias neuron %d>", n.id)
	}

	return fmt.Sprintf("<neuron %d, Activation: %s>", n.id, n.act.TypeString())
}

// ID returns the non-negative integer given to the Neuron as a member of its Network's arena.
// IDs are unique within Networks.
func (n *Neuron) ID() int {
	return n.id
}

// IsBias returns whether or not this is a bias neuron, which outputs the constant 1 regardless of
// inputs and owns no trainable incoming connections.
func (n *Neuron) IsBias() bool {
	return n.isBias
}

// Value returns the Neuron's activation value from the most recent forward pass.
func (n *Neuron) Value() float64 {
	return n.value
}

// Delta returns the derivative of the total cost w.r.t. this Neuron's value, from the most recent
// backward pass.
func (n *Neuron) Delta() float64 {
	return n.delta
}

// NumInputs returns the number of incoming Connections.
func (n *Neuron) NumInputs() int {
	return len(n.in)
}

// NumOutputs returns the number of outgoing Connections.
func (n *Neuron) NumOutputs() int {
	return len(n.out)
}

// Incoming returns the index'th incoming Connection, in creation order. Index-out-of-bounds
// panics are allowed to go through.
func (n *Neuron) Incoming(index int) *Connection {
	return n.host.conns[n.in[index]]
}

// Outgoing returns the index'th outgoing Connection, in creation order.
func (n *Neuron) Outgoing(index int) *Connection {
	return n.host.conns[n.out[index]]
}

// gather computes and stores the Neuron's pre-activation, returning whether the activation
// function still needs to be applied. Bias neurons pin their value at 1; a neuron with no
// incoming connections takes the explicit input verbatim when one is supplied (the input-layer
// case), and otherwise sums an empty set of inputs (pre = 0).
func (n *Neuron) gather(input ...float64) (needsAct bool) {
	n.passthrough = false

	if n.isBias {
		n.pre, n.value = biasValue, biasValue
		return false
	}

	if len(n.in) == 0 && len(input) > 0 {
		n.pre, n.value = input[0], input[0]
		n.passthrough = true
		return false
	}

	var sum float64
	for _, id := range n.in {
		c := n.host.conns[id]
		sum += n.host.neurons[c.src].value * c.weight
	}

	n.pre = sum
	return true
}

// Activate recomputes the Neuron's value. If the Neuron has no incoming Connections and an
// explicit input is supplied, the value is that input, untransformed; bias neurons ignore
// explicit input entirely and stay at 1. Otherwise the value is the activation function applied
// to the weighted sum of the incoming source values.
//
// Every source Neuron must already hold its value for the current pass; Activate performs no
// ordering checks of its own -- the Layer and Network are responsible for strict front-to-back
// order.
func (n *Neuron) Activate(input ...float64) float64 {
	if n.gather(input...) {
		n.value = n.act.Evaluate(n.pre)
	}

	return n.value
}

// SetOutputDelta finalizes the delta of an output-layer Neuron. costDeriv is the derivative of
// the total cost w.r.t. this Neuron's value, as produced by CostFunction.Derivs; the delta
// composes it with the activation function's local derivative at the stored pre-activation.
// Bias neurons get delta 0: their output is constant, so no error flows through them.
func (n *Neuron) SetOutputDelta(costDeriv float64) {
	if n.isBias {
		n.delta = 0
		return
	}

	n.delta = costDeriv * n.localDeriv()
}

// localDeriv is d(value)/d(pre) from the last forward pass: the activation's derivative, or 1 for
// a neuron whose value was set verbatim from explicit input.
func (n *Neuron) localDeriv() float64 {
	if n.passthrough {
		return 1
	}

	return n.act.Deriv(n.pre, n.value)
}

// PropagateDelta computes the delta of a hidden (or input) Neuron from the finalized deltas of
// every Neuron it feeds into, scaled by the local activation derivative. Must only be called once
// every target Neuron's delta is final for this pass, i.e. strictly layer-by-layer from the
// output side.
func (n *Neuron) PropagateDelta() {
	if n.isBias {
		n.delta = 0
		return
	}

	var sum float64
	for _, id := range n.out {
		c := n.host.conns[id]
		sum += c.weight * n.host.neurons[c.dst].delta
	}

	n.delta = sum * n.localDeriv()
}

// AccumulateGradients adds this example's gradient contribution to every outgoing Connection:
// the Neuron's own value times the target's delta.
func (n *Neuron) AccumulateGradients() {
	for _, id := range n.out {
		c := n.host.conns[id]
		c.AccumulateGradient(n.value, n.host.neurons[c.dst].delta)
	}
}

// ApplyWeightUpdates applies the accumulated gradient of every outgoing Connection and resets
// the accumulators.
func (n *Neuron) ApplyWeightUpdates(learningRate float64) {
	for _, id := range n.out {
		n.host.conns[id].ApplyUpdate(learningRate)
	}
}
