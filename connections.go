package anny

import (
	"fmt"
)

// A Connection is a directed, weighted edge between two Neurons. It owns the weight for that edge
// and the accumulator that gradients are summed into between weight updates. Connections live in
// an arena owned by the Network and refer to their endpoints by neuron id, not by pointer.
type Connection struct {
	id   int
	host *Network

	// arena ids of the source and target Neurons
	src, dst int

	weight float64

	// the gradient summed since the last ApplyUpdate. Summing more than once before an update is
	// what makes mini-batches work.
	grad float64
}

// String returns a short identifying description of the Connection, of the form:
//	<conn %d: %d -> %d>
// where the three numbers are the Connection's id and the ids of its source and target Neurons.
func (c *Connection) String() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprintf("<conn %d: %d -> %d>", c.id, c.src, c.dst)
}

// ID returns the non-negative integer identifying the Connection within its Network.
func (c *Connection) ID() int {
	return c.id
}

// Source returns the Neuron this Connection carries values from.
func (c *Connection) Source() *Neuron {
	return c.host.neurons[c.src]
}

// Target returns the Neuron this Connection carries values to.
func (c *Connection) Target() *Neuron {
	return c.host.neurons[c.dst]
}

// Weight returns the current weight of the edge.
func (c *Connection) Weight() float64 {
	return c.weight
}

// Gradient returns the gradient accumulated since the last weight update. Zero immediately after
// ApplyUpdate.
func (c *Connection) Gradient() float64 {
	return c.grad
}

// AccumulateGradient adds sourceValue*targetDelta to the Connection's accumulator. Safe to call
// once per training example, any number of examples, before a single ApplyUpdate.
func (c *Connection) AccumulateGradient(sourceValue, targetDelta float64) {
	c.grad += sourceValue * targetDelta
}

// ApplyUpdate performs one gradient-descent step on the weight and resets the accumulator.
func (c *Connection) ApplyUpdate(learningRate float64) {
	c.weight += -1 * learningRate * c.grad
	c.grad = 0
}
