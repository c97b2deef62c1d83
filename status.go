package anny

// status tracks how far through a single training step the Network has progressed. Each public
// operation checks that its predecessor has run; this is what makes the layer-by-layer call order
// an enforced contract instead of caller discipline.
type status int8

const (
	assembled   status = iota // construction finished, no pass in flight
	activated                 // forward pass complete, lastOutput valid
	backpropped               // deltas finalized for every layer
	accumulated               // gradients summed into connection accumulators
)

// setError panics the given error if PanicErrors() has been called on the Network, and otherwise
// just returns it.
func (net *Network) setError(e error) error {
	if e != nil && net.panicErrors {
		panic(e)
	}

	return e
}
