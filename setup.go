package anny

import (
	"github.com/pkg/errors"
)

// A NetworkSpec is the polymorphic argument to New: either a list of raw layer sizes (Sizes) or
// a list of caller-built Layers (Layers). The two are alternate entry points to the same Network;
// there is deliberately no third way to construct one.
type NetworkSpec interface {
	// build produces the Network's layers, connected as far as the variant connects them
	build(net *Network) ([]*Layer, error)
}

type sizesSpec []int

type layersSpec []*Layer

// Sizes specifies a Network built from raw neuron counts. The Network constructs the Layers
// itself: default activation on every Layer, a bias neuron on every Layer except the last, and
// dense connections between consecutive Layers drawn from the default Initializer. The catalog
// subpackages must have been imported for the defaults to exist.
func Sizes(counts ...int) NetworkSpec {
	return sizesSpec(counts)
}

// Layers specifies a Network assembled from caller-built Layers, first to last. The caller
// controls activation and bias per Layer and wires Layers with Connect; the Network will not
// connect Layers it did not build itself, so a pair the caller never connected stays unconnected
// (and activates predictably at f(0) -- see Layer.Activate).
func Layers(ls ...*Layer) NetworkSpec {
	return layersSpec(ls)
}

func (s sizesSpec) build(net *Network) ([]*Layer, error) {
	if len(s) == 0 {
		return nil, ErrNoLayers
	} else if defaultActivation == nil {
		return nil, ErrNoDefaultActivation
	} else if defaultInitializer == nil {
		return nil, ErrNoDefaultInitializer
	}

	ls := make([]*Layer, len(s))
	for i, size := range s {
		if size < 1 {
			return nil, errors.Errorf("layer %d must have size >= 1 (%d)", i, size)
		}

		ls[i] = NewLayer(size).Act(defaultActivation())
		if i != len(s)-1 {
			ls[i].AddBias()
		}
	}

	init := defaultInitializer()
	for i := 0; i+1 < len(ls); i++ {
		ls[i].Connect(ls[i+1], init)
	}

	return ls, nil
}

func (s layersSpec) build(net *Network) ([]*Layer, error) {
	if len(s) == 0 {
		return nil, ErrNoLayers
	}

	for i, l := range s {
		if l == nil {
			return nil, errors.Wrapf(NilArgError{"Layer"}, "layer %d: ", i)
		} else if l.err != nil {
			return nil, errors.Wrapf(l.err, "layer %d (%v) was not constructed cleanly: ", i, l)
		} else if l.host != nil {
			return nil, errors.Errorf("layer %d (%v) already belongs to a Network", i, l)
		}

		if l.act == nil {
			if defaultActivation == nil {
				return nil, errors.Wrapf(ErrNoDefaultActivation, "layer %d (%v) has no Activation: ", i, l)
			}
			l.act = defaultActivation()
		}

		// check that there are no duplicates
		for o := i + 1; o < len(s); o++ {
			if l == s[o] {
				return nil, errors.Errorf("layer %d (%v) is also layer %d", i, l, o)
			}
		}
	}

	// every recorded connection must stay inside this Network
	for i, l := range s {
		for _, intent := range l.pending {
			found := false
			for _, o := range s {
				if intent.next == o {
					found = true
					break
				}
			}

			if !found {
				return nil, errors.Errorf("layer %d (%v) is connected to a Layer outside this Network", i, l)
			}
		}
	}

	return s, nil
}

// New constructs a Network from the given specification. The first Layer is the input layer, the
// last is the output layer, and everything between is hidden, in the given order; the order is
// fixed from here on. The CostFunction defaults to the registered default (MSE, once costfuncs is
// imported) and can be swapped with ChangeCost.
//
// If New returns an error, no partially-assembled Network is ever exposed: caller-built Layers
// are only adopted on success.
func New(spec NetworkSpec) (*Network, error) {
	if spec == nil {
		return nil, NilArgError{"NetworkSpec"}
	}

	net := new(Network)

	ls, err := spec.build(net)
	if err != nil {
		return nil, err
	}

	if defaultCostFunc == nil {
		return nil, ErrNoDefaultCostFunc
	}
	net.cf = defaultCostFunc()

	net.adopt(ls)
	net.materialize()
	net.stat = assembled

	return net, nil
}

// adopt moves the given Layers' Neurons into the Network's arena, assigning ids in layer order.
func (net *Network) adopt(ls []*Layer) {
	net.layers = ls

	for _, l := range ls {
		l.host = net

		for _, n := range l.neurons {
			n.id = len(net.neurons)
			n.host = net
			n.act = l.act
			net.neurons = append(net.neurons, n)
		}
	}
}

// materialize turns every recorded Connect intent into dense Connections in the arena. Weights
// are drawn here, one per edge, with the source Layer's total neuron count as fan-in; edges
// register themselves as outgoing on their source and incoming on their target.
func (net *Network) materialize() {
	for _, l := range net.layers {
		for _, intent := range l.pending {
			fanIn := l.Size()

			for _, src := range l.neurons {
				for _, dst := range intent.next.neurons {
					if dst.isBias {
						continue
					}

					net.connect(src, dst, intent.init.Weight(fanIn))
				}
			}
		}

		l.pending = nil
	}
}

// connect creates a single weighted edge in the arena.
func (net *Network) connect(src, dst *Neuron, weight float64) {
	c := &Connection{
		id:     len(net.conns),
		host:   net,
		src:    src.id,
		dst:    dst.id,
		weight: weight,
	}

	net.conns = append(net.conns, c)
	src.out = append(src.out, c.id)
	dst.in = append(dst.in, c.id)
}
