// Package anny implements a small feedforward neural network engine: ordered layers of neurons,
// forward activation, backpropagation of error deltas, gradient accumulation, and plain
// gradient-descent weight updates. Activation functions, cost functions, and weight initializers
// are pluggable and live in the subpackages "activations", "costfuncs", and "initializers".
//
// Creating Networks
//
// The quickest way to a working Network is from raw layer sizes:
//
//		net, err := anny.New(anny.Sizes(2, 2, 1))
//
// For brevity, anny is abbreviated in examples to its package name. Sizes gives every layer the
// default activation (logistic), a bias neuron on everything but the output layer, and dense
// connections with fan-in-scaled random weights. The defaults come from the catalog subpackages,
// so at least the following imports are needed:
//
//		import (
//			_ "github.com/dryzhkov/anny/activations"
//			_ "github.com/dryzhkov/anny/costfuncs"
//			_ "github.com/dryzhkov/anny/initializers"
//		)
//
// For control over each layer, build them yourself and hand them over in order:
//
//		in := anny.NewLayer(2).Name("input").AddBias()
//		hid := anny.NewLayer(3).Name("hidden").Act(activations.Tanh()).AddBias()
//		out := anny.NewLayer(1).Name("output").Act(activations.Logistic())
//
//		in.Connect(hid, initializers.FanIn())
//		hid.Connect(out, initializers.FanIn())
//
//		net, err := anny.New(anny.Layers(in, hid, out))
//
// The Network never connects layers it did not build itself -- what you wire is what you get.
//
// Training
//
// One training step is the sequence
//
//		net.Activate(inputs)
//		net.Backprop(targets)
//		net.AccumulateGradients()
//		net.UpdateWeights(learningRate)
//
// and the Network enforces that order. Gradients sum across repeated
// Activate/Backprop/AccumulateGradients cycles, so mini-batch training is the same sequence with
// one UpdateWeights per batch. Correct wraps the per-example case; Train runs the whole loop over
// a dataset:
//
//		err := net.Train(anny.TrainArgs{
//			Data:         data,
//			BatchSize:    4,
//			RunCondition: anny.TrainUntil(10000),
//			LearningRate: anny.ConstantRate(0.5),
//		})
//
// Testing without touching weights is done with Test, and Cost evaluates the cost function
// against the most recent output on its own.
package anny
