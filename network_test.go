package anny_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dryzhkov/anny"
	"github.com/dryzhkov/anny/activations"
	_ "github.com/dryzhkov/anny/costfuncs"
	"github.com/dryzhkov/anny/initializers"
)

// seeded three-layer network used by most tests here
func buildNet(t *testing.T, hidden int, seed int64) *anny.Network {
	t.Helper()

	in := anny.NewLayer(2).Name("input").AddBias()
	hid := anny.NewLayer(hidden).Name("hidden").Act(activations.Logistic()).AddBias()
	out := anny.NewLayer(1).Name("output").Act(activations.Logistic())

	in.Connect(hid, initializers.FanIn().Seed(seed))
	hid.Connect(out, initializers.FanIn().Seed(seed+1))

	net, err := anny.New(anny.Layers(in, hid, out))
	require.NoError(t, err)
	return net
}

func TestNewFromSizes(t *testing.T) {
	net, err := anny.New(anny.Sizes(2, 3, 1))
	require.NoError(t, err)

	assert.Equal(t, 3, net.NumLayers())
	assert.Equal(t, 2, net.InputSize())
	assert.Equal(t, 1, net.OutputSize())

	// bias on every layer but the last
	assert.True(t, net.Layer(0).HasBias())
	assert.True(t, net.Layer(1).HasBias())
	assert.False(t, net.Layer(2).HasBias())
	assert.Equal(t, 3, net.Layer(0).Size())
	assert.Equal(t, 4, net.Layer(1).Size())

	// dense wiring between consecutive layers: 3*3 + 4*1
	assert.Len(t, net.Connections(), 13)
}

func TestNewValidation(t *testing.T) {
	_, err := anny.New(nil)
	assert.IsType(t, anny.NilArgError{}, err)

	_, err = anny.New(anny.Sizes())
	assert.Equal(t, anny.ErrNoLayers, err)

	_, err = anny.New(anny.Sizes(2, 0, 1))
	assert.Error(t, err)

	_, err = anny.New(anny.Layers())
	assert.Equal(t, anny.ErrNoLayers, err)

	_, err = anny.New(anny.Layers(anny.NewLayer(2), nil))
	assert.Error(t, err)

	// a Layer that failed fluent construction surfaces its error at New
	bad := anny.NewLayer(0)
	require.Error(t, bad.Err())
	_, err = anny.New(anny.Layers(bad))
	assert.Error(t, err)

	// the same Layer twice
	l := anny.NewLayer(2).Act(activations.Logistic())
	_, err = anny.New(anny.Layers(l, l))
	assert.Error(t, err)

	// connected to a Layer that is not part of the Network
	a := anny.NewLayer(2).Act(activations.Logistic())
	b := anny.NewLayer(1).Act(activations.Logistic())
	outside := anny.NewLayer(1).Act(activations.Logistic())
	a.Connect(outside, initializers.FanIn())
	_, err = anny.New(anny.Layers(a, b))
	assert.Error(t, err)
}

func TestLayerReuseRejected(t *testing.T) {
	net := buildNet(t, 3, 1)

	// a Layer adopted by one Network can't be given to another
	_, err := anny.New(anny.Layers(net.Layer(0), anny.NewLayer(1).Act(activations.Logistic())))
	assert.Error(t, err)
}

func TestFluentLayerErrors(t *testing.T) {
	assert.Error(t, anny.NewLayer(0).Err())
	assert.Error(t, anny.NewLayer(2).AddBias().AddBias().Err())
	assert.Error(t, anny.NewLayer(2).Act(nil).Err())
	assert.Error(t, anny.NewLayer(2).Connect(nil, initializers.FanIn()).Err())
	assert.Error(t, anny.NewLayer(2).Connect(anny.NewLayer(1), nil).Err())
	assert.NoError(t, anny.NewLayer(2).Name("ok").AddBias().Act(activations.Tanh()).Err())
}

func TestActivateShapeMismatch(t *testing.T) {
	net := buildNet(t, 3, 1)

	_, err := net.Activate([]float64{1, 0, 1})
	var sm anny.SizeMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, 2, sm.Expected)
	assert.Equal(t, 3, sm.Got)

	_, err = net.Activate(nil)
	assert.ErrorAs(t, err, &sm)
}

func TestStateMachineOrder(t *testing.T) {
	net := buildNet(t, 3, 1)
	targets := []float64{1}

	// nothing works before a forward pass
	_, err := net.Cost(targets)
	assert.Equal(t, anny.ErrNotActivated, err)
	assert.Equal(t, anny.ErrNotActivated, net.Backprop(targets))
	assert.Equal(t, anny.ErrNoDeltas, net.AccumulateGradients())
	assert.Equal(t, anny.ErrNoGradients, net.UpdateWeights(0.5))

	_, err = net.Activate([]float64{1, 0})
	require.NoError(t, err)

	// gradients can't be applied before they exist
	assert.Equal(t, anny.ErrNoDeltas, net.AccumulateGradients())
	require.NoError(t, net.Backprop(targets))
	assert.Equal(t, anny.ErrNoGradients, net.UpdateWeights(0.5))
	require.NoError(t, net.AccumulateGradients())
	require.NoError(t, net.UpdateWeights(0.5))

	// UpdateWeights completes the step; a second application has nothing to apply
	assert.Equal(t, anny.ErrNoGradients, net.UpdateWeights(0.5))
}

func TestBackpropShapeMismatch(t *testing.T) {
	net := buildNet(t, 3, 1)

	_, err := net.Activate([]float64{1, 0})
	require.NoError(t, err)

	var sm anny.SizeMismatchError
	assert.ErrorAs(t, net.Backprop([]float64{1, 0}), &sm)

	_, err = net.Cost([]float64{})
	assert.ErrorAs(t, err, &sm)
}

func TestActivateIdempotent(t *testing.T) {
	net := buildNet(t, 4, 3)

	first, err := net.Activate([]float64{0, 1})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := net.Activate([]float64{0, 1})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSeededConstructionIsDeterministic(t *testing.T) {
	a := buildNet(t, 4, 9)
	b := buildNet(t, 4, 9)

	require.Len(t, b.Connections(), len(a.Connections()))
	for i, c := range a.Connections() {
		assert.Equal(t, c.Weight(), b.Connections()[i].Weight())
	}

	outA, err := a.Activate([]float64{0.3, 0.7})
	require.NoError(t, err)
	outB, err := b.Activate([]float64{0.3, 0.7})
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestDistinctInitialWeights(t *testing.T) {
	net := buildNet(t, 8, 11)
	conns := net.Connections()
	require.NotEmpty(t, conns)

	allEqual := true
	for _, c := range conns[1:] {
		if c.Weight() != conns[0].Weight() {
			allEqual = false
			break
		}
	}

	assert.False(t, allEqual, "initializer produced identical weights on every connection")
}

func TestUnconnectedInteriorLayer(t *testing.T) {
	in := anny.NewLayer(1).Act(activations.Logistic())
	mid := anny.NewLayer(1).Act(activations.Logistic())
	out := anny.NewLayer(1).Act(activations.Logistic())

	// in -> mid is wired; mid -> out never is. Construction must still succeed.
	in.Connect(mid, initializers.Constant(0.5))
	net, err := anny.New(anny.Layers(in, mid, out))
	require.NoError(t, err)

	// an unconnected neuron sums zero incoming values, so its output is f(0)
	outs, err := net.Activate([]float64{0.9})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, outs[0], 1e-12)
}

func TestBiasOccupiesLastOutputSlot(t *testing.T) {
	in := anny.NewLayer(2).Act(activations.Logistic())
	out := anny.NewLayer(1).Act(activations.Logistic()).AddBias()
	in.Connect(out, initializers.FanIn().Seed(2))

	net, err := anny.New(anny.Layers(in, out))
	require.NoError(t, err)

	// the bias is part of the output layer, so it is part of the output vector
	require.Equal(t, 2, net.OutputSize())

	outs, err := net.Activate([]float64{1, 1})
	require.NoError(t, err)
	require.Len(t, outs, 2)
	assert.Equal(t, 1.0, outs[1])

	// targets must cover the full output, bias slot included
	var sm anny.SizeMismatchError
	_, err = net.Cost([]float64{1})
	assert.ErrorAs(t, err, &sm)

	// the bias slot is inert: whatever its target, no delta flows from it
	require.NoError(t, net.Backprop([]float64{1, 0}))
	assert.Equal(t, 0.0, net.Layer(1).Neuron(1).Delta())
}

func TestSoftmaxLayerThroughNetwork(t *testing.T) {
	in := anny.NewLayer(2).Name("input").AddBias()
	hid := anny.NewLayer(3).Name("hidden").Act(activations.Softmax()).AddBias()
	out := anny.NewLayer(2).Name("output").Act(activations.Softmax())

	in.Connect(hid, initializers.FanIn().Seed(31))
	hid.Connect(out, initializers.FanIn().Seed(32))

	net, err := anny.New(anny.Layers(in, hid, out))
	require.NoError(t, err)

	outs, err := net.Activate([]float64{0.4, -1.2})
	require.NoError(t, err)

	require.Len(t, outs, 2)
	assert.InDelta(t, 1, outs[0]+outs[1], 1e-9)
	for _, v := range outs {
		assert.Greater(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}

	// normalization covers the hidden layer's real neurons; the bias stays pinned at 1 outside it
	hidValues := net.Layer(1).Values()
	require.Len(t, hidValues, 4)
	assert.Equal(t, 1.0, hidValues[3])
	assert.InDelta(t, 1, hidValues[0]+hidValues[1]+hidValues[2], 1e-9)

	// the full training step runs through the normalized layers
	require.NoError(t, net.Backprop([]float64{1, 0}))
	require.NoError(t, net.AccumulateGradients())
	require.NoError(t, net.UpdateWeights(0.5))
}

func TestSoftmaxOnInputLayer(t *testing.T) {
	// every input neuron takes its value verbatim, so there is nothing for the normalization to
	// cover; this must pass the inputs through rather than blowing up
	in := anny.NewLayer(2).Act(activations.Softmax())
	out := anny.NewLayer(1).Act(activations.Logistic())
	in.Connect(out, initializers.Constant(0.5))

	net, err := anny.New(anny.Layers(in, out))
	require.NoError(t, err)

	_, err = net.Activate([]float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, net.Layer(0).Values())
}

func TestPassthroughInputDelta(t *testing.T) {
	in := anny.NewLayer(1).Act(activations.Logistic())
	out := anny.NewLayer(1).Act(activations.Logistic())
	in.Connect(out, initializers.Constant(2))

	net, err := anny.New(anny.Layers(in, out))
	require.NoError(t, err)

	_, err = net.Activate([]float64{0.3})
	require.NoError(t, err)
	require.NoError(t, net.Backprop([]float64{0}))

	// the input neuron's value was set verbatim, so its local derivative is 1: its delta is
	// exactly weight * output delta, with no logistic scaling on top
	v := activations.Logistic().Evaluate(0.6)
	outDelta := v * v * (1 - v)
	assert.InDelta(t, outDelta, net.Layer(1).Neuron(0).Delta(), 1e-12)
	assert.InDelta(t, 2*outDelta, net.Layer(0).Neuron(0).Delta(), 1e-12)
}

func TestMiniBatchMatchesSummedGradients(t *testing.T) {
	batch := []anny.Datum{
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{0}},
		{Inputs: []float64{1, 1}, Targets: []float64{1}},
	}

	// identical nets: one accumulates the whole batch, the other goes example by example with a
	// zero-rate update (resets the accumulator, leaves weights alone) between examples
	batched := buildNet(t, 3, 21)
	single := buildNet(t, 3, 21)

	for _, d := range batch {
		_, err := batched.Activate(d.Inputs)
		require.NoError(t, err)
		require.NoError(t, batched.Backprop(d.Targets))
		require.NoError(t, batched.AccumulateGradients())
	}

	summed := make([]float64, len(single.Connections()))
	for _, d := range batch {
		_, err := single.Activate(d.Inputs)
		require.NoError(t, err)
		require.NoError(t, single.Backprop(d.Targets))
		require.NoError(t, single.AccumulateGradients())

		for i, c := range single.Connections() {
			summed[i] += c.Gradient()
		}

		require.NoError(t, single.UpdateWeights(0))
	}

	for i, c := range batched.Connections() {
		assert.InDelta(t, summed[i], c.Gradient(), 1e-12, "connection %v", c)
	}
}

func TestXORConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	data := []anny.Datum{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}

	net := buildNet(t, 4, 7)

	err := net.Train(anny.TrainArgs{
		Data:         data,
		BatchSize:    1,
		RunCondition: anny.TrainUntilBelow(0.0005, 400000),
		LearningRate: anny.ConstantRate(0.9),
	})
	require.NoError(t, err)

	for _, d := range data {
		_, err := net.Activate(d.Inputs)
		require.NoError(t, err)

		cost, err := net.Cost(d.Targets)
		require.NoError(t, err)
		assert.Lessf(t, cost, 0.05, "inputs %v", d.Inputs)
	}
}

func TestTrainValidation(t *testing.T) {
	net := buildNet(t, 3, 1)

	assert.Error(t, net.Train(anny.TrainArgs{}))

	assert.Error(t, net.Train(anny.TrainArgs{
		Data:         []anny.Datum{{Inputs: []float64{0, 0}, Targets: []float64{0}}},
		LearningRate: anny.ConstantRate(0.5),
	}))

	// a datum that doesn't fit the network is caught before any training happens
	assert.Error(t, net.Train(anny.TrainArgs{
		Data:         []anny.Datum{{Inputs: []float64{0}, Targets: []float64{0}}},
		RunCondition: anny.TrainUntil(10),
		LearningRate: anny.ConstantRate(0.5),
	}))
}

func TestTestDoesNotTouchWeights(t *testing.T) {
	net := buildNet(t, 3, 5)
	data := []anny.Datum{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{1, 1}, Targets: []float64{1}},
	}

	before := make([]float64, len(net.Connections()))
	for i, c := range net.Connections() {
		before[i] = c.Weight()
	}

	_, _, err := net.Test(data, nil)
	require.NoError(t, err)

	for i, c := range net.Connections() {
		assert.Equal(t, before[i], c.Weight())
	}
}

func TestChangeCostNilPanics(t *testing.T) {
	net := buildNet(t, 3, 1)
	assert.Panics(t, func() { net.ChangeCost(nil) })
}

func TestPanicErrors(t *testing.T) {
	net := buildNet(t, 3, 1).PanicErrors()
	assert.Panics(t, func() { net.Activate([]float64{1, 2, 3}) })
}

func TestCorrectRound(t *testing.T) {
	assert.True(t, anny.CorrectRound([]float64{0.9, 0.1}, []float64{1, 0}))
	assert.False(t, anny.CorrectRound([]float64{0.4, 0.1}, []float64{1, 0}))
}

func TestCorrectHighest(t *testing.T) {
	assert.True(t, anny.CorrectHighest([]float64{0.1, 0.7, 0.2}, []float64{0, 1, 0}))
	assert.False(t, anny.CorrectHighest([]float64{0.7, 0.1, 0.2}, []float64{0, 1, 0}))
}
