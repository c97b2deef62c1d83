package anny

import (
	"math"

	"github.com/pkg/errors"
)

// A Datum is a single training (or testing) example: an input vector sized for the Network's
// input Layer and a target vector sized for its full output.
type Datum struct {
	Inputs  []float64
	Targets []float64
}

func (d Datum) fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Targets) == net.OutputSize()
}

// Correct runs one complete training step on a single example: forward pass, cost, backward
// pass, gradient accumulation, and an immediate weight update. It returns the cost and output
// vector from before the update.
//
// For mini-batches, drive Activate/Backprop/AccumulateGradients yourself (or use Train) and call
// UpdateWeights once per batch.
func (net *Network) Correct(inputs, targets []float64, learningRate float64) (cost float64, outs []float64, err error) {
	if outs, err = net.Activate(inputs); err != nil {
		err = errors.Wrapf(err, "couldn't correct network, forward pass failed: ")
		return
	}

	if cost, err = net.Cost(targets); err != nil {
		err = errors.Wrapf(err, "couldn't correct network, cost failed: ")
		return
	}

	if err = net.Backprop(targets); err != nil {
		err = errors.Wrapf(err, "couldn't correct network, backprop failed: ")
		return
	}

	if err = net.AccumulateGradients(); err != nil {
		err = errors.Wrapf(err, "couldn't correct network, accumulating gradients failed: ")
		return
	}

	if err = net.UpdateWeights(learningRate); err != nil {
		err = errors.Wrapf(err, "couldn't correct network, weight update failed: ")
		return
	}

	return
}

// TrainArgs is a proxy for the optional arguments available in other languages. Data,
// RunCondition, and LearningRate must be set; everything else may be left zero.
type TrainArgs struct {
	// the dataset, cycled in order. One iteration is one example.
	Data []Datum

	// number of examples whose gradients are accumulated before each weight update. Values <= 1
	// mean an update after every example.
	BatchSize int

	// whether to keep going, given the iteration about to run and the cost of the previous one
	// (NaN before the first). See TrainUntil and TrainUntilBelow.
	RunCondition func(iteration int, lastCost float64) bool

	// the learning rate for the upcoming update. See ConstantRate.
	LearningRate func(iteration int, lastCost float64) float64

	// optional: whether to report status at this iteration. See Every.
	SendStatus func(iteration int) bool

	// optional: receives the average cost and percent correct over the iterations since the last
	// status. Only called where SendStatus returns true.
	OnStatus func(iteration int, avgCost, percentCorrect float64)

	// optional: what counts as a correct output. Defaults to CorrectRound.
	IsCorrect func(outs, targets []float64) bool
}

// Train runs training steps over args.Data, in order and cycling, until args.RunCondition says
// to stop. Gradients accumulate across each mini-batch and are applied in one update per batch;
// a partial batch left at the stopping point is applied before returning.
func (net *Network) Train(args TrainArgs) error {
	if len(args.Data) == 0 {
		return net.setError(errors.Errorf("can't train, no data given"))
	} else if args.RunCondition == nil {
		return net.setError(NilArgError{"RunCondition"})
	} else if args.LearningRate == nil {
		return net.setError(NilArgError{"LearningRate"})
	}

	for i, d := range args.Data {
		if !d.fits(net) {
			return net.setError(errors.Errorf("can't train, datum %d does not fit network (lengths: inputs %d vs %d, targets %d vs %d)",
				i, len(d.Inputs), net.InputSize(), len(d.Targets), net.OutputSize()))
		}
	}

	batchSize := args.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	isCorrect := args.IsCorrect
	if isCorrect == nil {
		isCorrect = CorrectRound
	}

	var iteration, inBatch, sinceStatus int
	var statusCost, statusCorrect float64
	lastCost := math.NaN()

	for args.RunCondition(iteration, lastCost) {
		d := args.Data[iteration%len(args.Data)]

		outs, err := net.Activate(d.Inputs)
		if err != nil {
			return errors.Wrapf(err, "training failed on iteration %d: ", iteration)
		}

		if lastCost, err = net.Cost(d.Targets); err != nil {
			return errors.Wrapf(err, "training failed on iteration %d: ", iteration)
		}

		if err = net.Backprop(d.Targets); err != nil {
			return errors.Wrapf(err, "training failed on iteration %d: ", iteration)
		}

		if err = net.AccumulateGradients(); err != nil {
			return errors.Wrapf(err, "training failed on iteration %d: ", iteration)
		}

		inBatch++
		if inBatch >= batchSize {
			if err = net.UpdateWeights(args.LearningRate(iteration, lastCost)); err != nil {
				return errors.Wrapf(err, "training failed on iteration %d: ", iteration)
			}
			inBatch = 0
		}

		statusCost += lastCost
		if isCorrect(outs, d.Targets) {
			statusCorrect += 100
		}
		sinceStatus++

		if args.SendStatus != nil && args.OnStatus != nil && args.SendStatus(iteration) {
			args.OnStatus(iteration, statusCost/float64(sinceStatus), statusCorrect/float64(sinceStatus))
			statusCost, statusCorrect = 0, 0
			sinceStatus = 0
		}

		iteration++
	}

	// apply whatever is left of the final batch
	if inBatch > 0 {
		if err := net.UpdateWeights(args.LearningRate(iteration, lastCost)); err != nil {
			return errors.Wrapf(err, "training failed applying final partial batch: ")
		}
	}

	return nil
}

// Test runs the Network over every Datum without touching any weights, returning the average
// cost and the percentage judged correct by isCorrect (CorrectRound if nil).
func (net *Network) Test(data []Datum, isCorrect func(outs, targets []float64) bool) (avgCost, percentCorrect float64, err error) {
	if len(data) == 0 {
		return 0, 0, net.setError(errors.Errorf("can't test, no data given"))
	}

	if isCorrect == nil {
		isCorrect = CorrectRound
	}

	for i, d := range data {
		outs, aErr := net.Activate(d.Inputs)
		if aErr != nil {
			return 0, 0, errors.Wrapf(aErr, "testing failed on datum %d: ", i)
		}

		c, cErr := net.Cost(d.Targets)
		if cErr != nil {
			return 0, 0, errors.Wrapf(cErr, "testing failed on datum %d: ", i)
		}

		avgCost += c
		if isCorrect(outs, d.Targets) {
			percentCorrect += 100
		}
	}

	avgCost /= float64(len(data))
	percentCorrect /= float64(len(data))

	return avgCost, percentCorrect, nil
}
