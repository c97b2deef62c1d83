package anny

import (
	"math"
	"sort"
)

// CorrectRound reports whether every output, rounded at 0.5, lands on its target. Intended for
// targets that are exactly 0 or 1. Assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		var rounded float64
		if outs[i] > 0.5 {
			rounded = 1
		}

		if rounded != targets[i] {
			return false
		}
	}

	return true
}

// for use in CorrectHighest()
type sortable struct {
	values  []float64
	indexes []int
}

func (s sortable) Len() int {
	return len(s.values)
}
func (s sortable) Less(i, j int) bool {
	return s.values[i] > s.values[j]
}
func (s sortable) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.indexes[i], s.indexes[j] = s.indexes[j], s.indexes[i]
}

// CorrectHighest reports whether the largest output and the largest target sit at the same index.
// The usual accuracy measure for one-hot classification targets.
func CorrectHighest(outs, targets []float64) bool {
	indexes := make([]int, len(outs))
	for i := range indexes {
		indexes[i] = i
	}

	copyOfIndexes := make([]int, len(outs))
	copy(copyOfIndexes, indexes)

	o := sortable{outs, indexes}
	t := sortable{targets, copyOfIndexes}

	sort.Sort(o)
	sort.Sort(t)

	return o.indexes[0] == t.indexes[0]
}

// TrainUntil returns a function satisfying TrainArgs.RunCondition that runs for a fixed number
// of iterations.
func TrainUntil(maxIterations int) func(int, float64) bool {
	return func(iteration int, lastCost float64) bool {
		return iteration < maxIterations
	}
}

// TrainUntilBelow returns a function satisfying TrainArgs.RunCondition that stops as soon as the
// last cost drops below the threshold, with maxIterations as a hard ceiling. The cost is NaN on
// the very first iteration, which never stops training.
func TrainUntilBelow(threshold float64, maxIterations int) func(int, float64) bool {
	return func(iteration int, lastCost float64) bool {
		if !math.IsNaN(lastCost) && lastCost < threshold {
			return false
		}

		return iteration < maxIterations
	}
}

// ConstantRate returns a function that satisfies TrainArgs.LearningRate.
func ConstantRate(learningRate float64) func(int, float64) float64 {
	return func(iteration int, lastCost float64) float64 {
		return learningRate
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus. 'frequency' is in units of
// iterations.
func Every(frequency int) func(int) bool {
	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
