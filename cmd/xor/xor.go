package main

import (
	"fmt"

	"github.com/dryzhkov/anny"
	"github.com/dryzhkov/anny/activations"
	_ "github.com/dryzhkov/anny/costfuncs"
	"github.com/dryzhkov/anny/initializers"
)

const (
	statusFrequency int = 500

	// main hyperparameters
	learningRate  float64 = 1.
	batchSize     int     = 4
	maxIterations int     = 20000
	hiddenSize    int     = 4

	seed int64 = 7
)

var dataset = []anny.Datum{
	{Inputs: []float64{0, 0}, Targets: []float64{0}},
	{Inputs: []float64{0, 1}, Targets: []float64{1}},
	{Inputs: []float64{1, 0}, Targets: []float64{1}},
	{Inputs: []float64{1, 1}, Targets: []float64{0}},
}

func build() *anny.Network {
	in := anny.NewLayer(2).Name("input").AddBias()
	hid := anny.NewLayer(hiddenSize).Name("hidden").Act(activations.Logistic()).AddBias()
	out := anny.NewLayer(1).Name("output").Act(activations.Logistic())

	in.Connect(hid, initializers.FanIn().Seed(seed))
	hid.Connect(out, initializers.FanIn().Seed(seed+1))

	net, err := anny.New(anny.Layers(in, hid, out))
	if err != nil {
		panic(err.Error())
	}

	return net
}

func train(net *anny.Network) {
	fmt.Println("Starting training...")
	fmt.Println("Iteration, Status Cost, Status Percent")

	args := anny.TrainArgs{
		Data:         dataset,
		BatchSize:    batchSize,
		RunCondition: anny.TrainUntilBelow(0.001, maxIterations),
		LearningRate: anny.ConstantRate(learningRate),
		SendStatus:   anny.Every(statusFrequency),
		OnStatus: func(iteration int, avgCost, percentCorrect float64) {
			fmt.Printf("%d, %v, %v\n", iteration, avgCost, percentCorrect)
		},
	}

	if err := net.Train(args); err != nil {
		panic(err.Error())
	}

	fmt.Println("Done training!")
}

func test(net *anny.Network) {
	fmt.Println("Testing...")

	avgCost, percent, err := net.Test(dataset, anny.CorrectRound)
	if err != nil {
		panic(err.Error())
	}

	for _, d := range dataset {
		outs, err := net.Activate(d.Inputs)
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("%v -> %v (want %v)\n", d.Inputs, outs[0], d.Targets[0])
	}

	fmt.Printf("Average cost: %v, percent correct: %v\n", avgCost, percent)
}

func main() {
	net := build()
	train(net)
	test(net)
}
