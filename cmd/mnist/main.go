// Command mnist trains a small classifier on the MNIST digit CSVs
// (label in the first column, 784 pixel columns after it).
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/scratchnet/scratchnet/internal/activations"
	"github.com/scratchnet/scratchnet/internal/dataset"
	"github.com/scratchnet/scratchnet/internal/layer"
	"github.com/scratchnet/scratchnet/internal/loss"
	"github.com/scratchnet/scratchnet/internal/net"
)

func main() {
	trainPath := flag.String("train", "mnistdata/mnist_train.csv", "training data CSV")
	testPath := flag.String("test", "mnistdata/mnist_test.csv", "test data CSV")
	lr := flag.Float64("lr", 0.001, "learning rate")
	epochs := flag.Int("epochs", 1, "passes over the training data")
	seed := flag.Uint64("seed", 42, "parameter initialization seed")
	flag.Parse()

	src := rand.NewSource(*seed)
	layers := []*layer.Dense{
		layer.NewDenseRand(784, 16, activations.NewLeakyReLU(0.1), src),
		layer.NewDenseRand(16, 16, activations.NewLeakyReLU(0.1), src),
		layer.NewDenseRand(16, 10, activations.Sigmoid{}, src),
	}
	network, err := net.New(layers, loss.NewCrossEntropy(), *lr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	testData := load(*testPath)
	fmt.Printf("Accuracy is %.2f%%\n", 100*accuracy(network, testData)) // around 10% untrained

	trainData := load(*trainPath)
	for epoch := 0; epoch < *epochs; epoch++ {
		train(network, trainData)
	}

	fmt.Printf("Accuracy is %.2f%%\n", 100*accuracy(network, testData))
}

func load(path string) *dataset.Dataset {
	fmt.Printf("Loading %s...\n", path)
	d, err := dataset.Load(path, 0, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println("Done.")
	return d
}

// train runs one pass of single-example gradient descent over the data.
func train(network *net.Network[int], data *dataset.Dataset) {
	for i := 0; i < data.Len(); i++ {
		if i%1000 == 0 {
			fmt.Println(i)
		}
		network.Train(data.Inputs[i], int(data.Labels[i]))
	}
}

// accuracy is the fraction of examples whose highest-activation output
// index equals the labeled class.
func accuracy(network *net.Network[int], data *dataset.Dataset) float64 {
	correct := 0
	for i := 0; i < data.Len(); i++ {
		if i%1000 == 0 {
			fmt.Println(i)
		}
		out := network.Forward(data.Inputs[i])
		if floats.MaxIdx(out.RawVector().Data) == int(data.Labels[i]) {
			correct++
		}
	}
	return float64(correct) / float64(data.Len())
}
