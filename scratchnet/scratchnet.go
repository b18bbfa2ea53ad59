// Package scratchnet re-exports the engine's types and constructors so that
// callers only import one package.
package scratchnet

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/scratchnet/scratchnet/internal/activations"
	"github.com/scratchnet/scratchnet/internal/dataset"
	"github.com/scratchnet/scratchnet/internal/layer"
	"github.com/scratchnet/scratchnet/internal/loss"
	"github.com/scratchnet/scratchnet/internal/net"
)

// Re-export common types for easier access
type (
	Activation = activations.Activation
	Layer      = layer.Dense
	Dataset    = dataset.Dataset
)

// Activations
var (
	Identity = activations.Identity{}
	Sigmoid  = activations.Sigmoid{}
	Tanh     = activations.Tanh{}
	ArcTan   = activations.ArcTan{}
)

func ReLU() Activation {
	return activations.ReLU()
}

func LeakyReLU(alpha float64) Activation {
	return activations.NewLeakyReLU(alpha)
}

func ELU(alpha float64) Activation {
	return activations.NewELU(alpha)
}

// Losses
func MSE() loss.Loss[*mat.VecDense] {
	return loss.NewMSE()
}

func CrossEntropy() loss.Loss[int] {
	return loss.NewCrossEntropy()
}

// Layers
func Dense(ins, outs int, act Activation) *Layer {
	return layer.NewDense(ins, outs, act)
}

func DenseRand(ins, outs int, act Activation, src rand.Source) *Layer {
	return layer.NewDenseRand(ins, outs, act, src)
}

// Network creation
func New[T any](layers []*Layer, lossFn loss.Loss[T], learningRate float64) (*net.Network[T], error) {
	return net.New(layers, lossFn, learningRate)
}

// Dataset loading
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	return dataset.Load(filename, labelCol, hasHeader)
}
