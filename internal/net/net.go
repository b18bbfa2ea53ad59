// Package net provides the network type and its backpropagation training step.
package net

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/scratchnet/scratchnet/internal/layer"
	"github.com/scratchnet/scratchnet/internal/loss"
)

// Network is an ordered series of compatible dense layers together with a
// loss function and a learning rate. The type parameter T is the loss
// function's target type: a target vector for MSE, a class index for
// cross-entropy.
//
// A Network owns its layers exclusively. Train mutates layer parameters with
// unguarded read-then-write steps, so two Train calls on the same Network
// must never interleave.
type Network[T any] struct {
	layers []*layer.Dense
	loss   loss.Loss[T]
	lr     float64
}

// New creates a network from the given layers, loss function and learning
// rate. It fails if any adjacent pair of layers has incompatible widths.
func New[T any](layers []*layer.Dense, lossFn loss.Loss[T], learningRate float64) (*Network[T], error) {
	for i := 0; i+1 < len(layers); i++ {
		if layers[i].Outs() != layers[i+1].Ins() {
			return nil, fmt.Errorf("net: layer %d outputs %d values but layer %d expects %d",
				i, layers[i].Outs(), i+1, layers[i+1].Ins())
		}
	}

	return &Network[T]{
		layers: layers,
		loss:   lossFn,
		lr:     learningRate,
	}, nil
}

// Forward feeds x through every layer in order and returns the final
// layer's output. It does not mutate the network.
func (n *Network[T]) Forward(x *mat.VecDense) *mat.VecDense {
	out := x
	for _, l := range n.layers {
		out = l.Forward(out)
	}
	return out
}

// Loss computes the loss of the given output values with respect to the target.
func (n *Network[T]) Loss(values *mat.VecDense, target T) float64 {
	return n.loss.Forward(values, target)
}

// Train performs one stochastic-gradient-descent step on the single example
// (x, target), updating every layer's parameters in place.
func (n *Network[T]) Train(x *mat.VecDense, target T) {
	// Forward sweep, recording the input fed to each layer. Keeping these
	// around trades memory for not recomputing activations backwards.
	xs := make([]*mat.VecDense, 0, len(n.layers)+1)
	xs = append(xs, x)
	for _, l := range n.layers {
		xs = append(xs, l.Forward(xs[len(xs)-1]))
	}

	// Seed the backward sweep with the loss gradient at the network output,
	// then thread it through the layers in reverse. Each layer consumes the
	// incoming gradient, steps its own parameters, and hands back the
	// gradient for its predecessor.
	dx := n.loss.Backward(xs[len(xs)-1], target)
	for i := len(n.layers) - 1; i >= 0; i-- {
		dx = n.layers[i].Backprop(xs[i], dx, n.lr)
	}
}

// Layers returns the network's layers slice.
func (n *Network[T]) Layers() []*layer.Dense {
	return n.layers
}

// LearningRate returns the step size used by Train.
func (n *Network[T]) LearningRate() float64 {
	return n.lr
}
