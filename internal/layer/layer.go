// Package layer provides the fully connected layer of the network.
package layer

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/scratchnet/scratchnet/internal/activations"
)

// Dense models the connections between two sets of neurons: one affine
// transform followed by an elementwise activation. A Dense layer exclusively
// owns its weight matrix and bias vector; both are set once at construction
// and thereafter mutated only by Backprop.
type Dense struct {
	ins  int
	outs int
	act  activations.Activation

	w *mat.Dense    // outs x ins
	b *mat.VecDense // outs x 1
}

// NewDense creates a dense layer with Gaussian-random parameters. Weights
// are drawn with standard deviation 1/(outs*ins) and biases with 1/outs,
// keeping initial pre-activations small while breaking symmetry.
func NewDense(ins, outs int, act activations.Activation) *Dense {
	return NewDenseRand(ins, outs, act, nil)
}

// NewDenseRand is NewDense with an explicit randomness source. A fixed-seed
// source makes the initialization, and therefore a whole training run,
// reproducible. A nil src uses the shared global source.
func NewDenseRand(ins, outs int, act activations.Activation, src rand.Source) *Dense {
	w := mat.NewDense(outs, ins, nil)
	b := mat.NewVecDense(outs, nil)

	normal := distuv.Normal{Mu: 0, Sigma: 1 / float64(outs*ins), Src: src}
	for i := 0; i < outs; i++ {
		for j := 0; j < ins; j++ {
			w.Set(i, j, normal.Rand())
		}
	}
	normal.Sigma = 1 / float64(outs)
	for i := 0; i < outs; i++ {
		b.SetVec(i, normal.Rand())
	}

	return &Dense{
		ins:  ins,
		outs: outs,
		act:  act,
		w:    w,
		b:    b,
	}
}

// Forward computes the next set of neuron states for input x:
// act(W*x + b). It does not mutate the layer. An x with a length other
// than Ins() panics with a shape error from the matrix multiply.
func (d *Dense) Forward(x mat.Vector) *mat.VecDense {
	y := d.preActivation(x)
	for i := 0; i < y.Len(); i++ {
		y.SetVec(i, d.act.Activate(y.AtVec(i)))
	}
	return y
}

// Backprop consumes grad, the gradient of the loss with respect to this
// layer's output, for the input x seen during the forward pass. It applies
// one gradient-descent step of size lr to the layer's parameters in place
// and returns the gradient of the loss with respect to x.
func (d *Dense) Backprop(x mat.Vector, grad *mat.VecDense, lr float64) *mat.VecDense {
	// db = act'(W*x + b) ⊙ grad, the gradient w.r.t. the bias.
	db := d.preActivation(x)
	for i := 0; i < db.Len(); i++ {
		db.SetVec(i, d.act.Derivative(db.AtVec(i))*grad.AtVec(i))
	}

	// Gradient for the preceding layer, using the pre-update weights.
	dx := mat.NewVecDense(d.ins, nil)
	dx.MulVec(d.w.T(), db)

	// W -= lr * db * xᵀ, b -= lr * db.
	var dw mat.Dense
	dw.Outer(lr, db, x)
	d.w.Sub(d.w, &dw)
	var sb mat.VecDense
	sb.ScaleVec(lr, db)
	d.b.SubVec(d.b, &sb)

	return dx
}

// preActivation computes W*x + b into a fresh vector.
func (d *Dense) preActivation(x mat.Vector) *mat.VecDense {
	y := mat.NewVecDense(d.outs, nil)
	y.MulVec(d.w, x)
	y.AddVec(y, d.b)
	return y
}

// Ins returns the input width of the layer.
func (d *Dense) Ins() int {
	return d.ins
}

// Outs returns the output width of the layer.
func (d *Dense) Outs() int {
	return d.outs
}

// Activation returns the activation function used by this layer.
func (d *Dense) Activation() activations.Activation {
	return d.act
}

// Weights returns the layer's weight matrix directly.
func (d *Dense) Weights() *mat.Dense {
	return d.w
}

// Bias returns the layer's bias vector directly.
func (d *Dense) Bias() *mat.VecDense {
	return d.b
}
