// Package layer provides unit tests for the dense layer.
package layer

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/scratchnet/scratchnet/internal/activations"
)

// TestNewDenseShapes tests that construction sizes the parameters correctly.
func TestNewDenseShapes(t *testing.T) {
	d := NewDense(3, 2, activations.Identity{})

	if d.Ins() != 3 || d.Outs() != 2 {
		t.Errorf("Dense dims = (%d, %d), want (3, 2)", d.Ins(), d.Outs())
	}

	r, c := d.Weights().Dims()
	if r != 2 || c != 3 {
		t.Errorf("Weights dims = (%d, %d), want (2, 3)", r, c)
	}
	if d.Bias().Len() != 2 {
		t.Errorf("Bias length = %d, want 2", d.Bias().Len())
	}
}

// TestNewDenseRandReproducible tests that a fixed seed fixes the parameters.
func TestNewDenseRandReproducible(t *testing.T) {
	d1 := NewDenseRand(4, 3, activations.Sigmoid{}, rand.NewSource(7))
	d2 := NewDenseRand(4, 3, activations.Sigmoid{}, rand.NewSource(7))

	if !mat.Equal(d1.Weights(), d2.Weights()) {
		t.Error("Same seed should produce identical weights")
	}
	if !mat.Equal(d1.Bias(), d2.Bias()) {
		t.Error("Same seed should produce identical biases")
	}

	d3 := NewDenseRand(4, 3, activations.Sigmoid{}, rand.NewSource(8))
	if mat.Equal(d1.Weights(), d3.Weights()) {
		t.Error("Different seeds should produce different weights")
	}
}

// TestNewDenseInit tests that initial parameters are small and not all equal.
func TestNewDenseInit(t *testing.T) {
	d := NewDenseRand(16, 16, activations.Identity{}, rand.NewSource(1))

	w := d.Weights()
	first := w.At(0, 0)
	allEqual := true
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			// Sigma is 1/256, so anything near 1 is a broken scale.
			if math.Abs(w.At(i, j)) > 0.5 {
				t.Errorf("Weight (%d, %d) = %v, should be near 0", i, j, w.At(i, j))
			}
			if w.At(i, j) != first {
				allEqual = false
			}
		}
	}
	if allEqual {
		t.Error("All weights equal, symmetry was not broken")
	}
}

// TestDenseForward tests the forward transform with known parameters.
func TestDenseForward(t *testing.T) {
	d := NewDense(2, 2, activations.Identity{})
	d.Weights().SetRow(0, []float64{1, 2})
	d.Weights().SetRow(1, []float64{3, 4})
	d.Bias().SetVec(0, 1)
	d.Bias().SetVec(1, -1)

	out := d.Forward(mat.NewVecDense(2, []float64{1, 1}))

	// W*x + b = [1+2+1, 3+4-1]
	if out.AtVec(0) != 4 || out.AtVec(1) != 6 {
		t.Errorf("Forward() = [%v, %v], want [4, 6]", out.AtVec(0), out.AtVec(1))
	}
}

// TestDenseForwardActivation tests that the activation is applied elementwise.
func TestDenseForwardActivation(t *testing.T) {
	d := NewDense(1, 2, activations.NewLeakyReLU(0.1))
	d.Weights().Set(0, 0, 1)
	d.Weights().Set(1, 0, -1)
	d.Bias().SetVec(0, 0)
	d.Bias().SetVec(1, 0)

	out := d.Forward(mat.NewVecDense(1, []float64{2}))

	if math.Abs(out.AtVec(0)-2) > 1e-12 || math.Abs(out.AtVec(1)-(-0.2)) > 1e-12 {
		t.Errorf("Forward() = [%v, %v], want [2, -0.2]", out.AtVec(0), out.AtVec(1))
	}
}

// TestDenseForwardPure tests that Forward does not mutate the parameters.
func TestDenseForwardPure(t *testing.T) {
	d := NewDenseRand(3, 2, activations.Tanh{}, rand.NewSource(3))

	var w mat.Dense
	w.CloneFrom(d.Weights())
	var b mat.VecDense
	b.CloneFromVec(d.Bias())

	d.Forward(mat.NewVecDense(3, []float64{1, -2, 0.5}))

	if !mat.Equal(&w, d.Weights()) || !mat.Equal(&b, d.Bias()) {
		t.Error("Forward should not mutate parameters")
	}
}

// TestDenseForwardShapeMismatch tests that a wrong-sized input panics.
func TestDenseForwardShapeMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for input shape mismatch")
		}
	}()

	d := NewDense(3, 2, activations.Identity{})
	d.Forward(mat.NewVecDense(2, []float64{1, 2}))
}

// TestDenseBackprop tests one update step with hand-computed gradients.
// Single 1x1 identity layer: W=[2], b=[0], x=[3], incoming grad=[1], lr=0.1.
func TestDenseBackprop(t *testing.T) {
	d := NewDense(1, 1, activations.Identity{})
	d.Weights().Set(0, 0, 2)
	d.Bias().SetVec(0, 0)

	x := mat.NewVecDense(1, []float64{3})
	grad := mat.NewVecDense(1, []float64{1})

	dx := d.Backprop(x, grad, 0.1)

	// db = 1, dx = Wᵀ·db = 2 (with the pre-update weight),
	// dW = db·xᵀ = 3, so W = 2 - 0.1*3, b = 0 - 0.1*1.
	if math.Abs(dx.AtVec(0)-2) > 1e-12 {
		t.Errorf("Backprop input gradient = %v, want 2", dx.AtVec(0))
	}
	if got := d.Weights().At(0, 0); math.Abs(got-1.7) > 1e-12 {
		t.Errorf("Updated weight = %v, want 1.7", got)
	}
	if got := d.Bias().AtVec(0); math.Abs(got-(-0.1)) > 1e-12 {
		t.Errorf("Updated bias = %v, want -0.1", got)
	}
}

// TestDenseBackpropChainsActivation tests that the activation derivative
// scales the gradient. Layer with LeakyReLU(0.5) driven negative.
func TestDenseBackpropChainsActivation(t *testing.T) {
	d := NewDense(1, 1, activations.NewLeakyReLU(0.5))
	d.Weights().Set(0, 0, -1)
	d.Bias().SetVec(0, 0)

	x := mat.NewVecDense(1, []float64{2})
	grad := mat.NewVecDense(1, []float64{1})

	dx := d.Backprop(x, grad, 0.1)

	// Pre-activation is -2, so act' = 0.5: db = 0.5, dx = -1*0.5 = -0.5,
	// dW = 0.5*2 = 1, W = -1 - 0.1, b = -0.05.
	if math.Abs(dx.AtVec(0)-(-0.5)) > 1e-12 {
		t.Errorf("Backprop input gradient = %v, want -0.5", dx.AtVec(0))
	}
	if got := d.Weights().At(0, 0); math.Abs(got-(-1.1)) > 1e-12 {
		t.Errorf("Updated weight = %v, want -1.1", got)
	}
	if got := d.Bias().AtVec(0); math.Abs(got-(-0.05)) > 1e-12 {
		t.Errorf("Updated bias = %v, want -0.05", got)
	}
}
