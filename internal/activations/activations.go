// Package activations provides elementwise activation functions with derivatives.
package activations

import "math"

// Activation is an activation function with derivative.
// Both operations are applied elementwise over a layer's pre-activation vector.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Identity activation function, f(x) = x.
type Identity struct{}

// Activate returns x unchanged.
func (Identity) Activate(x float64) float64 {
	return x
}

// Derivative returns 1 everywhere.
func (Identity) Derivative(x float64) float64 {
	return 1
}

// LeakyReLU activation function with a configurable negative-side slope.
type LeakyReLU struct {
	Alpha float64 // Slope for x <= 0
}

// NewLeakyReLU creates a LeakyReLU with the given alpha value.
func NewLeakyReLU(alpha float64) *LeakyReLU {
	return &LeakyReLU{Alpha: alpha}
}

// ReLU creates the classic rectifier, a LeakyReLU with zero leak.
func ReLU() *LeakyReLU {
	return NewLeakyReLU(0)
}

// Activate computes max(x, alpha*x).
func (l *LeakyReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return l.Alpha * x
}

// Derivative returns 1 if x > 0, else alpha.
func (l *LeakyReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return l.Alpha
}

// ELU (Exponential Linear Unit) activation function.
type ELU struct {
	Alpha float64 // Scale of the saturating negative side
}

// NewELU creates an ELU with the given alpha value.
func NewELU(alpha float64) *ELU {
	return &ELU{Alpha: alpha}
}

// Activate computes x if x > 0, else alpha*(e^x - 1).
func (e *ELU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return e.Alpha * (math.Exp(x) - 1)
}

// Derivative returns 1 if x >= 0, else alpha*e^x.
// The boundary x == 0 resolves to the positive branch.
func (e *ELU) Derivative(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return e.Alpha * math.Exp(x)
}

// Sigmoid activation function.
type Sigmoid struct{}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes 1 / (1 + e^-x).
func (Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x)).
func (Sigmoid) Derivative(x float64) float64 {
	sigma := sigmoid(x)
	return sigma * (1 - sigma)
}

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x).
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - tanh(x)^2.
func (Tanh) Derivative(x float64) float64 {
	tanhX := math.Tanh(x)
	return 1 - tanhX*tanhX
}

// ArcTan activation function.
type ArcTan struct{}

// Activate computes atan(x).
func (ArcTan) Activate(x float64) float64 {
	return math.Atan(x)
}

// Derivative computes 1 / (1 + x^2).
func (ArcTan) Derivative(x float64) float64 {
	return 1 / (1 + x*x)
}
