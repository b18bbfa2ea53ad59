// Package loss provides loss functions with gradients.
package loss

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Loss scores a network output against a training target of type T and
// provides the gradient of that score with respect to the output.
type Loss[T any] interface {
	// Forward computes the loss of the predicted values with respect to the target.
	Forward(pred *mat.VecDense, target T) float64

	// Backward computes the gradient of the loss w.r.t. the prediction,
	// same shape as the prediction.
	Backward(pred *mat.VecDense, target T) *mat.VecDense
}

// NewMSE returns the mean-squared-error loss, typed for target vectors.
func NewMSE() Loss[*mat.VecDense] {
	return MSE{}
}

// NewCrossEntropy returns the cross-entropy loss, typed for class indices.
func NewCrossEntropy() Loss[int] {
	return CrossEntropy{}
}

// MSE (Mean Squared Error) loss against a target vector.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((pred - target)^2).
func (MSE) Forward(pred *mat.VecDense, target *mat.VecDense) float64 {
	var diff mat.VecDense
	diff.SubVec(pred, target)
	return mat.Dot(&diff, &diff) / float64(diff.Len())
}

// Backward computes the gradient: (2/n) * (pred - target).
func (MSE) Backward(pred *mat.VecDense, target *mat.VecDense) *mat.VecDense {
	grad := mat.NewVecDense(pred.Len(), nil)
	grad.SubVec(pred, target)
	grad.ScaleVec(2/float64(grad.Len()), grad)
	return grad
}

// CrossEntropy loss for classification. The prediction is a vector of
// unnormalized logits and the target is a class index into it; the loss
// applies softmax implicitly. A target outside [0, pred.Len()) is a
// precondition violation and panics.
type CrossEntropy struct{}

// Forward computes -pred[target] + log(sum(exp(pred))).
func (CrossEntropy) Forward(pred *mat.VecDense, target int) float64 {
	exp := make([]float64, pred.Len())
	for i := range exp {
		exp[i] = math.Exp(pred.AtVec(i))
	}
	return -pred.AtVec(target) + math.Log(floats.Sum(exp))
}

// Backward computes softmax(pred), minus 1 at the target entry.
func (CrossEntropy) Backward(pred *mat.VecDense, target int) *mat.VecDense {
	exp := make([]float64, pred.Len())
	for i := range exp {
		exp[i] = math.Exp(pred.AtVec(i))
	}
	sum := floats.Sum(exp)
	grad := mat.NewVecDense(len(exp), exp)
	grad.ScaleVec(1/sum, grad)
	grad.SetVec(target, grad.AtVec(target)-1)
	return grad
}
