package nn

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// MSELoss computes mean squared error:
//
//	Loss = mean((predictions - targets)²)
//
// The subtraction, square, and mean all go through the backend, so on
// an autodiff backend the whole loss is on the tape and gradients flow
// from the scalar loss back to the model parameters.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward computes the scalar MSE loss (shape [1]).
//
// predictions and targets must have the same shape.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("MSELoss: predictions and targets must have the same shape")
	}

	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}

// Parameters returns nil: loss functions have no trainable parameters.
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}
