// Package nn implements the neural-network modules of the Descent
// framework.
//
// The package provides the building blocks for training linear models:
//   - Module interface: base interface for all components
//   - Parameter: trainable tensor with gradient bookkeeping
//   - Linear: fully connected layer (optional bias)
//   - MSELoss: mean squared error, differentiable end to end
//
// Design inspired by PyTorch's nn.Module, adapted for Go generics.
// Modules work in float64 so recovered coefficients are comparable to
// closed-form least squares at tight tolerances.
package nn

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float64, B]) *tensor.Tensor[float64, B]

	// Parameters returns all trainable parameters of this module.
	// Modules without trainable parameters return an empty slice.
	Parameters() []*Parameter[B]
}
