package nn

import (
	"github.com/descent-ml/descent/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are tensors updated by the optimizer during training,
// typically layer weights and biases.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float64, B]
	grad   *tensor.Tensor[float64, B]
}

// NewParameter creates a new trainable parameter from an initialized
// tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float64, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float64, B] {
	return p.tensor
}

// Grad returns the last applied gradient, or nil before the first
// optimizer step and after ZeroGrad.
func (p *Parameter[B]) Grad() *tensor.Tensor[float64, B] {
	return p.grad
}

// SetGrad sets the gradient tensor.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float64, B]) {
	p.grad = grad
}

// ZeroGrad clears the gradient tensor. Called before each training
// iteration so gradients do not accumulate across iterations.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
