// Package optim implements optimization algorithms for training.
//
// The package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: gradient descent with a fixed learning rate and optional
//     momentum
//
// Design inspired by PyTorch's torch.optim, adapted for Go with type
// safety.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for i := 0; i < iterations; i++ {
//	    tape.Clear()
//	    loss := criterion.Forward(model.Forward(x), y)
//	    grads := autodiff.Backward(loss, backend)
//	    optimizer.Step(grads)
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/descent-ml/descent/internal/nn"
	"github.com/descent-ml/descent/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters, given the
	// gradient map produced by a backward pass. Parameters absent from
	// the map are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears all parameter gradients. Call before each
	// backward pass to prevent accumulation across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64
}

// gradientFor retrieves the gradient for a parameter, or nil when the
// parameter did not participate in the recorded computation.
func gradientFor[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
