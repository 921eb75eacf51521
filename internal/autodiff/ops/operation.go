// Package ops defines the differentiable operations recorded by the
// gradient tape.
//
// Each operation captures its inputs and output during the forward
// pass and computes input gradients from the output gradient during
// the backward pass:
//   - AddOp, SubOp, MulOp, DivOp: element-wise arithmetic
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//   - TransposeOp, ReshapeOp: shape bookkeeping (gradients must flow
//     back through views or parameters never receive them)
//   - SumOp, MeanOp: full reductions (the loss head)
//   - MulScalarOp, AddScalarOp: scalar arithmetic
package ops

import "github.com/descent-ml/descent/internal/tensor"

// Operation represents a differentiable operation in the computation
// graph. Operations record inputs and output during the forward pass
// and compute input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns one gradient per input tensor, in input order.
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
