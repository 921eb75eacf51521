package ops

import "github.com/descent-ml/descent/internal/tensor"

// MulScalarOp represents scalar multiplication: output = x * s.
//
// d(x*s)/dx = s.
type MulScalarOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
	scalar any
}

// NewMulScalarOp creates a new MulScalarOp.
func NewMulScalarOp(x, output *tensor.RawTensor, scalar any) *MulScalarOp {
	return &MulScalarOp{inputs: []*tensor.RawTensor{x}, output: output, scalar: scalar}
}

// Backward scales the output gradient by the recorded scalar.
func (op *MulScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.MulScalar(outputGrad, op.scalar)}
}

// Inputs returns the input tensors [x].
func (op *MulScalarOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor x * s.
func (op *MulScalarOp) Output() *tensor.RawTensor { return op.output }

// AddScalarOp represents scalar addition: output = x + s.
//
// d(x+s)/dx = 1.
type AddScalarOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewAddScalarOp creates a new AddScalarOp.
func NewAddScalarOp(x, output *tensor.RawTensor) *AddScalarOp {
	return &AddScalarOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward passes the output gradient through unchanged.
func (op *AddScalarOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{outputGrad.Clone()}
}

// Inputs returns the input tensors [x].
func (op *AddScalarOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the output tensor x + s.
func (op *AddScalarOp) Output() *tensor.RawTensor { return op.output }
