package ops

import "github.com/descent-ml/descent/internal/tensor"

// SumOp represents a full reduction: output = sum(x), shape [1].
//
// d(sum(x))/dx_i = 1, so the scalar output gradient is broadcast to
// every input element.
type SumOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(x, output *tensor.RawTensor) *SumOp {
	return &SumOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward broadcasts the scalar output gradient across the input.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	return []*tensor.RawTensor{fillConstant(x.Shape(), x, scalarValue(outputGrad))}
}

// Inputs returns the input tensors [x].
func (op *SumOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the scalar sum tensor.
func (op *SumOp) Output() *tensor.RawTensor { return op.output }

// MeanOp represents a full reduction: output = mean(x), shape [1].
//
// d(mean(x))/dx_i = 1/N: the scalar output gradient is spread evenly
// across every input element. MSE training ends in a Mean, so every
// upstream gradient flows through here.
type MeanOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewMeanOp creates a new MeanOp.
func NewMeanOp(x, output *tensor.RawTensor) *MeanOp {
	return &MeanOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward spreads the scalar output gradient evenly across the input.
func (op *MeanOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	g := scalarValue(outputGrad) / float64(x.NumElements())
	return []*tensor.RawTensor{fillConstant(x.Shape(), x, g)}
}

// Inputs returns the input tensors [x].
func (op *MeanOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the scalar mean tensor.
func (op *MeanOp) Output() *tensor.RawTensor { return op.output }

// scalarValue reads the single element of a reduction gradient as
// float64.
func scalarValue(t *tensor.RawTensor) float64 {
	switch t.DType() {
	case tensor.Float32:
		return float64(t.AsFloat32()[0])
	case tensor.Float64:
		return t.AsFloat64()[0]
	default:
		panic("scalarValue: unsupported dtype " + t.DType().String())
	}
}
