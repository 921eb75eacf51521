package cpu

import (
	"math"
	"testing"

	"github.com/descent-ml/descent/internal/tensor"
)

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func assertFloats(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdd(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float64{10, 20, 30, 40}, tensor.Shape{2, 2})

	result := backend.Add(a, b)
	assertFloats(t, result.AsFloat64(), []float64{11, 22, 33, 44}, 0)
}

func TestAddInPlaceFastPath(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2}, tensor.Shape{2})
	b := fromSlice(t, []float64{3, 4}, tensor.Shape{2})

	// Unique left operand, same shapes: result reuses a's buffer.
	result := backend.Add(a, b)
	if result != a {
		t.Error("expected in-place result for unique same-shape operands")
	}
}

func TestAddRespectsPinnedOperand(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2}, tensor.Shape{2})
	b := fromSlice(t, []float64{3, 4}, tensor.Shape{2})

	restore := a.ForceNonUnique()
	defer restore()

	result := backend.Add(a, b)
	if result == a {
		t.Error("pinned operand must not be updated in place")
	}
	assertFloats(t, a.AsFloat64(), []float64{1, 2}, 0)
	assertFloats(t, result.AsFloat64(), []float64{4, 6}, 0)
}

func TestSubMulDiv(t *testing.T) {
	backend := New()

	a := fromSlice(t, []float64{10, 20, 30, 40}, tensor.Shape{2, 2})
	a.ForceNonUnique()

	b := fromSlice(t, []float64{2, 4, 5, 8}, tensor.Shape{2, 2})

	assertFloats(t, backend.Sub(a, b).AsFloat64(), []float64{8, 16, 25, 32}, 0)
	assertFloats(t, backend.Mul(a, b).AsFloat64(), []float64{20, 80, 150, 320}, 0)
	assertFloats(t, backend.Div(a, b).AsFloat64(), []float64{5, 5, 6, 5}, 0)
}

func TestAddBroadcastRow(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := fromSlice(t, []float64{10, 20, 30}, tensor.Shape{1, 3})

	result := backend.Add(a, row)
	if !result.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("result shape %v, want [2 3]", result.Shape())
	}
	assertFloats(t, result.AsFloat64(), []float64{11, 22, 33, 14, 25, 36}, 0)
}

func TestAddBroadcastColumn(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	col := fromSlice(t, []float64{10, 20}, tensor.Shape{2, 1})

	result := backend.Add(a, col)
	assertFloats(t, result.AsFloat64(), []float64{11, 12, 24, 25}, 0)
}

func TestAddShapeMismatchPanics(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []float64{1, 2}, tensor.Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("incompatible shapes should panic")
		}
	}()
	backend.Add(a, b)
}

func TestMatMul(t *testing.T) {
	backend := New()

	// [2, 3] @ [3, 2] = [2, 2]
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	b := fromSlice(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	result := backend.MatMul(a, b)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("result shape %v, want [2 2]", result.Shape())
	}
	assertFloats(t, result.AsFloat64(), []float64{58, 64, 139, 154}, 1e-12)
}

func TestMatMulDimensionMismatchPanics(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3, 1})

	defer func() {
		if recover() == nil {
			t.Error("inner dimension mismatch should panic")
		}
	}()
	backend.MatMul(a, b)
}

func TestTranspose2D(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Transpose(a)
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("result shape %v, want [3 2]", result.Shape())
	}
	assertFloats(t, result.AsFloat64(), []float64{1, 4, 2, 5, 3, 6}, 0)
}

func TestTransposeInvalidAxesPanics(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	defer func() {
		if recover() == nil {
			t.Error("duplicate axes should panic")
		}
	}()
	backend.Transpose(a, 0, 0)
}

func TestReshape(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	result := backend.Reshape(a, tensor.Shape{3, 2})
	if !result.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("result shape %v, want [3 2]", result.Shape())
	}
	assertFloats(t, result.AsFloat64(), a.AsFloat64(), 0)
}

func TestMulScalar(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, -2, 3}, tensor.Shape{3})

	result := backend.MulScalar(a, 2.0)
	assertFloats(t, result.AsFloat64(), []float64{2, -4, 6}, 0)
}

func TestAddScalar(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3})

	result := backend.AddScalar(a, 0.5)
	assertFloats(t, result.AsFloat64(), []float64{1.5, 2.5, 3.5}, 0)
}

func TestMulScalarWrongTypePanics(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2}, tensor.Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("float32 scalar on a float64 tensor should panic")
		}
	}()
	backend.MulScalar(a, float32(2))
}

func TestSumMean(t *testing.T) {
	backend := New()
	a := fromSlice(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	sum := backend.Sum(a)
	if !sum.Shape().Equal(tensor.Shape{1}) {
		t.Fatalf("sum shape %v, want [1]", sum.Shape())
	}
	if got := sum.AsFloat64()[0]; got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}

	mean := backend.Mean(a)
	if got := mean.AsFloat64()[0]; got != 2.5 {
		t.Errorf("Mean = %v, want 2.5", got)
	}
}
