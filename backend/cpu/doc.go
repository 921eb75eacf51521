// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU compute backend.
//
// The backend implements every tensor operation with generic kernels over
// float32 and float64. Element-wise operations follow NumPy broadcasting
// rules, and same-shape operations on uniquely referenced tensors reuse
// the left operand's buffer instead of allocating.
//
// Usage:
//
//	backend := cpu.New()
//	x := tensor.Randn[float64](tensor.Shape{128, 4}, nil, backend)
//	y := x.MatMul(x.T())
package cpu
