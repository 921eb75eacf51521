// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// The package wraps any backend with a gradient tape. Operations executed
// through the wrapped backend are recorded, and Backward walks the tape in
// reverse to produce gradients for every input tensor.
//
// Example:
//
//	base := cpu.New()
//	backend := autodiff.New(base)
//
//	backend.Tape().StartRecording()
//	loss := model.Forward(x)
//	grads := autodiff.Backward(loss, backend)
package autodiff

import (
	"github.com/descent-ml/descent/internal/autodiff"
	"github.com/descent-ml/descent/internal/tensor"
)

// Backend records operations executed through the wrapped backend B.
type Backend[B tensor.Backend] = autodiff.Backend[B]

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// Tape records operations for reverse-mode differentiation.
type Tape = autodiff.Tape

// NewTape creates an empty, non-recording tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}

// TapeBackend is a backend that exposes its gradient tape.
type TapeBackend = autodiff.TapeBackend

// Backward computes gradients of t with respect to every tensor on the
// tape. It panics when no operations were recorded.
func Backward[T tensor.DType, B TapeBackend](t *tensor.Tensor[T, B], backend B) map[*tensor.RawTensor]*tensor.RawTensor {
	return autodiff.Backward(t, backend)
}
