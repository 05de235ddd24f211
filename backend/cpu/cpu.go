// Copyright 2025 The FlowSpline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/flowspline-ml/flowspline/internal/backend/cpu"
	"github.com/flowspline-ml/flowspline/tensor"
)

// Backend represents the CPU backend implementation.
//
// Elementwise kernels over large tensors are chunked across goroutines.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/flowspline-ml/flowspline/backend/cpu"
//	    "github.com/flowspline-ml/flowspline/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float64](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that never spawns worker goroutines.
func NewSequential() *Backend {
	return internalcpu.NewSequential()
}
