// Copyright 2025 The FlowSpline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Backend defines the interface that compute backends implement. It covers
// exactly the operation surface batched spline evaluation needs:
// broadcasting elementwise arithmetic, comparisons and selection, axis
// manipulation, gather/index-select/flip/sort, and a sorted-search
// primitive on the innermost axis.
type Backend = tensor.Backend

// RawTensor is the low-level tensor representation: a flat row-major byte
// buffer plus shape and runtime type information.
type RawTensor = tensor.RawTensor

// NewRaw creates a new raw tensor with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation
// functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}
