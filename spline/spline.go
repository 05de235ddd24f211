// Copyright 2025 The FlowSpline Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spline provides invertible, monotone piecewise rational
// interpolators over batches of 1-D knot sequences.
//
// A spline is built once from knot tensors and then evaluated in either
// direction:
//
//	backend := cpu.New()
//	knotsX, _ := tensor.FromSlice([]float64{0, 0.3, 0.7, 1}, tensor.Shape{1, 4}, backend)
//	knotsY, _ := tensor.FromSlice([]float64{0, 0.4, 0.6, 1}, tensor.Shape{1, 4}, backend)
//
//	s, err := spline.New(spline.Pade22, knotsX, knotsY,
//	    spline.WithExtrapLeft[float64, *cpu.Backend](spline.ExtrapLinear),
//	    spline.WithExtrapRight[float64, *cpu.Backend](spline.ExtrapLinear),
//	)
//	y, dy := s.Forward(x, spline.WithGrad())
//	x2, _ := s.Backward(y)
//
// The forward map is a bijection when the knot coordinates increase
// strictly along the knot axis and all derivatives are positive; under the
// same conditions Backward is its exact inverse up to floating-point
// round-off.
package spline

import (
	"github.com/flowspline-ml/flowspline/internal/spline"
	"github.com/flowspline-ml/flowspline/tensor"
)

// Kind selects the interpolant family.
type Kind = spline.Kind

// Interpolant families.
const (
	// Pade22 is the rational quadratic interpolant: two free derivatives
	// per segment, value and derivative continuous across interior knots.
	Pade22 Kind = spline.Pade22
	// Pade11 is the rational linear interpolant: one free derivative per
	// segment and a simpler direct inverse.
	Pade11 Kind = spline.Pade11
)

// Extrap selects the boundary treatment on one side of the knot range.
type Extrap = spline.Extrap

// Boundary selectors.
const (
	ExtrapNone         Extrap = spline.ExtrapNone
	ExtrapLinear       Extrap = spline.ExtrapLinear
	ExtrapPeriodic     Extrap = spline.ExtrapPeriodic
	ExtrapAntiPeriodic Extrap = spline.ExtrapAntiPeriodic
)

// Spline is an immutable batched piecewise rational interpolator.
type Spline[T tensor.Float, B tensor.Backend] = spline.Spline[T, B]

// Option configures spline construction.
type Option[T tensor.Float, B tensor.Backend] = spline.Option[T, B]

// EvalOption configures a single evaluation call.
type EvalOption = spline.EvalOption

// New constructs a spline of the given family over batched knot tensors.
// See the internal package documentation for the exact validation rules.
func New[T tensor.Float, B tensor.Backend](
	kind Kind,
	knotsX, knotsY *tensor.Tensor[T, B],
	opts ...Option[T, B],
) (*Spline[T, B], error) {
	return spline.New(kind, knotsX, knotsY, opts...)
}

// WithDerivatives supplies the derivatives at the knots. Without this
// option the derivatives are computed by the family's smoothing policy.
func WithDerivatives[T tensor.Float, B tensor.Backend](d *tensor.Tensor[T, B]) Option[T, B] {
	return spline.WithDerivatives(d)
}

// WithAxis sets the axis along which knot coordinates are placed.
// Negative values count from the end. The default is -1.
func WithAxis[T tensor.Float, B tensor.Backend](axis int) Option[T, B] {
	return spline.WithAxis[T, B](axis)
}

// WithExtrapLeft sets the boundary treatment below the first knot.
func WithExtrapLeft[T tensor.Float, B tensor.Backend](e Extrap) Option[T, B] {
	return spline.WithExtrapLeft[T, B](e)
}

// WithExtrapRight sets the boundary treatment above the last knot.
func WithExtrapRight[T tensor.Float, B tensor.Backend](e Extrap) Option[T, B] {
	return spline.WithExtrapRight[T, B](e)
}

// WithoutExtrapolation requests rejection of out-of-range queries.
// Not supported; construction fails with an error.
func WithoutExtrapolation[T tensor.Float, B tensor.Backend]() Option[T, B] {
	return spline.WithoutExtrapolation[T, B]()
}

// WithUnitBoundaryDerivatives forces the smoothed derivative to 1 at the
// two boundary knots. Only meaningful for Pade22 when derivatives are not
// supplied.
func WithUnitBoundaryDerivatives[T tensor.Float, B tensor.Backend]() Option[T, B] {
	return spline.WithUnitBoundaryDerivatives[T, B]()
}

// WithGrad requests the derivative alongside the value.
func WithGrad() EvalOption {
	return spline.WithGrad()
}

// Squeezed declares that the query tensor omits the knot axis dimension.
func Squeezed() EvalOption {
	return spline.Squeezed()
}
