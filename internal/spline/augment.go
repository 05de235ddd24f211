package spline

import (
	"github.com/pkg/errors"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// augmentKnots appends fictitious knots per the boundary selectors so that
// out-of-range queries land on an ordinary segment.
//
// Linear sides are patched first; periodic and anti-periodic reflections
// then operate on the already-extended sequence, so a linear knot on one
// side takes part in the reflection of the other.
func augmentKnots[T tensor.Float, B tensor.Backend](
	x, y, d *tensor.Tensor[T, B], axis int, left, right Extrap,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B], *tensor.Tensor[T, B], error) {
	if left == ExtrapNone && right == ExtrapNone {
		return x, y, d, nil
	}

	if left == ExtrapLinear || right == ExtrapLinear {
		x, y, d = augmentLinear(x, y, d, axis, left, right)
		if left == ExtrapNone || right == ExtrapNone {
			return x, y, d, nil
		}
	}
	return augmentReflect(x, y, d, axis, left, right)
}

// augmentLinear patches a unit-width linear segment to each side selecting
// linear extrapolation: the fictitious knot continues the boundary slope.
func augmentLinear[T tensor.Float, B tensor.Backend](
	x, y, d *tensor.Tensor[T, B], axis int, left, right Extrap,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B], *tensor.Tensor[T, B]) {
	n := x.Shape()[axis]
	first := []int{0}
	last := []int{n - 1}

	var xL, yL, dL *tensor.Tensor[T, B]
	if left == ExtrapLinear {
		dL = d.IndexSelect(axis, first)
		xL = x.IndexSelect(axis, first).AddScalar(T(-1))
		yL = y.IndexSelect(axis, first).Sub(dL)
	}

	var xR, yR, dR *tensor.Tensor[T, B]
	if right == ExtrapLinear {
		dR = d.IndexSelect(axis, last)
		xR = x.IndexSelect(axis, last).AddScalar(T(1))
		yR = y.IndexSelect(axis, last).Add(dR)
	}

	return catKnots(xL, x, xR, axis), catKnots(yL, y, yR, axis), catKnots(dL, d, dR, axis)
}

// augmentReflect handles the periodic and anti-periodic selectors by
// reflecting the knot sequence about the boundary knot. The left reflection
// uses knots [1:], the right one knots [:n-1], so the boundary knot itself
// is not duplicated.
func augmentReflect[T tensor.Float, B tensor.Backend](
	x, y, d *tensor.Tensor[T, B], axis int, left, right Extrap,
) (*tensor.Tensor[T, B], *tensor.Tensor[T, B], *tensor.Tensor[T, B], error) {
	n := x.Shape()[axis]
	first := []int{0}
	last := []int{n - 1}
	tail := indexRange(1, n)
	head := indexRange(0, n-1)

	selectFlip := func(t *tensor.Tensor[T, B], idx []int) *tensor.Tensor[T, B] {
		return t.IndexSelect(axis, idx).Flip(axis)
	}

	var xL, yL, dL *tensor.Tensor[T, B]
	switch left {
	case ExtrapAntiPeriodic:
		xL = x.IndexSelect(axis, first).MulScalar(T(2)).Sub(selectFlip(x, tail))
		yL = y.IndexSelect(axis, first).MulScalar(T(2)).Sub(selectFlip(y, tail))
		dL = selectFlip(d, tail)
	case ExtrapPeriodic:
		if err := requireZeroDerivative(d, axis, 0); err != nil {
			return nil, nil, nil, errors.Wrap(err, "extrap_left")
		}
		xL = x.IndexSelect(axis, first).MulScalar(T(2)).Sub(selectFlip(x, tail))
		yL = selectFlip(y, tail)
		dL = selectFlip(d, tail).MulScalar(T(-1))
	}

	var xR, yR, dR *tensor.Tensor[T, B]
	switch right {
	case ExtrapAntiPeriodic:
		xR = x.IndexSelect(axis, last).MulScalar(T(2)).Sub(selectFlip(x, head))
		yR = y.IndexSelect(axis, last).MulScalar(T(2)).Sub(selectFlip(y, head))
		dR = selectFlip(d, head)
	case ExtrapPeriodic:
		if err := requireZeroDerivative(d, axis, n-1); err != nil {
			return nil, nil, nil, errors.Wrap(err, "extrap_right")
		}
		xR = x.IndexSelect(axis, last).MulScalar(T(2)).Sub(selectFlip(x, head))
		yR = selectFlip(y, head)
		dR = selectFlip(d, head).MulScalar(T(-1))
	}

	return catKnots(xL, x, xR, axis), catKnots(yL, y, yR, axis), catKnots(dL, d, dR, axis), nil
}

// requireZeroDerivative checks that every batch entry has a zero derivative
// at the boundary knot.
func requireZeroDerivative[T tensor.Float, B tensor.Backend](
	d *tensor.Tensor[T, B], axis, knot int,
) error {
	boundary := d.IndexSelect(axis, []int{knot})
	for _, v := range boundary.Data() {
		if v != 0 {
			return errors.Errorf("derivative at the periodic boundary knot must be zero, got %v", v)
		}
	}
	return nil
}

// catKnots concatenates the non-nil parts along axis.
func catKnots[T tensor.Float, B tensor.Backend](
	left, mid, right *tensor.Tensor[T, B], axis int,
) *tensor.Tensor[T, B] {
	parts := make([]*tensor.Tensor[T, B], 0, 3)
	for _, t := range []*tensor.Tensor[T, B]{left, mid, right} {
		if t != nil {
			parts = append(parts, t)
		}
	}
	return tensor.Cat(parts, axis)
}
