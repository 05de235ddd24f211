package spline

import "github.com/flowspline-ml/flowspline/internal/tensor"

// segmentSlopes returns the average slope of each of the knots_len-1
// segments along axis.
func segmentSlopes[T tensor.Float, B tensor.Backend](
	knotsX, knotsY *tensor.Tensor[T, B], axis int,
) *tensor.Tensor[T, B] {
	n := knotsX.Shape()[axis]
	upper := indexRange(1, n)
	lower := indexRange(0, n-1)

	dy := knotsY.IndexSelect(axis, upper).Sub(knotsY.IndexSelect(axis, lower))
	dx := knotsX.IndexSelect(axis, upper).Sub(knotsX.IndexSelect(axis, lower))
	return dy.Div(dx)
}

// averagedSlopeDerivatives computes knot derivatives for the rational
// quadratic family: interior knots get the mean of the two adjacent segment
// slopes, boundary knots the adjacent slope itself, or 1 when unitBoundary
// is set.
func averagedSlopeDerivatives[T tensor.Float, B tensor.Backend](
	knotsX, knotsY *tensor.Tensor[T, B], axis int, unitBoundary bool,
) *tensor.Tensor[T, B] {
	n := knotsX.Shape()[axis]
	m := segmentSlopes(knotsX, knotsY, axis)

	var left, right *tensor.Tensor[T, B]
	if unitBoundary {
		ones := tensor.Ones[T, B](m.IndexSelect(axis, []int{0}).Shape(), m.Backend())
		left, right = ones, ones
	} else {
		left = m.IndexSelect(axis, []int{0})
		right = m.IndexSelect(axis, []int{n - 2})
	}

	if n == 2 {
		// Single segment, no interior knots.
		return tensor.Cat([]*tensor.Tensor[T, B]{left, right}, axis)
	}

	avg := m.IndexSelect(axis, indexRange(1, n-1)).
		Add(m.IndexSelect(axis, indexRange(0, n-2))).
		MulScalar(T(0.5))
	return tensor.Cat([]*tensor.Tensor[T, B]{left, avg, right}, axis)
}

// alternatingProductDerivatives computes knot derivatives for the rational
// linear family with the natural boundary condition: the seed derivative is
// 1 and each next knot satisfies d[k+1] = m[k]^2 / d[k].
//
// The recurrence is strictly sequential along the axis; each derivative
// depends on the previous one.
func alternatingProductDerivatives[T tensor.Float, B tensor.Backend](
	knotsX, knotsY *tensor.Tensor[T, B], axis int,
) *tensor.Tensor[T, B] {
	n := knotsX.Shape()[axis]
	m := segmentSlopes(knotsX, knotsY, axis)

	seedShape := knotsX.Shape().Clone()
	seedShape[axis] = 1

	parts := make([]*tensor.Tensor[T, B], 0, n)
	parts = append(parts, tensor.Ones[T, B](seedShape, knotsX.Backend()))
	for k := 0; k < n-1; k++ {
		mk := m.IndexSelect(axis, []int{k})
		parts = append(parts, mk.Mul(mk).Div(parts[len(parts)-1]))
	}
	return tensor.Cat(parts, axis)
}

// indexRange returns [lo, hi) as a slice of indices.
func indexRange(lo, hi int) []int {
	idx := make([]int, hi-lo)
	for i := range idx {
		idx[i] = lo + i
	}
	return idx
}
