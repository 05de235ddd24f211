package spline

import "github.com/flowspline-ml/flowspline/internal/tensor"

// searchSorted generalizes the backend's innermost-axis sorted search to an
// arbitrary axis by moving the axis to the innermost position, delegating,
// and moving the result back.
func searchSorted[T tensor.Float, B tensor.Backend](
	sorted, x *tensor.Tensor[T, B], axis int,
) *tensor.Tensor[int32, B] {
	last := len(sorted.Shape()) - 1
	if axis == last {
		return tensor.SearchSorted(sorted, x)
	}

	ind := tensor.SearchSorted(sorted.Movedim(axis, last), x.Movedim(axis, last))
	return ind.Movedim(last, axis)
}
