package tensor

// Gather selects elements along dim using an index tensor.
//
// The index tensor must have dtype int32 and its shape must match the input
// shape except at the gather dimension, where it can differ.
func (t *Tensor[T, B]) Gather(dim int, index *Tensor[int32, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Gather(t.raw, dim, index.raw), t.backend)
}

// IndexSelect returns a tensor assembled from the slices of t at the given
// positions along dim, in the order listed.
func (t *Tensor[T, B]) IndexSelect(dim int, indices []int) *Tensor[T, B] {
	return New[T, B](t.backend.IndexSelect(t.raw, dim, indices), t.backend)
}

// Clamp limits every element of an int32 index tensor to [lo, hi].
func Clamp[B Backend](t *Tensor[int32, B], lo, hi int32) *Tensor[int32, B] {
	return New[int32, B](t.backend.Clamp(t.raw, lo, hi), t.backend)
}

// SearchSorted returns, per element of values, the left insertion point into
// the innermost axis of sorted: the count of entries strictly less than the
// value. Out-of-range values produce 0 or the axis length.
//
// Both arguments must share their leading (non-innermost) dimensions.
func SearchSorted[T Float, B Backend](sorted, values *Tensor[T, B]) *Tensor[int32, B] {
	return New[int32, B](sorted.backend.SearchSorted(sorted.raw, values.raw), sorted.backend)
}
