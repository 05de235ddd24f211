package tensor

// Cat concatenates tensors along the specified dimension.
//
// All tensors must have the same shape except along the concatenation
// dimension. Supports negative dim indexing (-1 = last dimension).
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) *Tensor[T, B] {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	if len(tensors) == 1 {
		return tensors[0].Clone()
	}

	rawTensors := make([]*RawTensor, len(tensors))
	backend := tensors[0].backend
	for i, t := range tensors {
		rawTensors[i] = t.raw
	}

	return New[T, B](backend.Cat(rawTensors, dim), backend)
}

// Reshape returns a tensor with the same data but a different shape.
// The new shape must have the same number of elements.
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, Shape(newShape)), t.backend)
}

// Transpose permutes the tensor's dimensions.
// With no axes, reverses all dimensions.
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Transpose(t.raw, axes...), t.backend)
}

// Movedim moves the dimension at position src to position dst, keeping the
// relative order of the other dimensions. Negative positions count from the
// end. This is the generic transform used to route arbitrary-axis
// operations through innermost-axis primitives.
func (t *Tensor[T, B]) Movedim(src, dst int) *Tensor[T, B] {
	return New[T, B](t.backend.Movedim(t.raw, src, dst), t.backend)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing.
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Unsqueeze(t.raw, dim), t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Squeeze(t.raw, dim), t.backend)
}

// Flip reverses the order of elements along the given dimension.
func (t *Tensor[T, B]) Flip(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Flip(t.raw, dim), t.backend)
}

// Sort returns the tensor with elements sorted ascending along the given
// dimension.
func (t *Tensor[T, B]) Sort(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Sort(t.raw, dim), t.backend)
}
