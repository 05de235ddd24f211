package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation surface is exactly what batched monotone-spline evaluation
// needs: broadcasting elementwise arithmetic, comparisons and selection,
// axis manipulation, gather/index-select/flip, and a sorted-search
// primitive acting on the innermost axis.
//
// Implementations:
//   - CPU: pure Go (internal/backend/cpu)
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise, float dtypes only).
	// Sqrt of a negative element yields NaN rather than panicking; callers
	// that violate monotonicity preconditions get non-finite results, not
	// errors.
	Sqrt(x *RawTensor) *RawTensor

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor
	NotEqual(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Transpose(x *RawTensor, axes ...int) *RawTensor
	Movedim(x *RawTensor, src, dst int) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor
	Squeeze(x *RawTensor, dim int) *RawTensor

	// Manipulation operations.
	Cat(tensors []*RawTensor, dim int) *RawTensor
	Flip(x *RawTensor, dim int) *RawTensor
	Sort(x *RawTensor, dim int) *RawTensor

	// Indexing operations.
	Gather(x *RawTensor, dim int, index *RawTensor) *RawTensor
	IndexSelect(x *RawTensor, dim int, indices []int) *RawTensor
	Where(condition, x, y *RawTensor) *RawTensor
	Clamp(x *RawTensor, lo, hi int32) *RawTensor

	// SearchSorted returns, for every element of values, the number of
	// entries along the innermost axis of sorted that are strictly less
	// than it (left insertion point). Leading axes of sorted and values
	// must match; the result is an Int32 tensor shaped like values.
	SearchSorted(sorted, values *RawTensor) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
