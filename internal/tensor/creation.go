package tensor

import "math/rand"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Full creates a tensor filled with a specific value.
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
// Only works with float types.
// Note: uses math/rand (not crypto/rand), appropriate for statistical use.
func Rand[T Float, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = T(rand.Float64()) //nolint:gosec // G404: statistical sampling, not security
	}
	return t
}

// Arange creates a 1D tensor with values start, start+1, ..., end-1.
func Arange[T Float, B Backend](start, end T, b B) *Tensor[T, B] {
	n := int(end - start)
	if n <= 0 {
		panic("arange: end must be greater than start")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Linspace creates a 1D tensor with n evenly spaced values over [start, end].
func Linspace[T Float, B Backend](start, end T, n int, b B) *Tensor[T, B] {
	if n < 2 {
		panic("linspace: need at least 2 points")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	step := (end - start) / T(n-1)
	for i := range data {
		data[i] = start + T(i)*step
	}
	data[n-1] = end
	return t
}

// one returns the multiplicative identity for T.
func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case bool:
		v = true
	}
	return v.(T)
}
