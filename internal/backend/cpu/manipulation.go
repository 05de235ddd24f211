package cpu

import (
	"fmt"
	"slices"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Reshape returns a view of x under a new shape.
// The new shape must describe the same number of elements.
func (c *CPUBackend) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	return x.WithShape(newShape)
}

// Transpose permutes the dimensions of x according to axes.
// With no axes, all dimensions are reversed.
func (c *CPUBackend) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d does not match tensor rank %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		ax = shape.Normalize(ax)
		axes[i] = ax
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
		outShape[i] = shape[ax]
	}

	out := mustRaw(outShape, x.DType(), x.Device())

	// Source strides reordered by the permutation: walking output
	// coordinates in row-major order accumulates the source offset directly.
	srcStrides := shape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, ax := range axes {
		permStrides[i] = srcStrides[ax]
	}
	outStrides := outShape.ComputeStrides()

	es := x.DType().Size()
	src, dst := x.Data(), out.Data()
	n := out.NumElements()
	for i := 0; i < n; i++ {
		si := sourceOffset(i, outStrides, permStrides)
		copy(dst[i*es:(i+1)*es], src[si*es:(si+1)*es])
	}
	return out
}

// Movedim moves the dimension at src to dst, preserving the order of the
// remaining dimensions.
func (c *CPUBackend) Movedim(x *tensor.RawTensor, src, dst int) *tensor.RawTensor {
	shape := x.Shape()
	src = shape.Normalize(src)
	dst = shape.Normalize(dst)
	if src == dst {
		return x.Clone()
	}

	axes := make([]int, 0, len(shape))
	for i := range shape {
		if i != src {
			axes = append(axes, i)
		}
	}
	axes = slices.Insert(axes, dst, src)
	return c.Transpose(x, axes...)
}

// Unsqueeze inserts a dimension of size 1 at dim.
func (c *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim + 1
	}
	if dim < 0 || dim > ndim {
		panic(fmt.Sprintf("unsqueeze: dim %d out of range for %dD tensor", dim, ndim))
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return x.WithShape(newShape)
}

// Squeeze removes the dimension at dim, which must have size 1.
func (c *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return x.WithShape(newShape)
}

// Cat concatenates tensors along dim. All tensors must share dtype and
// shape except along the concatenation dimension.
func (c *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	first := tensors[0]
	shape := first.Shape()
	dim = shape.Normalize(dim)

	catSize := 0
	for i, t := range tensors {
		if t.DType() != first.DType() {
			panic(fmt.Sprintf("cat: dtype mismatch at tensor %d: %s vs %s", i, t.DType(), first.DType()))
		}
		ts := t.Shape()
		if len(ts) != len(shape) {
			panic(fmt.Sprintf("cat: rank mismatch at tensor %d: %d vs %d", i, len(ts), len(shape)))
		}
		for d := range ts {
			if d != dim && ts[d] != shape[d] {
				panic(fmt.Sprintf("cat: shape mismatch at tensor %d, dimension %d: %d vs %d", i, d, ts[d], shape[d]))
			}
		}
		catSize += ts[dim]
	}

	outShape := shape.Clone()
	outShape[dim] = catSize
	out := mustRaw(outShape, first.DType(), first.Device())

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	es := first.DType().Size()
	outRowBytes := catSize * inner * es
	dst := out.Data()

	for o := 0; o < outer; o++ {
		off := o * outRowBytes
		for _, t := range tensors {
			rowBytes := t.Shape()[dim] * inner * es
			copy(dst[off:off+rowBytes], t.Data()[o*rowBytes:(o+1)*rowBytes])
			off += rowBytes
		}
	}
	return out
}

// Flip reverses the order of elements along dim.
func (c *CPUBackend) Flip(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)

	out := mustRaw(shape, x.DType(), x.Device())

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	n := shape[dim]
	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	blockBytes := inner * x.DType().Size()
	src, dst := x.Data(), out.Data()

	for o := 0; o < outer; o++ {
		base := o * n * blockBytes
		for i := 0; i < n; i++ {
			s := base + (n-1-i)*blockBytes
			d := base + i*blockBytes
			copy(dst[d:d+blockBytes], src[s:s+blockBytes])
		}
	}
	return out
}

// Sort returns x with elements sorted ascending along dim.
func (c *CPUBackend) Sort(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)
	last := len(shape) - 1

	if dim != last {
		moved := c.Movedim(x, dim, last)
		sorted := c.Sort(moved, last)
		return c.Movedim(sorted, last, dim)
	}

	out := x.Clone()
	n := shape[last]
	rows := out.NumElements() / n

	switch x.DType() {
	case tensor.Float32:
		sortRows(slice[float32](out), rows, n)
	case tensor.Float64:
		sortRows(slice[float64](out), rows, n)
	case tensor.Int32:
		sortRows(slice[int32](out), rows, n)
	default:
		panic(fmt.Sprintf("sort: unsupported dtype: %s", x.DType()))
	}
	return out
}

func sortRows[T number](data []T, rows, n int) {
	for r := 0; r < rows; r++ {
		slices.Sort(data[r*n : (r+1)*n])
	}
}
