package cpu

import (
	"fmt"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Gather selects elements of x along dim using an Int32 index tensor of the
// same rank. The result has the index tensor's shape.
func (c *CPUBackend) Gather(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)

	if index.DType() != tensor.Int32 {
		panic(fmt.Sprintf("gather: index dtype is %s, expected int32", index.DType()))
	}
	idxShape := index.Shape()
	if len(idxShape) != len(shape) {
		panic(fmt.Sprintf("gather: index rank %d does not match input rank %d", len(idxShape), len(shape)))
	}
	for d := range shape {
		if d != dim && idxShape[d] != shape[d] {
			panic(fmt.Sprintf("gather: index shape %v incompatible with input shape %v at dimension %d", idxShape, shape, d))
		}
	}

	out := mustRaw(idxShape, x.DType(), x.Device())

	outStrides := idxShape.ComputeStrides()
	srcStrides := shape.ComputeStrides()
	idx := index.AsInt32()
	es := x.DType().Size()
	src, dst := x.Data(), out.Data()

	n := out.NumElements()
	for i := 0; i < n; i++ {
		rem, off := i, 0
		for d := range outStrides {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			if d == dim {
				coord = int(idx[i])
				if coord < 0 || coord >= shape[dim] {
					panic(fmt.Sprintf("gather: index %d out of range for dimension %d of size %d", coord, dim, shape[dim]))
				}
			}
			off += coord * srcStrides[d]
		}
		copy(dst[i*es:(i+1)*es], src[off*es:(off+1)*es])
	}
	return out
}

// IndexSelect assembles the slices of x at the given positions along dim,
// in the order listed.
func (c *CPUBackend) IndexSelect(x *tensor.RawTensor, dim int, indices []int) *tensor.RawTensor {
	shape := x.Shape()
	dim = shape.Normalize(dim)

	if len(indices) == 0 {
		panic("index_select: at least one index required")
	}
	for _, idx := range indices {
		if idx < 0 || idx >= shape[dim] {
			panic(fmt.Sprintf("index_select: index %d out of range for dimension %d of size %d", idx, dim, shape[dim]))
		}
	}

	outShape := shape.Clone()
	outShape[dim] = len(indices)
	out := mustRaw(outShape, x.DType(), x.Device())

	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}
	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	blockBytes := inner * x.DType().Size()
	src, dst := x.Data(), out.Data()

	for o := 0; o < outer; o++ {
		srcBase := o * shape[dim] * blockBytes
		dstBase := o * len(indices) * blockBytes
		for j, idx := range indices {
			s := srcBase + idx*blockBytes
			d := dstBase + j*blockBytes
			copy(dst[d:d+blockBytes], src[s:s+blockBytes])
		}
	}
	return out
}

// Where selects elements from x where condition is true and from y
// elsewhere, broadcasting all three operands to a common shape.
func (c *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition dtype is %s, expected bool", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	xyShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(xyShape, condition.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	out := mustRaw(outShape, x.DType(), x.Device())

	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(condition.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)

	cond := condition.AsBool()
	es := x.DType().Size()
	xs, ys, dst := x.Data(), y.Data(), out.Data()

	n := out.NumElements()
	for i := 0; i < n; i++ {
		rem := i
		ci, xi, yi := 0, 0, 0
		for d := range outStrides {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			ci += coord * condStrides[d]
			xi += coord * xStrides[d]
			yi += coord * yStrides[d]
		}
		if cond[ci] {
			copy(dst[i*es:(i+1)*es], xs[xi*es:(xi+1)*es])
		} else {
			copy(dst[i*es:(i+1)*es], ys[yi*es:(yi+1)*es])
		}
	}
	return out
}

// Clamp limits every element of an Int32 tensor to [lo, hi].
func (c *CPUBackend) Clamp(x *tensor.RawTensor, lo, hi int32) *tensor.RawTensor {
	if x.DType() != tensor.Int32 {
		panic(fmt.Sprintf("clamp: unsupported dtype: %s (int32 only)", x.DType()))
	}
	return unaryOp(c, x, func(v int32) int32 {
		return min(max(v, lo), hi)
	})
}
