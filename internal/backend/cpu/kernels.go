package cpu

import (
	"fmt"
	"unsafe"

	"github.com/flowspline-ml/flowspline/internal/parallel"
	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// number covers the arithmetic element types the CPU kernels operate on.
type number interface {
	~float32 | ~float64 | ~int32
}

// slice reinterprets a RawTensor's buffer as a typed slice. The caller must
// have already matched T against the tensor's dtype.
func slice[T tensor.DType](r *tensor.RawTensor) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&r.Data()[0])), r.NumElements())
}

// mustRaw allocates an output tensor, panicking on invalid shapes. Backend
// kernels run after shape validation, so allocation failures indicate bugs.
func mustRaw(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) *tensor.RawTensor {
	out, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("allocating result tensor: %v", err))
	}
	return out
}

// binaryOp applies f element-wise over a and b with broadcasting.
func binaryOp[T number](c *CPUBackend, op string, a, b *tensor.RawTensor, f func(T, T) T) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	out := mustRaw(outShape, a.DType(), a.Device())
	av, bv, ov := slice[T](a), slice[T](b), slice[T](out)

	if !needsBroadcast {
		parallel.ForRange(len(ov), func(start, end int) {
			for i := start; i < end; i++ {
				ov[i] = f(av[i], bv[i])
			}
		}, c.parallelCfg)
		return out
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	parallel.ForRange(len(ov), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := broadcastOffsets(i, outStrides, aStrides, bStrides)
			ov[i] = f(av[ai], bv[bi])
		}
	}, c.parallelCfg)
	return out
}

// unaryOp applies f element-wise over x.
func unaryOp[T number](c *CPUBackend, x *tensor.RawTensor, f func(T) T) *tensor.RawTensor {
	out := mustRaw(x.Shape(), x.DType(), x.Device())
	xv, ov := slice[T](x), slice[T](out)

	parallel.ForRange(len(ov), func(start, end int) {
		for i := start; i < end; i++ {
			ov[i] = f(xv[i])
		}
	}, c.parallelCfg)
	return out
}

// compareOp applies the bool-valued f element-wise over a and b with
// broadcasting, producing a Bool tensor.
func compareOp[T number](c *CPUBackend, op string, a, b *tensor.RawTensor, f func(T, T) bool) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}

	out := mustRaw(outShape, tensor.Bool, a.Device())
	av, bv, ov := slice[T](a), slice[T](b), slice[bool](out)

	if !needsBroadcast {
		parallel.ForRange(len(ov), func(start, end int) {
			for i := start; i < end; i++ {
				ov[i] = f(av[i], bv[i])
			}
		}, c.parallelCfg)
		return out
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	parallel.ForRange(len(ov), func(start, end int) {
		for i := start; i < end; i++ {
			ai, bi := broadcastOffsets(i, outStrides, aStrides, bStrides)
			ov[i] = f(av[ai], bv[bi])
		}
	}, c.parallelCfg)
	return out
}

// broadcastStrides returns effective strides for reading src as if it had
// the target shape: broadcast dimensions get stride 0.
//
// src must be broadcast-compatible with target (checked upstream).
func broadcastStrides(src, target tensor.Shape) []int {
	srcStrides := src.ComputeStrides()
	result := make([]int, len(target))
	offset := len(target) - len(src)

	for i := range target {
		srcIdx := i - offset
		if srcIdx < 0 {
			result[i] = 0 // Dimension absent in src.
			continue
		}
		if src[srcIdx] == 1 && target[i] != 1 {
			result[i] = 0 // Broadcast dimension, reuse the single entry.
		} else {
			result[i] = srcStrides[srcIdx]
		}
	}
	return result
}

// broadcastOffsets decomposes a flat output index into per-dimension
// coordinates and accumulates the corresponding flat offsets into the two
// operands.
func broadcastOffsets(idx int, outStrides, aStrides, bStrides []int) (int, int) {
	ai, bi := 0, 0
	for d := range outStrides {
		coord := idx / outStrides[d]
		idx %= outStrides[d]
		ai += coord * aStrides[d]
		bi += coord * bStrides[d]
	}
	return ai, bi
}

// sourceOffset maps a flat output index to a flat source index under
// broadcast strides.
func sourceOffset(idx int, outStrides, srcStrides []int) int {
	off := 0
	for d := range outStrides {
		coord := idx / outStrides[d]
		idx %= outStrides[d]
		off += coord * srcStrides[d]
	}
	return off
}
