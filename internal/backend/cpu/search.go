package cpu

import (
	"fmt"
	"sort"

	"github.com/flowspline-ml/flowspline/internal/parallel"
	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// SearchSorted returns, per element of values, the left insertion point into
// the innermost axis of sorted: the count of entries strictly less than the
// value. Out-of-range queries yield 0 or the axis length.
//
// sorted is either 1-D (a single row shared by every query row) or has the
// same leading dimensions as values.
func (c *CPUBackend) SearchSorted(sorted, values *tensor.RawTensor) *tensor.RawTensor {
	if sorted.DType() != values.DType() {
		panic(fmt.Sprintf("search_sorted: dtype mismatch: %s vs %s", sorted.DType(), values.DType()))
	}

	sShape, vShape := sorted.Shape(), values.Shape()
	if len(sShape) == 0 || len(vShape) == 0 {
		panic("search_sorted: operands must have at least one dimension")
	}

	shared := len(sShape) == 1
	if !shared {
		if len(sShape) != len(vShape) {
			panic(fmt.Sprintf("search_sorted: rank mismatch: %v vs %v", sShape, vShape))
		}
		for d := 0; d < len(sShape)-1; d++ {
			if sShape[d] != vShape[d] {
				panic(fmt.Sprintf("search_sorted: leading dimensions differ: %v vs %v", sShape, vShape))
			}
		}
	}

	m := sShape[len(sShape)-1]
	k := vShape[len(vShape)-1]
	rows := values.NumElements() / k

	out := mustRaw(vShape, tensor.Int32, values.Device())

	switch values.DType() {
	case tensor.Float32:
		searchRows(c, slice[float32](sorted), slice[float32](values), out.AsInt32(), rows, m, k, shared)
	case tensor.Float64:
		searchRows(c, slice[float64](sorted), slice[float64](values), out.AsInt32(), rows, m, k, shared)
	default:
		panic(fmt.Sprintf("search_sorted: unsupported dtype: %s (float only)", values.DType()))
	}
	return out
}

func searchRows[T ~float32 | ~float64](c *CPUBackend, srt, vals []T, out []int32, rows, m, k int, shared bool) {
	parallel.ForRange(rows, func(start, end int) {
		for r := start; r < end; r++ {
			row := srt[:m]
			if !shared {
				row = srt[r*m : (r+1)*m]
			}
			for j := 0; j < k; j++ {
				v := vals[r*k+j]
				out[r*k+j] = int32(sort.Search(m, func(i int) bool { return row[i] >= v }))
			}
		}
	}, c.parallelCfg)
}
