package cpu

import (
	"fmt"
	"math"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Sqrt computes the element-wise square root.
//
// Negative inputs produce NaN. Inversion solves a quadratic whose
// discriminant is non-negative for monotone segment data; when callers feed
// non-monotone data the NaN propagates to the result instead of aborting
// the whole batch.
func (c *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		return unaryOp(c, x, func(v float32) float32 { return float32(math.Sqrt(float64(v))) })
	case tensor.Float64:
		return unaryOp(c, x, math.Sqrt)
	default:
		panic(fmt.Sprintf("sqrt: unsupported dtype: %s (float only)", x.DType()))
	}
}
