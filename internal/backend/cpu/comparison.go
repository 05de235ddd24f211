package cpu

import (
	"fmt"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// Greater returns a Bool tensor with a > b element-wise.
func (c *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("greater", a, b,
		func(x, y float32) bool { return x > y },
		func(x, y float64) bool { return x > y },
		func(x, y int32) bool { return x > y },
	)
}

// Lower returns a Bool tensor with a < b element-wise.
func (c *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("lower", a, b,
		func(x, y float32) bool { return x < y },
		func(x, y float64) bool { return x < y },
		func(x, y int32) bool { return x < y },
	)
}

// GreaterEqual returns a Bool tensor with a >= b element-wise.
func (c *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("greater_equal", a, b,
		func(x, y float32) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
		func(x, y int32) bool { return x >= y },
	)
}

// LowerEqual returns a Bool tensor with a <= b element-wise.
func (c *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("lower_equal", a, b,
		func(x, y float32) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
		func(x, y int32) bool { return x <= y },
	)
}

// Equal returns a Bool tensor with a == b element-wise.
func (c *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("equal", a, b,
		func(x, y float32) bool { return x == y },
		func(x, y float64) bool { return x == y },
		func(x, y int32) bool { return x == y },
	)
}

// NotEqual returns a Bool tensor with a != b element-wise.
func (c *CPUBackend) NotEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compareDispatch("not_equal", a, b,
		func(x, y float32) bool { return x != y },
		func(x, y float64) bool { return x != y },
		func(x, y int32) bool { return x != y },
	)
}

func (c *CPUBackend) compareDispatch(
	op string,
	a, b *tensor.RawTensor,
	f32 func(float32, float32) bool,
	f64 func(float64, float64) bool,
	i32 func(int32, int32) bool,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	switch a.DType() {
	case tensor.Float32:
		return compareOp(c, op, a, b, f32)
	case tensor.Float64:
		return compareOp(c, op, a, b, f64)
	case tensor.Int32:
		return compareOp(c, op, a, b, i32)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype: %s", op, a.DType()))
	}
}
