package cpu

import (
	"fmt"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// AddScalar adds a scalar to each element.
func (c *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarDispatch("add_scalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s },
		func(v, s int32) int32 { return v + s },
	)
}

// SubScalar subtracts a scalar from each element.
func (c *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarDispatch("sub_scalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s },
		func(v, s int32) int32 { return v - s },
	)
}

// MulScalar multiplies each element by a scalar.
func (c *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarDispatch("mul_scalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s },
		func(v, s int32) int32 { return v * s },
	)
}

// DivScalar divides each element by a scalar.
// Float division by zero follows IEEE semantics.
func (c *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarDispatch("div_scalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s },
		func(v, s int32) int32 { return v / s },
	)
}

func (c *CPUBackend) scalarDispatch(
	op string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
) *tensor.RawTensor {
	switch x.DType() {
	case tensor.Float32:
		s := scalarAs[float32](op, scalar)
		return unaryOp(c, x, func(v float32) float32 { return f32(v, s) })
	case tensor.Float64:
		s := scalarAs[float64](op, scalar)
		return unaryOp(c, x, func(v float64) float64 { return f64(v, s) })
	case tensor.Int32:
		s := scalarAs[int32](op, scalar)
		return unaryOp(c, x, func(v int32) int32 { return i32(v, s) })
	default:
		panic(fmt.Sprintf("%s: unsupported dtype: %s", op, x.DType()))
	}
}

// scalarAs converts a scalar of any supported numeric Go type to T.
func scalarAs[T number](op string, scalar any) T {
	switch s := scalar.(type) {
	case float32:
		return T(s)
	case float64:
		return T(s)
	case int:
		return T(s)
	case int32:
		return T(s)
	case int64:
		return T(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type: %T", op, scalar))
	}
}
