// Package cpu implements the tensor.Backend interface with pure Go kernels.
//
// Kernels are generic over the element type and dispatch once per call on
// the runtime dtype. Elementwise operations over large buffers are chunked
// across goroutines via internal/parallel.
package cpu

import (
	"fmt"

	"github.com/flowspline-ml/flowspline/internal/parallel"
	"github.com/flowspline-ml/flowspline/internal/tensor"
)

// CPUBackend implements tensor.Backend using pure Go.
type CPUBackend struct {
	parallelCfg parallel.Config
}

// New creates a new CPU backend with default parallel configuration.
func New() *CPUBackend {
	return &CPUBackend{
		parallelCfg: parallel.DefaultConfig(),
	}
}

// NewSequential creates a CPU backend that never spawns worker goroutines.
// Useful for deterministic profiling and debugging.
func NewSequential() *CPUBackend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = false
	return &CPUBackend{parallelCfg: cfg}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "CPU (Pure Go)"
}

// Device returns the device this backend computes on.
func (c *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}

// Add performs element-wise addition with broadcasting.
func (c *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryDispatch("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y },
		func(x, y int32) int32 { return x + y },
	)
}

// Sub performs element-wise subtraction with broadcasting.
func (c *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryDispatch("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y },
		func(x, y int32) int32 { return x - y },
	)
}

// Mul performs element-wise multiplication with broadcasting.
func (c *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryDispatch("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y },
		func(x, y int32) int32 { return x * y },
	)
}

// Div performs element-wise division with broadcasting.
// Float division by zero follows IEEE semantics and yields Inf or NaN.
func (c *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.binaryDispatch("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y },
		func(x, y int32) int32 { return x / y },
	)
}

// binaryDispatch validates operands and routes to the typed kernel.
func (c *CPUBackend) binaryDispatch(
	op string,
	a, b *tensor.RawTensor,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType()))
	}

	switch a.DType() {
	case tensor.Float32:
		return binaryOp(c, op, a, b, f32)
	case tensor.Float64:
		return binaryOp(c, op, a, b, f64)
	case tensor.Int32:
		return binaryOp(c, op, a, b, i32)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype: %s", op, a.DType()))
	}
}
