package cpu

import (
	"math"
	"testing"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

func rawF64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func rawI32(t *testing.T, data []int32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Int32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsInt32(), data)
	return raw
}

func assertF64(t *testing.T, got *tensor.RawTensor, want []float64) {
	t.Helper()
	gotData := got.AsFloat64()
	if len(gotData) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(gotData))
	}
	for i := range want {
		if math.Abs(gotData[i]-want[i]) > 1e-12 {
			t.Errorf("element %d: expected %v, got %v", i, want[i], gotData[i])
		}
	}
}

func TestArithmetic(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawF64(t, []float64{5, 6, 7, 8}, tensor.Shape{2, 2})

	t.Run("Add", func(t *testing.T) {
		assertF64(t, backend.Add(a, b), []float64{6, 8, 10, 12})
	})
	t.Run("Sub", func(t *testing.T) {
		assertF64(t, backend.Sub(a, b), []float64{-4, -4, -4, -4})
	})
	t.Run("Mul", func(t *testing.T) {
		assertF64(t, backend.Mul(a, b), []float64{5, 12, 21, 32})
	})
	t.Run("Div", func(t *testing.T) {
		assertF64(t, backend.Div(b, a), []float64{5, 3, 7.0 / 3.0, 2})
	})
}

func TestArithmeticBroadcast(t *testing.T) {
	backend := New()

	t.Run("RowAgainstMatrix", func(t *testing.T) {
		a := rawF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		b := rawF64(t, []float64{10, 20, 30}, tensor.Shape{1, 3})
		assertF64(t, backend.Add(a, b), []float64{11, 22, 33, 14, 25, 36})
	})

	t.Run("ColumnAgainstMatrix", func(t *testing.T) {
		a := rawF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
		b := rawF64(t, []float64{10, 100}, tensor.Shape{2, 1})
		assertF64(t, backend.Mul(a, b), []float64{10, 20, 30, 400, 500, 600})
	})

	t.Run("IncompatiblePanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for incompatible shapes")
			}
		}()
		a := rawF64(t, []float64{1, 2, 3}, tensor.Shape{3})
		b := rawF64(t, []float64{1, 2}, tensor.Shape{2})
		backend.Add(a, b)
	})
}

func TestDivByZeroIsIEEE(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, -1, 0}, tensor.Shape{3})
	b := rawF64(t, []float64{0, 0, 0}, tensor.Shape{3})

	got := backend.Div(a, b).AsFloat64()
	if !math.IsInf(got[0], 1) {
		t.Errorf("1/0: expected +Inf, got %v", got[0])
	}
	if !math.IsInf(got[1], -1) {
		t.Errorf("-1/0: expected -Inf, got %v", got[1])
	}
	if !math.IsNaN(got[2]) {
		t.Errorf("0/0: expected NaN, got %v", got[2])
	}
}

func TestScalarOps(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3}, tensor.Shape{3})

	assertF64(t, backend.AddScalar(a, 1.5), []float64{2.5, 3.5, 4.5})
	assertF64(t, backend.SubScalar(a, 1.0), []float64{0, 1, 2})
	assertF64(t, backend.MulScalar(a, 2.0), []float64{2, 4, 6})
	assertF64(t, backend.DivScalar(a, 2.0), []float64{0.5, 1, 1.5})
}

func TestSqrt(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{4, 9, 0.25}, tensor.Shape{3})
	assertF64(t, backend.Sqrt(a), []float64{2, 3, 0.5})
}

func TestSqrtNegativeYieldsNaN(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{-1}, tensor.Shape{1})
	got := backend.Sqrt(a).AsFloat64()
	if !math.IsNaN(got[0]) {
		t.Errorf("sqrt(-1): expected NaN, got %v", got[0])
	}
}

func TestComparisons(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawF64(t, []float64{2, 2, 2}, tensor.Shape{3})

	tests := []struct {
		name string
		got  *tensor.RawTensor
		want []bool
	}{
		{"Greater", backend.Greater(a, b), []bool{false, false, true}},
		{"Lower", backend.Lower(a, b), []bool{true, false, false}},
		{"GreaterEqual", backend.GreaterEqual(a, b), []bool{false, true, true}},
		{"LowerEqual", backend.LowerEqual(a, b), []bool{true, true, false}},
		{"Equal", backend.Equal(a, b), []bool{false, true, false}},
		{"NotEqual", backend.NotEqual(a, b), []bool{true, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.DType() != tensor.Bool {
				t.Fatalf("expected bool result, got %s", tt.got.DType())
			}
			got := tt.got.AsBool()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("element %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
