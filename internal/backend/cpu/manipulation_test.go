package cpu

import (
	"testing"

	"github.com/flowspline-ml/flowspline/internal/tensor"
)

func TestTranspose2D(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := backend.Transpose(a)
	if !got.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("expected shape [3 2], got %v", got.Shape())
	}
	assertF64(t, got, []float64{1, 4, 2, 5, 3, 6})
}

func TestTransposeExplicitAxes(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})

	got := backend.Transpose(a, 1, 0, 2)
	if !got.Shape().Equal(tensor.Shape{2, 2, 2}) {
		t.Fatalf("unexpected shape %v", got.Shape())
	}
	assertF64(t, got, []float64{1, 2, 5, 6, 3, 4, 7, 8})
}

func TestMovedim(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	t.Run("ToLast", func(t *testing.T) {
		got := backend.Movedim(a, 0, -1)
		if !got.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("expected shape [3 2], got %v", got.Shape())
		}
		assertF64(t, got, []float64{1, 4, 2, 5, 3, 6})
	})

	t.Run("Identity", func(t *testing.T) {
		got := backend.Movedim(a, 1, 1)
		assertF64(t, got, []float64{1, 2, 3, 4, 5, 6})
	})

	t.Run("RoundTrip", func(t *testing.T) {
		got := backend.Movedim(backend.Movedim(a, 0, 1), 1, 0)
		assertF64(t, got, []float64{1, 2, 3, 4, 5, 6})
	})
}

func TestUnsqueezeSqueeze(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3}, tensor.Shape{3})

	up := backend.Unsqueeze(a, 0)
	if !up.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("expected shape [1 3], got %v", up.Shape())
	}

	down := backend.Squeeze(up, 0)
	if !down.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("expected shape [3], got %v", down.Shape())
	}

	t.Run("NegativeDim", func(t *testing.T) {
		up := backend.Unsqueeze(a, -1)
		if !up.Shape().Equal(tensor.Shape{3, 1}) {
			t.Fatalf("expected shape [3 1], got %v", up.Shape())
		}
	})

	t.Run("SqueezeNonUnitPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		backend.Squeeze(a, 0)
	})
}

func TestCat(t *testing.T) {
	backend := New()

	t.Run("LastDim", func(t *testing.T) {
		a := rawF64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
		b := rawF64(t, []float64{5, 6}, tensor.Shape{2, 1})
		got := backend.Cat([]*tensor.RawTensor{a, b}, -1)
		if !got.Shape().Equal(tensor.Shape{2, 3}) {
			t.Fatalf("expected shape [2 3], got %v", got.Shape())
		}
		assertF64(t, got, []float64{1, 2, 5, 3, 4, 6})
	})

	t.Run("FirstDim", func(t *testing.T) {
		a := rawF64(t, []float64{1, 2}, tensor.Shape{1, 2})
		b := rawF64(t, []float64{3, 4, 5, 6}, tensor.Shape{2, 2})
		got := backend.Cat([]*tensor.RawTensor{a, b}, 0)
		if !got.Shape().Equal(tensor.Shape{3, 2}) {
			t.Fatalf("expected shape [3 2], got %v", got.Shape())
		}
		assertF64(t, got, []float64{1, 2, 3, 4, 5, 6})
	})

	t.Run("ShapeMismatchPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		a := rawF64(t, []float64{1, 2}, tensor.Shape{1, 2})
		b := rawF64(t, []float64{3, 4, 5}, tensor.Shape{1, 3})
		backend.Cat([]*tensor.RawTensor{a, b}, 0)
	})
}

func TestFlip(t *testing.T) {
	backend := New()
	a := rawF64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	t.Run("LastDim", func(t *testing.T) {
		assertF64(t, backend.Flip(a, -1), []float64{3, 2, 1, 6, 5, 4})
	})

	t.Run("FirstDim", func(t *testing.T) {
		assertF64(t, backend.Flip(a, 0), []float64{4, 5, 6, 1, 2, 3})
	})

	t.Run("Involution", func(t *testing.T) {
		assertF64(t, backend.Flip(backend.Flip(a, 1), 1), []float64{1, 2, 3, 4, 5, 6})
	})
}

func TestSort(t *testing.T) {
	backend := New()

	t.Run("LastDim", func(t *testing.T) {
		a := rawF64(t, []float64{3, 1, 2, 6, 5, 4}, tensor.Shape{2, 3})
		assertF64(t, backend.Sort(a, -1), []float64{1, 2, 3, 4, 5, 6})
	})

	t.Run("FirstDim", func(t *testing.T) {
		a := rawF64(t, []float64{4, 1, 2, 3}, tensor.Shape{2, 2})
		assertF64(t, backend.Sort(a, 0), []float64{2, 1, 4, 3})
	})
}
