package tensor

import "testing"

// fakeBackend implements just enough of Backend for creation and accessor
// tests; operations that would reach a real backend are not exercised here.
type fakeBackend struct{ Backend }

func (fakeBackend) Device() Device { return CPU }

func TestFromSlice(t *testing.T) {
	b := fakeBackend{}

	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !x.Shape().Equal(Shape{2, 3}) {
		t.Errorf("expected shape [2 3], got %v", x.Shape())
	}
	if x.DType() != Float64 {
		t.Errorf("expected float64, got %s", x.DType())
	}
	if got := x.At(1, 2); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	b := fakeBackend{}
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}, b); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestCreation(t *testing.T) {
	b := fakeBackend{}

	t.Run("Zeros", func(t *testing.T) {
		x := Zeros[float32](Shape{2, 2}, b)
		for i, v := range x.Data() {
			if v != 0 {
				t.Errorf("element %d: expected 0, got %v", i, v)
			}
		}
	})

	t.Run("Ones", func(t *testing.T) {
		x := Ones[float64](Shape{3}, b)
		for i, v := range x.Data() {
			if v != 1 {
				t.Errorf("element %d: expected 1, got %v", i, v)
			}
		}
	})

	t.Run("Full", func(t *testing.T) {
		x := Full[int32](Shape{2}, 7, b)
		if x.At(0) != 7 || x.At(1) != 7 {
			t.Errorf("expected [7 7], got %v", x.Data())
		}
	})

	t.Run("Linspace", func(t *testing.T) {
		x := Linspace[float64](0, 1, 5, b)
		want := []float64{0, 0.25, 0.5, 0.75, 1}
		for i := range want {
			if x.Data()[i] != want[i] {
				t.Errorf("element %d: expected %v, got %v", i, want[i], x.Data()[i])
			}
		}
	})

	t.Run("Arange", func(t *testing.T) {
		x := Arange[float64](2, 6, b)
		want := []float64{2, 3, 4, 5}
		for i := range want {
			if x.Data()[i] != want[i] {
				t.Errorf("element %d: expected %v, got %v", i, want[i], x.Data()[i])
			}
		}
	})
}

func TestItem(t *testing.T) {
	b := fakeBackend{}
	x := Full[float64](Shape{1, 1}, 3.5, b)
	if got := x.Item(); got != 3.5 {
		t.Errorf("expected 3.5, got %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for multi-element Item")
		}
	}()
	Ones[float64](Shape{2}, b).Item()
}

func TestSetAt(t *testing.T) {
	b := fakeBackend{}
	x := Zeros[float64](Shape{2, 2}, b)
	x.Set(5, 1, 0)
	if got := x.At(1, 0); got != 5 {
		t.Errorf("expected 5, got %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := fakeBackend{}
	x := Ones[float64](Shape{2}, b)
	y := x.Clone()
	y.Set(9, 0)
	if x.At(0) != 1 {
		t.Errorf("clone mutation leaked into original: %v", x.Data())
	}
}
