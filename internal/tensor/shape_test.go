package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v: expected %d elements, got %d", tt.shape, tt.want, got)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("stride %d: expected %d, got %d", i, want[i], strides[i])
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("expected error for zero dimension")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestShapeNormalize(t *testing.T) {
	s := Shape{2, 3, 4}

	if got := s.Normalize(-1); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if got := s.Normalize(0); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := s.Normalize(-3); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range axis")
		}
	}()
	s.Normalize(3)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name           string
		a, b           Shape
		want           Shape
		needsBroadcast bool
		wantErr        bool
	}{
		{"Equal", Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false, false},
		{"RowVector", Shape{2, 3}, Shape{1, 3}, Shape{2, 3}, true, false},
		{"MissingDims", Shape{2, 3}, Shape{3}, Shape{2, 3}, true, false},
		{"ColumnRow", Shape{2, 1}, Shape{1, 3}, Shape{2, 3}, true, false},
		{"Incompatible", Shape{2, 3}, Shape{2, 4}, nil, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, nb, err := BroadcastShapes(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if nb != tt.needsBroadcast {
				t.Errorf("needsBroadcast: expected %v, got %v", tt.needsBroadcast, nb)
			}
		})
	}
}
