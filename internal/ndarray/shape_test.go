package ndarray

import "testing"

func TestShapeOfRightAligns(t *testing.T) {
	tests := []struct {
		extents []int
		want    Shape
	}{
		{[]int{5}, Shape{1, 1, 1, 5}},
		{[]int{2, 3}, Shape{1, 1, 2, 3}},
		{[]int{2, 3, 4}, Shape{1, 2, 3, 4}},
		{[]int{2, 3, 4, 5}, Shape{2, 3, 4, 5}},
	}

	for _, tt := range tests {
		if got := ShapeOf(tt.extents...); got != tt.want {
			t.Errorf("ShapeOf(%v) = %v, want %v", tt.extents, got, tt.want)
		}
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{1, 1, 1, 5}, 5},
		{Shape{1, 1, 2, 3}, 6},
		{Shape{1, 2, 3, 4}, 24},
		{Shape{1, 1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestDenseStrides(t *testing.T) {
	tests := []struct {
		ndim  int
		shape Shape
		want  Strides
	}{
		{1, Shape{1, 1, 1, 5}, Strides{0, 0, 0, 1}},
		{2, Shape{1, 1, 2, 3}, Strides{0, 0, 3, 1}},
		{3, Shape{1, 2, 3, 4}, Strides{0, 12, 4, 1}},
		{4, Shape{2, 3, 4, 5}, Strides{60, 20, 5, 1}},
	}

	for _, tt := range tests {
		if got := DenseStrides(tt.ndim, tt.shape); got != tt.want {
			t.Errorf("DenseStrides(%d, %v) = %v, want %v", tt.ndim, tt.shape, got, tt.want)
		}
	}
}

func TestIsDense(t *testing.T) {
	shape := ShapeOf(2, 3)
	if !isDense(2, shape, Strides{0, 0, 3, 1}) {
		t.Error("row-major strides should be dense")
	}
	if isDense(2, shape, Strides{0, 0, 3, -1}) {
		t.Error("reversed axis should not be dense")
	}
	if isDense(2, shape, Strides{0, 0, 6, 2}) {
		t.Error("gapped strides should not be dense")
	}
	// extent-1 axes tolerate any stride
	if !isDense(2, ShapeOf(1, 4), Strides{0, 0, 9, 1}) {
		t.Error("stride of a size-1 axis must not affect density")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := ShapeOf(2, 3).validate(2); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{1, 1, 0, 3}).validate(2); err == nil {
		t.Error("zero extent accepted")
	}
	if err := (Shape{2, 1, 2, 3}).validate(2); err == nil {
		t.Error("non-1 leading slot accepted")
	}
	if err := ShapeOf(2).validate(5); err == nil {
		t.Error("rank above the cap accepted")
	}
}
