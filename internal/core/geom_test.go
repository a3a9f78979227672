package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last column", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectFits(t *testing.T) {
	r := NewRect(0, 1, 80, 23)

	if !r.Fits(80, 23) {
		t.Error("80x23 should fit exactly")
	}
	if r.Fits(81, 23) {
		t.Error("81x23 should not fit")
	}
	if r.Fits(80, 24) {
		t.Error("80x24 should not fit")
	}
}

func TestRectCenterIn(t *testing.T) {
	r := NewRect(0, 1, 80, 23)
	c := r.CenterIn(40, 11)

	if c.X != 20 || c.Y != 7 {
		t.Errorf("CenterIn() origin = (%d, %d), expected (20, 7)", c.X, c.Y)
	}
	if c.W != 40 || c.H != 11 {
		t.Errorf("CenterIn() size = %dx%d, expected 40x11", c.W, c.H)
	}
}
