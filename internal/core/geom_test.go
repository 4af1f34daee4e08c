package core

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching horizontal edges",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 10, Y: 0, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "touching vertical edges",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 0, Y: 10, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "just apart",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 10.5, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        Rect{X: 0, Y: 0, W: 20, H: 20},
			b:        Rect{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "identical rects",
			a:        Square(400, 100, 10),
			b:        Square(400, 100, 10),
			expected: true,
		},
		{
			name:     "overlap on x only",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 5, Y: 30, W: 10, H: 10},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 30, 25, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance = %v, expected 5", d)
	}
	if d := Distance(400, 300, 400, 300); d != 0 {
		t.Errorf("Distance to self = %v, expected 0", d)
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{200, 1},
		{-0.5, -1},
		{0, 0},
	}

	for _, tc := range tests {
		if got := Sign(tc.val); got != tc.expected {
			t.Errorf("Sign(%v) = %v, expected %v", tc.val, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{795, 0.0, 790.0, 790.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
