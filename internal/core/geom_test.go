package core

import "testing"

func TestDirectionOppositeInvolutive(t *testing.T) {
	for _, d := range Directions {
		t.Run(d.String(), func(t *testing.T) {
			if d.Opposite() == d {
				t.Errorf("Opposite(%v) should differ from itself", d)
			}
			if d.Opposite().Opposite() != d {
				t.Errorf("Opposite(Opposite(%v)) = %v", d, d.Opposite().Opposite())
			}
			dx, dy := d.Delta()
			ox, oy := d.Opposite().Delta()
			if dx+ox != 0 || dy+oy != 0 {
				t.Errorf("deltas of %v and its opposite should cancel", d)
			}
		})
	}
}

func TestPointStep(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirUp, Pt(2, 1)},
		{DirDown, Pt(2, 3)},
		{DirLeft, Pt(1, 2)},
		{DirRight, Pt(3, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := Pt(2, 2).Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestPointChebyshev(t *testing.T) {
	tests := []struct {
		a, b     Point
		expected int
	}{
		{Pt(0, 0), Pt(0, 0), 0},
		{Pt(0, 0), Pt(2, 1), 2},
		{Pt(5, 5), Pt(2, 9), 4},
		{Pt(3, 3), Pt(4, 4), 1},
	}

	for _, tc := range tests {
		if got := tc.a.Chebyshev(tc.b); got != tc.expected {
			t.Errorf("%v.Chebyshev(%v) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestPointInBounds(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", Pt(0, 0), true},
		{"last cell", Pt(9, 9), true},
		{"right edge", Pt(10, 0), false},
		{"negative x", Pt(-1, 3), false},
		{"negative y", Pt(3, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.InBounds(10); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

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
		{"outside left", 5, 15, false},
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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
