package core

import "testing"

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewAABB(0, 0, 20, 20),
			b:        NewAABB(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestCenteredAt(t *testing.T) {
	tests := []struct {
		name       string
		center     Vec2
		w, h       float64
		wantX      float64
		wantY      float64
		wantCenter Vec2
	}{
		{"even size", V(100, 50), 28, 28, 86, 36, V(100, 50)},
		{"odd size", V(100, 50), 27, 27, 87, 37, V(100, 50)},
		{"rounds position", V(100.4, 49.6), 28, 28, 86, 36, V(100, 50)},
		{"rounds half away from zero", V(100.5, 50), 10, 10, 96, 45, V(101, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := CenteredAt(tc.center, tc.w, tc.h)
			if r.X != tc.wantX || r.Y != tc.wantY {
				t.Errorf("CenteredAt() corner = (%v, %v), expected (%v, %v)", r.X, r.Y, tc.wantX, tc.wantY)
			}
			if r.Center() != tc.wantCenter {
				t.Errorf("Center() = %v, expected %v", r.Center(), tc.wantCenter)
			}
		})
	}
}

func TestAABBContains(t *testing.T) {
	r := NewAABB(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"top-left corner", V(10, 10), true},
		{"bottom-right edge (exclusive)", V(30, 25), false},
		{"outside left", V(5, 15), false},
		{"outside bottom", V(15, 30), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if !r.ContainsBox(NewAABB(10, 10, 20, 15)) {
		t.Error("ContainsBox should accept an identical box")
	}
	if r.ContainsBox(NewAABB(9, 10, 5, 5)) {
		t.Error("ContainsBox should reject a box crossing the left edge")
	}
}

func TestClampInside(t *testing.T) {
	arena := NewAABB(0, 0, 100, 50)

	tests := []struct {
		name     string
		box      AABB
		expected AABB
	}{
		{"already inside", NewAABB(10, 10, 10, 10), NewAABB(10, 10, 10, 10)},
		{"past left", NewAABB(-5, 10, 10, 10), NewAABB(0, 10, 10, 10)},
		{"past right and bottom", NewAABB(95, 45, 10, 10), NewAABB(90, 40, 10, 10)},
		{"wider than arena", NewAABB(-30, 10, 120, 10), NewAABB(-10, 10, 120, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.box.ClampInside(arena)
			if got != tc.expected {
				t.Errorf("ClampInside() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if n.X != 0.6 || n.Y != 0.8 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}
	if !V(0, 0).Normalize().IsZero() {
		t.Error("Normalize() of zero vector should stay zero")
	}
	if l := V(10, 0).WithLen(4).Len(); l != 4 {
		t.Errorf("WithLen(4).Len() = %v, expected 4", l)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}

	if ClampF(-0.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clip to [0, 1]")
	}
}
