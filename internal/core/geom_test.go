package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
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
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestVecNormalized(t *testing.T) {
	v := Vec{X: 3, Y: 4}.Normalized()
	if math.Abs(v.Len()-1) > 1e-9 {
		t.Errorf("Normalized().Len() = %f, expected 1", v.Len())
	}

	zero := Vec{}.Normalized()
	if zero != (Vec{}) {
		t.Errorf("Normalized() of zero vector = %v, expected zero", zero)
	}
}

func TestVecClampTo(t *testing.T) {
	r := NewRect(1, 1, 10, 5)

	tests := []struct {
		in, expected Vec
	}{
		{Vec{5, 3}, Vec{5, 3}},
		{Vec{-4, 3}, Vec{1, 3}},
		{Vec{40, 40}, Vec{10, 5}},
	}

	for _, tc := range tests {
		if got := tc.in.ClampTo(r); got != tc.expected {
			t.Errorf("ClampTo(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestInputDirection(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRight)

	d := f.Direction()
	if d.X <= 0 || d.Y >= 0 {
		t.Errorf("Direction() = %v, expected up-right", d)
	}
	if math.Abs(d.Len()-1) > 1e-9 {
		t.Errorf("Direction().Len() = %f, expected 1", d.Len())
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionUp; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v, expected %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Error("ParseAction(\"fly\") should fail")
	}
}
