package core

import (
	"math"
	"testing"
)

func TestCircleCollision(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"overlapping", V(0, 0), 10, V(5, 5), 10, true},
		{"separated horizontally", V(0, 0), 10, V(25, 0), 10, false},
		{"touching exactly", V(0, 0), 10, V(20, 0), 10, true},
		{"just apart", V(0, 0), 10, V(20.001, 0), 10, false},
		{"contained", V(100, 100), 50, V(110, 90), 2, true},
		{"diagonal 3-4-5 touching", V(0, 0), 2, V(3, 4), 3, true},
		{"zero radii same point", V(7, 7), 0, V(7, 7), 0, true},
		{"zero radii apart", V(7, 7), 0, V(7, 8), 0, false},
		{"different sizes", V(800, 450), 20, V(800, 500), 24, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleCollision(tc.a, tc.ra, tc.b, tc.rb)
			if result != tc.expected {
				t.Errorf("CircleCollision() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := CircleCollision(tc.b, tc.rb, tc.a, tc.ra)
			if resultReverse != result {
				t.Errorf("CircleCollision() not symmetric: %v vs %v", result, resultReverse)
			}
		})
	}
}

func TestCircleCollisionSymmetryGrid(t *testing.T) {
	radii := []float64{0.5, 6, 20, 52}
	for x := -60.0; x <= 60; x += 7.3 {
		for y := -60.0; y <= 60; y += 5.9 {
			for _, ra := range radii {
				for _, rb := range radii {
					a, b := V(x, y), V(-y/2, x/3)
					if CircleCollision(a, ra, b, rb) != CircleCollision(b, rb, a, ra) {
						t.Fatalf("asymmetric at a=%v ra=%v b=%v rb=%v", a, ra, b, rb)
					}
				}
			}
		}
	}
}

func TestVec2Normalize(t *testing.T) {
	u, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("Normalize of non-zero vector should succeed")
	}
	if math.Abs(u.X-0.6) > 1e-9 || math.Abs(u.Y-0.8) > 1e-9 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", u)
	}

	z, ok := Vec2{}.Normalize()
	if ok {
		t.Error("Normalize of zero vector should report !ok")
	}
	if !z.IsZero() {
		t.Errorf("Normalize of zero vector should return zero, got %v", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	r := V(1, 0).Rotate(90)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Y-1) > 1e-9 {
		t.Errorf("Rotate(90) = %v, expected (0, 1)", r)
	}
	if l := V(3, 4).Rotate(14).Len(); math.Abs(l-5) > 1e-9 {
		t.Errorf("Rotate should preserve length, got %f", l)
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
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	f.Up, f.Left = true, true
	if d := f.Direction(); d != V(-1, -1) {
		t.Errorf("Direction() = %v, expected (-1, -1)", d)
	}
	f.Down = true
	if d := f.Direction(); d != V(-1, 0) {
		t.Errorf("opposing keys should cancel, got %v", d)
	}
}

func TestBuyActions(t *testing.T) {
	for slot := 1; slot <= 9; slot++ {
		if got := BuyAction(slot).BuySlot(); got != slot {
			t.Errorf("BuyAction(%d).BuySlot() = %d", slot, got)
		}
	}
	if BuyAction(0) != ActionNone || BuyAction(10) != ActionNone {
		t.Error("out-of-range slots should map to ActionNone")
	}
	if ActionConfirm.BuySlot() != 0 {
		t.Error("non-purchase actions have no slot")
	}
}
