package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectCenteredIn(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.CenteredIn(6, 4)

	if inner.W != 6 || inner.H != 4 {
		t.Errorf("CenteredIn size = %dx%d, expected 6x4", inner.W, inner.H)
	}
	if inner.X != 7 || inner.Y != 3 {
		t.Errorf("CenteredIn origin = (%d, %d), expected (7, 3)", inner.X, inner.Y)
	}
}
