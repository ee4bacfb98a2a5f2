package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("New frame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Frame should have ActionLeft after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Frame should not have ActionRight")
	}

	f.Clear()
	if !f.Empty() || f.Has(ActionLeft) {
		t.Error("Frame should be empty after Clear")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q, expected Right", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
