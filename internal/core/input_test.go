package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	f.Set(ActionLaunch)
	if !f.Has(ActionLeft) || !f.Has(ActionLaunch) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}
}

func TestInputFramePointerLifecycle(t *testing.T) {
	f := NewInputFrame()
	f.SetPointer(12, 4)
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if f.Pointer.Valid || f.Has(ActionPause) {
		t.Error("Clear should drop pointer and actions")
	}
	if !clone.Pointer.Valid || clone.Pointer.X != 12 || clone.Pointer.Y != 4 {
		t.Errorf("clone pointer = %+v", clone.Pointer)
	}
	if !clone.Has(ActionPause) {
		t.Error("clone should keep actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionPrimary.String() != "Primary" {
		t.Errorf("ActionPrimary.String() = %q", ActionPrimary.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
