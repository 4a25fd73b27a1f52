package core

import (
	"reflect"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(ActionJump) should be true after Set")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameGameplayOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSpray)
	f.Set(ActionConfirm) // not a gameplay action
	f.Set(ActionLeft)
	f.Set(ActionStop)
	f.Set(ActionJump)

	got := f.Gameplay()
	want := []Action{ActionStop, ActionLeft, ActionJump, ActionSpray}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Gameplay() = %v, expected %v", got, want)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionJump, "Jump"},
		{ActionSpray, "Spray"},
		{ActionClear, "Clear"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionPause; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = (%v, %v), expected (%v, true)", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("Teleport"); ok {
		t.Error("ParseAction(Teleport) ok = true, expected false")
	}
}
