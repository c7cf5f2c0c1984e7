package core

import "testing"

func TestInputFrameKeepsTurnOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(f.Actions) != len(want) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, want)
	}
	for i := range want {
		if f.Actions[i] != want[i] {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], want[i])
		}
	}
}

func TestInputFrameDedupesCommands(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Set(ActionPause)
	f.Set(ActionNone)

	if len(f.Actions) != 1 {
		t.Errorf("expected a single pause, got %v", f.Actions)
	}
	if !f.Has(ActionPause) || f.Has(ActionBurst) {
		t.Error("Has reports wrong membership")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionBurst)
	clone := f.Clone()

	f.Clear()
	if f.Has(ActionBurst) {
		t.Error("Clear should drop actions")
	}
	if !clone.Has(ActionBurst) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionBurst, 0, false},
		{ActionPause, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			dir, ok := tc.action.Direction()
			if ok != tc.ok || (ok && dir != tc.dir) {
				t.Errorf("Direction() = %v, %v; expected %v, %v", dir, ok, tc.dir, tc.ok)
			}
		})
	}
}
