package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("empty frame should not report any action")
	}

	f.Set(ActionJump)
	f.Set(ActionDash)
	if !f.Has(ActionJump) || !f.Has(ActionDash) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestNewIntent(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Vec2
	}{
		{"zero stays zero", 0, 0, V(0, 0)},
		{"cardinal", 1, 0, V(1, 0)},
		{"axis magnitude ignored", 0, -3, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := NewIntent(tc.dx, tc.dy)
			if in.Move != tc.want {
				t.Errorf("NewIntent(%v, %v).Move = %v, expected %v", tc.dx, tc.dy, in.Move, tc.want)
			}
		})
	}

	diag := NewIntent(1, 1, ActionJump)
	if l := diag.Move.Len(); l < 0.999999 || l > 1.000001 {
		t.Errorf("diagonal intent length = %v, expected 1", l)
	}
	if !diag.Has(ActionJump) {
		t.Error("NewIntent should carry the given actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleHitstop.String() != "ToggleHitstop" {
		t.Errorf("String() = %q", ActionToggleHitstop.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown actions should stringify as Unknown")
	}
}
