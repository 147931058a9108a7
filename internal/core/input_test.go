package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Type('A')
	f.Set(ActionErase)
	f.Type('B')
	f.Set(ActionSubmit)

	events := f.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[0].Rune != 'A' || events[1].Action != ActionErase || events[2].Rune != 'B' || events[3].Action != ActionSubmit {
		t.Errorf("events out of order: %+v", events)
	}
	if !f.Has(ActionSubmit) || f.Has(ActionPlay) {
		t.Error("Has() does not reflect set actions")
	}
	if string(f.Runes) != "AB" {
		t.Errorf("Runes = %q, expected AB", string(f.Runes))
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Type('x')
	f.Set(ActionRestart)
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if f.Has(ActionRestart) {
		t.Error("actions should be cleared")
	}
	if len(f.Runes) != 0 {
		t.Error("runes should be cleared")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSubmit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionSubmit)
	if !f.Has(ActionSubmit) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionOperatorNew.String() != "OperatorNew" {
		t.Errorf("unexpected name %q", ActionOperatorNew.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should be named Unknown")
	}
}

func TestTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if got := cfg.Ticks(3); got != 180 {
		t.Errorf("Ticks(3) = %d, expected 180", got)
	}
	if got := (RuntimeConfig{}).Ticks(0); got != 1 {
		t.Errorf("Ticks(0) = %d, expected 1", got)
	}
}
