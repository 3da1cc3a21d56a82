package utils

import "testing"

func TestInputStatePoint(t *testing.T) {
	x, y := InputState{X: 12, Y: -3}.Point()
	if x != 12 || y != -3 {
		t.Errorf("Point() = (%v, %v), want (12, -3)", x, y)
	}
}

func TestConsumedPressHiddenForSameTick(t *testing.T) {
	t.Cleanup(func() { consumedTick = -1 })

	press := InputState{JustPressed: true, X: 700, Y: 20}
	if !withoutConsumed(press, 5).JustPressed {
		t.Fatal("press should be visible before it is consumed")
	}

	consumedTick = 5
	got := withoutConsumed(press, 5)
	if got.JustPressed {
		t.Error("consumed press should not reach later handlers in the same tick")
	}
	if got.X != 700 || got.Y != 20 {
		t.Errorf("pointer position lost: (%d, %d)", got.X, got.Y)
	}

	if !withoutConsumed(press, 6).JustPressed {
		t.Error("a press on the next tick should be visible again")
	}
}
