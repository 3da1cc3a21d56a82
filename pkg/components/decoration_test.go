package components

import (
	"math"
	"testing"
)

func TestDecorationProgress(t *testing.T) {
	tests := []struct {
		name string
		deco DecorationComponent
		want float64
	}{
		{"zero duration", DecorationComponent{AnimationDuration: 0, Age: 5}, 0},
		{"inside delay", DecorationComponent{AnimationDuration: 2, AnimationDelay: 1, Age: 0.5}, 0},
		{"half way", DecorationComponent{AnimationDuration: 2, Age: 1}, 0.5},
		{"after delay", DecorationComponent{AnimationDuration: 4, AnimationDelay: 1, Age: 2}, 0.25},
		{"wraps around", DecorationComponent{AnimationDuration: 2, Age: 5}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.deco.Progress()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecorationKindString(t *testing.T) {
	if DecorationHeart.String() != "heart" {
		t.Errorf("DecorationHeart.String() = %q", DecorationHeart.String())
	}
	if DecorationKind(99).String() != "unknown" {
		t.Errorf("unknown kind should stringify as unknown")
	}
}

func TestDecorationElapsedDoesNotWrap(t *testing.T) {
	d := DecorationComponent{AnimationDuration: 10}
	d.Age = 5
	if got := d.Elapsed(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Elapsed() = %v, want 0.5", got)
	}
	d.Age = 14
	if got := d.Elapsed(); got != 1 {
		t.Errorf("Elapsed() after the cycle = %v, want 1", got)
	}
}
