package game

import "testing"

func TestPasscodeGateVerify(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		input  string
		want   Verdict
	}{
		{"exact match", "MOON2024", "MOON2024", Granted},
		{"wrong code", "MOON2024", "SUN2024", Denied},
		{"case differs", "MOON2024", "moon2024", Denied},
		{"trailing space", "MOON2024", "MOON2024 ", Denied},
		{"empty input", "MOON2024", "", Denied},
		{"no secret configured", "", "", Denied},
		{"no secret, any input", "", "MOON2024", Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewPasscodeGate(tt.secret)
			if got := gate.Verify(tt.input); got != tt.want {
				t.Errorf("Verify(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestPasscodeGateNil(t *testing.T) {
	var gate *PasscodeGate
	if gate.Verify("anything") != Denied {
		t.Error("nil gate should deny")
	}
	if gate.Configured() {
		t.Error("nil gate should not be configured")
	}
}

func TestPasscodeGateUnlimitedRetries(t *testing.T) {
	gate := NewPasscodeGate("abc")
	for i := 0; i < 100; i++ {
		if gate.Verify("wrong") != Denied {
			t.Fatalf("attempt %d: expected Denied", i)
		}
	}
	if gate.Verify("abc") != Granted {
		t.Error("correct code should still be granted after many denials")
	}
}
