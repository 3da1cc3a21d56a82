package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestRenderPCMLength(t *testing.T) {
	rate := beep.SampleRate(SampleRate)
	s := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	pcm := RenderPCM(s)

	// 每个样本 2 声道 * 2 字节
	want := rate.N(100*time.Millisecond) * 4
	if len(pcm) != want {
		t.Errorf("len(pcm) = %d, want %d", len(pcm), want)
	}
}

func TestRenderPCMNil(t *testing.T) {
	if pcm := RenderPCM(nil); pcm != nil {
		t.Errorf("RenderPCM(nil) = %d bytes, want nil", len(pcm))
	}
}

func TestEffectsAreFinite(t *testing.T) {
	effects := []Effect{EffectGranted, EffectDenied, EffectLaunch, EffectCatch}
	for _, e := range effects {
		pcm := RenderPCM(NewEffect(e, 0.8))
		if len(pcm) == 0 {
			t.Errorf("effect %d rendered no samples", e)
		}
		if len(pcm) > 4*SampleRate {
			t.Errorf("effect %d longer than one second (%d bytes)", e, len(pcm))
		}
	}
}

func TestUnknownEffect(t *testing.T) {
	if s := NewEffect(Effect(42), 1); s != nil {
		t.Error("unknown effect should return nil")
	}
}

func TestAmbientLoopDuration(t *testing.T) {
	pcm := RenderPCM(NewAmbientLoop(0.5))

	// 4 个和弦 * 2 遍 * 4 个音符 * 375ms = 12s
	rate := beep.SampleRate(SampleRate)
	want := rate.N(12*time.Second) * 4
	tolerance := rate.N(50*time.Millisecond) * 4
	if diff := len(pcm) - want; diff > tolerance || diff < -tolerance {
		t.Errorf("ambient loop = %d bytes, want about %d", len(pcm), want)
	}
}

func TestToInt16Clamps(t *testing.T) {
	if got := toInt16(2); got != 32767 {
		t.Errorf("toInt16(2) = %d", got)
	}
	if got := toInt16(-2); got != -32767 {
		t.Errorf("toInt16(-2) = %d", got)
	}
	if got := toInt16(0); got != 0 {
		t.Errorf("toInt16(0) = %d", got)
	}
}
