package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
		{"超出终点", 1.5, 1.0},
		{"小于起点", -0.5, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutCubic 测试三次方缓入缓出函数的对称性
func TestEaseInOutCubic(t *testing.T) {
	if v := EaseInOutCubic(0.5); math.Abs(v-0.5) > 0.001 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", v)
	}
	for _, x := range []float64{0.1, 0.25, 0.4} {
		a := EaseInOutCubic(x)
		b := EaseInOutCubic(1 - x)
		if math.Abs(a+b-1) > 0.001 {
			t.Errorf("EaseInOutCubic 不对称: f(%v)=%v, f(%v)=%v", x, a, 1-x, b)
		}
	}
}

// TestFadeInUp 测试淡入上移
func TestFadeInUp(t *testing.T) {
	alpha, offset := FadeInUp(0, 30)
	if alpha != 0 || offset != 30 {
		t.Errorf("FadeInUp(0) = %v, %v; 期望 0, 30", alpha, offset)
	}
	alpha, offset = FadeInUp(1, 30)
	if alpha != 1 || offset != 0 {
		t.Errorf("FadeInUp(1) = %v, %v; 期望 1, 0", alpha, offset)
	}
}

// TestTwinkleRange 测试闪烁透明度范围
func TestTwinkleRange(t *testing.T) {
	for i := 0; i <= 20; i++ {
		phase := float64(i) / 20
		v := Twinkle(phase, 0.3)
		if v < 0.3-1e-9 || v > 1+1e-9 {
			t.Fatalf("Twinkle(%v) = %v 超出 [0.3, 1]", phase, v)
		}
	}
	if v := Twinkle(0.5, 0.3); math.Abs(v-1) > 1e-9 {
		t.Errorf("Twinkle(0.5) = %v, 期望 1", v)
	}
}

// TestShakeSettles 测试抖动在结束时归零
func TestShakeSettles(t *testing.T) {
	if v := Shake(1, 10); v != 0 {
		t.Errorf("Shake(1) = %v, 期望 0", v)
	}
	if v := Shake(0.0625, 10); v <= 0 {
		t.Errorf("Shake(0.0625) = %v, 期望为正", v)
	}
	for i := 0; i <= 100; i++ {
		if v := Shake(float64(i)/100, 10); math.Abs(v) > 10 {
			t.Fatalf("Shake 超出幅度: %v", v)
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	if v := Lerp(10, 20, 0.25); v != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %v, 期望 12.5", v)
	}
}

// TestPulse 测试脉冲缩放
func TestPulse(t *testing.T) {
	if v := Pulse(0, 0.2); v != 1 {
		t.Errorf("Pulse(0) = %v, 期望 1", v)
	}
	if v := Pulse(0.5, 0.2); math.Abs(v-1.2) > 1e-9 {
		t.Errorf("Pulse(0.5) = %v, 期望 1.2", v)
	}
}
