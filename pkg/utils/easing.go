package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// 超出范围的 t 会先被截断到 [0, 1]。

// Clamp01 将 t 截断到 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（淡入上移动画使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FadeInUp 淡入上移动画在进度 t 时的透明度和竖直偏移
// 偏移从 rise 缓动到 0
func FadeInUp(t, rise float64) (alpha, offsetY float64) {
	e := EaseOutCubic(t)
	return e, rise * (1 - e)
}

// Twinkle 闪烁动画：周期内透明度在 [min, 1] 之间往返
// phase 为周期进度 [0, 1)
func Twinkle(phase, min float64) float64 {
	wave := 0.5 - 0.5*math.Cos(2*math.Pi*phase) // 0 -> 1 -> 0
	return min + (1-min)*wave
}

// Pulse 脉冲缩放：周期内从 1 放大到 1+amount 再回到 1
func Pulse(phase, amount float64) float64 {
	return 1 + amount*math.Sin(math.Pi*Clamp01(phase))
}

// Shake 抖动偏移
// 在 t ∈ [0, 1] 内左右摆动若干次，幅度线性衰减
func Shake(t, amplitude float64) float64 {
	t = Clamp01(t)
	if t >= 1 {
		return 0
	}
	const swings = 4
	return amplitude * (1 - t) * math.Sin(2*math.Pi*swings*t)
}
