package utils

// Rect 轴对齐矩形（屏幕坐标）
type Rect struct {
	X, Y, W, H float64
}

// Contains 检查点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ContainsInt Contains 的整数坐标版本（ebiten 的指针坐标为 int）
func (r Rect) ContainsInt(x, y int) bool {
	return r.Contains(float64(x), float64(y))
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// CenteredRect 以 (cx, cy) 为中心创建矩形
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// InCircle 检查点是否在圆内
func InCircle(px, py, cx, cy, r float64) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}
