package components

import "unicode"

// TextInputComponent 文本输入框组件
// 用于任务控制台的通行密码输入
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本

	// 输入框尺寸
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// Masked 为 true 时以圆点显示内容（密码输入）
	Masked bool

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）
}

// Clear 清空文本并把光标移到开头
func (c *TextInputComponent) Clear() {
	c.Text = ""
	c.CursorPosition = 0
}

// DisplayText 返回应当绘制的文本（遮罩模式下为圆点）
func (c *TextInputComponent) DisplayText() string {
	if !c.Masked {
		return c.Text
	}
	n := len([]rune(c.Text))
	out := make([]rune, n)
	for i := range out {
		out[i] = '•'
	}
	return string(out)
}

// Insert 在光标处插入可打印字符，控制字符被丢弃
// 超过 MaxLength 时整段拒绝并返回 false
func (c *TextInputComponent) Insert(str string) bool {
	filtered := make([]rune, 0, len(str))
	for _, r := range str {
		if unicode.IsPrint(r) {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return false
	}
	runes := []rune(c.Text)
	if c.MaxLength > 0 && len(runes)+len(filtered) > c.MaxLength {
		return false
	}
	at := c.clampCursor(len(runes))
	out := make([]rune, 0, len(runes)+len(filtered))
	out = append(out, runes[:at]...)
	out = append(out, filtered...)
	out = append(out, runes[at:]...)
	c.Text = string(out)
	c.CursorPosition = at + len(filtered)
	return true
}

// Backspace 删除光标前一个字符
func (c *TextInputComponent) Backspace() {
	runes := []rune(c.Text)
	at := c.clampCursor(len(runes))
	if at == 0 {
		return
	}
	c.Text = string(append(runes[:at-1:at-1], runes[at:]...))
	c.CursorPosition = at - 1
}

// DeleteForward 删除光标后一个字符
func (c *TextInputComponent) DeleteForward() {
	runes := []rune(c.Text)
	at := c.clampCursor(len(runes))
	if at >= len(runes) {
		return
	}
	c.Text = string(append(runes[:at:at], runes[at+1:]...))
}

// MoveCursor 按字符移动光标，结果限制在 [0, len]
func (c *TextInputComponent) MoveCursor(delta int) {
	c.CursorPosition += delta
	c.clampCursor(len([]rune(c.Text)))
}

func (c *TextInputComponent) clampCursor(n int) int {
	if c.CursorPosition < 0 {
		c.CursorPosition = 0
	}
	if c.CursorPosition > n {
		c.CursorPosition = n
	}
	return c.CursorPosition
}
