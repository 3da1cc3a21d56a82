package components

// ButtonStyle 定义按钮的配色
type ButtonStyle int

const (
	// ButtonPrimary 青色描边按钮（继续、开始任务）
	ButtonPrimary ButtonStyle = iota
	// ButtonAccent 粉色实心按钮（Yes）
	ButtonAccent
	// ButtonGhost 半透明按钮（No、跳过、音乐开关）
	ButtonGhost
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：位置、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，除命中检测外不包含逻辑
//   - 位置以左上角和尺寸表示，布局变化时由所在场景更新
//   - 支持点击回调
type ButtonComponent struct {
	// X, Y 左上角屏幕坐标
	X, Y float64
	// Width, Height 按钮尺寸（像素）
	Width, Height float64

	// Label 按钮上显示的文字
	Label string
	// Style 配色
	Style ButtonStyle

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Hidden 为 true 时既不绘制也不响应
	Hidden bool

	// OnClick 点击回调函数
	OnClick func()
	// OnHover 指针进入按钮时调用（告白页 No 按钮躲避），可为 nil
	OnHover func()
}

// Contains 检测点是否在按钮范围内
func (b *ButtonComponent) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// MoveTo 移动按钮左上角
func (b *ButtonComponent) MoveTo(x, y float64) {
	b.X, b.Y = x, y
}
