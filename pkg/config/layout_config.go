package config

import "image/color"

// 布局配置常量
// 本文件定义了窗口尺寸、配色和各页面 UI 元素的尺寸参数
// 坐标均为逻辑像素，窗口大小变化时按视口尺寸重新计算位置

// Window Configuration (窗口配置)
const (
	// WindowWidth 默认窗口宽度
	WindowWidth = 1024
	// WindowHeight 默认窗口高度
	WindowHeight = 768

	// WideViewportThreshold 视口宽度超过该值时生成更多星星
	WideViewportThreshold = 768.0
)

// Palette (配色)
var (
	// ColorAccentCyan 成功提示、终端文字、星座连线
	ColorAccentCyan = color.RGBA{R: 0x64, G: 0xff, B: 0xda, A: 0xff}
	// ColorNebulaPink 错误提示、爱心、Yes 按钮
	ColorNebulaPink = color.RGBA{R: 0xe9, G: 0x5a, B: 0xa3, A: 0xff}
	// ColorMoonCream 正文文字
	ColorMoonCream = color.RGBA{R: 0xf4, G: 0xf1, B: 0xde, A: 0xff}
	// ColorPanel 面板底色（半透明）
	ColorPanel = color.RGBA{R: 0x10, G: 0x16, B: 0x38, A: 0xcc}
	// ColorPanelBorder 面板边框
	ColorPanelBorder = color.RGBA{R: 0x64, G: 0xff, B: 0xda, A: 0x66}
	// ColorMuted 次要文字
	ColorMuted = color.RGBA{R: 0x8a, G: 0x92, B: 0xb2, A: 0xff}
	// ColorOverlay 弹窗遮罩
	ColorOverlay = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xaa}
)

// GradientStops 背景渐变的三个色标（顶部 / 中部 / 底部）
type GradientStops [3]color.RGBA

var (
	// DefaultGradient 默认深空背景 #0a0e27 -> #16213e -> #1a0b2e
	DefaultGradient = GradientStops{
		{R: 0x0a, G: 0x0e, B: 0x27, A: 0xff},
		{R: 0x16, G: 0x21, B: 0x3e, A: 0xff},
		{R: 0x1a, G: 0x0b, B: 0x2e, A: 0xff},
	}
	// CelebrationGradient 接受告白后的背景 #1a1a3e -> #2d1b4e -> #1a0b2e
	CelebrationGradient = GradientStops{
		{R: 0x1a, G: 0x1a, B: 0x3e, A: 0xff},
		{R: 0x2d, G: 0x1b, B: 0x4e, A: 0xff},
		{R: 0x1a, G: 0x0b, B: 0x2e, A: 0xff},
	}
)

// Typography (字号)
const (
	FontSizeTitle   = 44.0
	FontSizeHeading = 30.0
	FontSizeBody    = 20.0
	FontSizeSmall   = 15.0
	FontSizeMono    = 18.0

	// LineSpacing 行距倍数
	LineSpacing = 1.5
)

// Buttons (按钮)
const (
	ButtonWidth  = 200.0
	ButtonHeight = 52.0

	// MusicButtonSize 右上角音乐开关按钮边长
	MusicButtonSize = 48.0
	// MusicButtonMargin 音乐开关距窗口边缘的距离
	MusicButtonMargin = 20.0

	// NoButtonWidth / NoButtonHeight 告白页 No 按钮尺寸
	NoButtonWidth  = 120.0
	NoButtonHeight = 50.0
	// NoButtonDodgeMargin No 按钮躲避时与窗口右下边缘保持的距离
	NoButtonDodgeMargin = 20.0
)

// Gate page (任务控制台)
const (
	GatePanelWidth  = 520.0
	GatePanelHeight = 340.0
	InputWidth      = 320.0
	InputHeight     = 48.0
	// InputMaxLength 密码输入最大长度
	InputMaxLength = 32

	// GrantedDelaySeconds 密码正确后跳转发射页的延迟
	GrantedDelaySeconds = 1.5
	// ShakeDurationSeconds 密码错误时面板抖动时长
	ShakeDurationSeconds = 0.5
	// ShakeAmplitude 抖动幅度（像素）
	ShakeAmplitude = 10.0
	// GlowRadius 密码正确时面板外发光半径
	GlowRadius = 40.0
)

// Fade-in text (淡入文字)
const (
	// FadeInDurationSeconds 单行淡入上移动画时长
	FadeInDurationSeconds = 1.0
	// FadeInRise 淡入时上移的距离（像素）
	FadeInRise = 30.0
)

// Constellation page (星座页)
const (
	ConstellationWidth  = 350.0
	ConstellationHeight = 250.0
	// ConstellationStarRadius 星座标记半径
	ConstellationStarRadius = 5.0
	// ConstellationLineWidth 连线宽度
	ConstellationLineWidth = 2.0
)

// Memory gallery (回忆星系)
const (
	PlanetRadius      = 56.0
	PlanetSpacing     = 240.0
	MemoryModalWidth  = 560.0
	MemoryModalHeight = 320.0
)

// Moon page (月球页)
const (
	MoonRadius       = 90.0
	SecretStarRadius = 14.0
	// SecretPulseSeconds 秘密星星脉冲周期
	SecretPulseSeconds = 2.0
)

// Backdrop (背景装饰)
const (
	StarCountWide   = 100
	StarCountNarrow = 50
	// HeartSpawnSeconds 每隔多少秒生成一颗漂浮爱心
	HeartSpawnSeconds = 3.0
	// HeartLifetimeSeconds 爱心生成后多少秒移除
	HeartLifetimeSeconds = 15.0
	// ShootingStarSpawnSeconds 每隔多少秒生成一颗流星
	ShootingStarSpawnSeconds = 4.0
	// ShootingStarLifetimeSeconds 流星生成后多少秒移除
	ShootingStarLifetimeSeconds = 3.0
	// HeartSize 漂浮爱心大小
	HeartSize = 20.0
	// ShootingStarLength 流星尾迹长度
	ShootingStarLength = 120.0
)
