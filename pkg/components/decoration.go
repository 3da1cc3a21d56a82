package components

// DecorationKind 装饰元素类型
type DecorationKind int

const (
	// DecorationStar 背景闪烁星星（一次性批量生成，不过期）
	DecorationStar DecorationKind = iota
	// DecorationHeart 从底部升起的漂浮爱心
	DecorationHeart
	// DecorationShootingStar 划过屏幕上半部分的流星
	DecorationShootingStar
)

// String 返回装饰类型名称（用于日志）
func (k DecorationKind) String() string {
	switch k {
	case DecorationStar:
		return "star"
	case DecorationHeart:
		return "heart"
	case DecorationShootingStar:
		return "shooting-star"
	default:
		return "unknown"
	}
}

// DecorationComponent 装饰元素的视觉属性
//
// 注意：漂浮爱心的 AnimationDuration（10~20秒）与其 15 秒的生命周期
// 相互独立，动画较慢的爱心会在升到顶部前被移除，这是原样保留的行为。
type DecorationComponent struct {
	Kind DecorationKind

	Size float64 // 像素尺寸

	// 动画参数（秒）
	AnimationDuration float64 // 一次完整动画的时长
	AnimationDelay    float64 // 动画开始前的延迟（星星闪烁错相）
	Age               float64 // 已经过的时间

	// 相对于视口的比例坐标（0~1），视口尺寸变化时重新换算
	RelX float64
	RelY float64
}

// Progress 返回当前动画周期内的进度 [0,1)
// 延迟期内返回 0
func (d *DecorationComponent) Progress() float64 {
	if d.AnimationDuration <= 0 {
		return 0
	}
	t := d.Age - d.AnimationDelay
	if t < 0 {
		return 0
	}
	cycles := t / d.AnimationDuration
	return cycles - float64(int(cycles))
}

// Elapsed 返回首个动画周期的完成比例 [0,1]，不循环
// 漂浮爱心和流星只播放一次
func (d *DecorationComponent) Elapsed() float64 {
	if d.AnimationDuration <= 0 {
		return 1
	}
	t := (d.Age - d.AnimationDelay) / d.AnimationDuration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
