package components

// LifetimeComponent 短暂装饰元素（漂浮爱心、流星）的存活时间
// 背景星星不挂载此组件，因此永不过期
type LifetimeComponent struct {
	TTL     float64 // 存活上限(秒)
	Age     float64 // 已存活(秒)
	Expired bool
}

// Progress 已走过的生命比例，范围 [0, 1]，TTL 非正时视为已结束
func (l *LifetimeComponent) Progress() float64 {
	if l.TTL <= 0 {
		return 1
	}
	if p := l.Age / l.TTL; p < 1 {
		return p
	}
	return 1
}
