package game

import "github.com/hajimehoshi/ebiten/v2"

// Scene 任务中的一个页面（口令门、终端、月球……）
// Navigator 每帧只驱动当前页面
type Scene interface {
	// Update 推进页面逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
}

// PageLifecycle 可选接口，页面切换时由 Navigator 调用
//
// 旧页面先 Deactivate，新页面再 Activate。
// 页面级的进入动画不放在这里，而是通过 Navigator.OnEnter 注册。
type PageLifecycle interface {
	Activate()
	Deactivate()
}
