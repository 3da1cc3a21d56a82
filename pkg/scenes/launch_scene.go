package scenes

import (
	"math"

	missionaudio "github.com/gonewx/moonmission/internal/audio"
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LaunchScene 发射页
// "开始任务"进入终端页，并在 StartDelay 毫秒后开始打字
type LaunchScene struct {
	page

	terminal *TerminalScene
	start    *components.ButtonComponent
	age      float64
}

// NewLaunchScene 创建发射页
func NewLaunchScene(ctx *Context, terminal *TerminalScene) *LaunchScene {
	s := &LaunchScene{
		page:     newPage(ctx),
		terminal: terminal,
	}
	s.start = s.addButton(ctx.Content().Launch.Button, components.ButtonPrimary, func() { s.StartMission() })
	return s
}

// StartMission 进入终端页并安排打字机启动
func (s *LaunchScene) StartMission() {
	s.ctx.PlaySound(missionaudio.EffectLaunch)
	if !s.ctx.Navigator.GoToPage(game.PageTerminal) {
		return
	}
	s.terminal.Schedule(s.ctx.Content().Terminal.StartDelay)
}

// Activate 刷新按钮文字（内容可能已热重载）
func (s *LaunchScene) Activate() {
	s.start.Label = s.ctx.Content().Launch.Button
	s.age = 0
}

// Deactivate implements game.PageLifecycle.
func (s *LaunchScene) Deactivate() {}

// Update 处理输入
func (s *LaunchScene) Update(deltaTime float64) {
	s.layout()
	s.pointer(utils.GetInputState())
	if utils.IsEnterJustPressed() {
		s.StartMission()
		return
	}
	s.age += deltaTime
}

func (s *LaunchScene) layout() {
	_, h := s.ctx.Viewport()
	s.start.MoveTo(s.centerX()-s.start.Width/2, h*0.7)
}

// Draw 绘制发射页：标题、说明和一枚轻轻漂浮的火箭
func (s *LaunchScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Launch
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeTitle), content.Heading, cx, h*0.18, config.ColorMoonCream)
	drawCentered(screen, s.ctx.Face(game.FontRegular, config.FontSizeBody), content.Body, cx, h*0.18+70, config.ColorMuted)

	bob := math.Sin(s.age*2) * 6
	drawRocket(screen, cx, h*0.5+bob, 1)

	s.drawButtons(screen)
}

// drawRocket 以 (cx, cy) 为中心绘制火箭
func drawRocket(screen *ebiten.Image, cx, cy, scale float64) {
	bodyW, bodyH := 36*scale, 90*scale
	vector.DrawFilledRect(screen, float32(cx-bodyW/2), float32(cy-bodyH/2), float32(bodyW), float32(bodyH), config.ColorMoonCream, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy-bodyH/2), float32(bodyW/2), config.ColorMoonCream, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy-bodyH/6), float32(9*scale), config.ColorAccentCyan, true)
	vector.DrawFilledRect(screen, float32(cx-bodyW/2-12*scale), float32(cy+bodyH/4), float32(12*scale), float32(bodyH/4), config.ColorNebulaPink, true)
	vector.DrawFilledRect(screen, float32(cx+bodyW/2), float32(cy+bodyH/4), float32(12*scale), float32(bodyH/4), config.ColorNebulaPink, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy+bodyH/2+8*scale), float32(10*scale), fadeColor(config.ColorNebulaPink, 0.7), true)
}
