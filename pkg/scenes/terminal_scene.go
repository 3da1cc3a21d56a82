package scenes

import (
	"log"
	"time"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TerminalScene 终端页
// 打字机把配置的多行文字逐字写入 AppState.Terminal，完成后进入故事页
type TerminalScene struct {
	page

	typewriter *game.Typewriter
	startTimer game.TimerID
	blink      float64
}

// NewTerminalScene 创建终端页
func NewTerminalScene(ctx *Context) *TerminalScene {
	return &TerminalScene{
		page:       newPage(ctx),
		typewriter: game.NewTypewriter(ctx.Scheduler, ctx.State.Terminal),
	}
}

// Schedule 在 delayMs 毫秒后开始打字，之前安排的启动会被替换
func (s *TerminalScene) Schedule(delayMs int) {
	if s.startTimer != 0 {
		s.ctx.Scheduler.Cancel(s.startTimer)
	}
	s.startTimer = s.ctx.Scheduler.After(time.Duration(delayMs)*time.Millisecond, func() {
		s.startTimer = 0
		s.Run()
	})
}

// Run 清空终端并开始打字
// 重复调用会丢弃正在进行的打字任务
func (s *TerminalScene) Run() {
	lines := s.ctx.Content().Terminal.Lines
	log.Printf("[TerminalScene] Typing %d lines", len(lines))
	s.ctx.State.Terminal.Clear()
	s.typewriter.Play(lines, func() {
		s.ctx.Navigator.GoToPage(game.PageStory)
	})
}

// Typing 打字机是否正在运行
func (s *TerminalScene) Typing() bool {
	return s.typewriter.Running()
}

// Reset 取消尚未开始的启动和正在进行的打字
func (s *TerminalScene) Reset() {
	if s.startTimer != 0 {
		s.ctx.Scheduler.Cancel(s.startTimer)
		s.startTimer = 0
	}
	s.typewriter.Cancel()
}

// Update 光标闪烁
func (s *TerminalScene) Update(deltaTime float64) {
	s.blink += deltaTime
}

// Draw 绘制终端窗口
func (s *TerminalScene) Draw(screen *ebiten.Image) {
	w, h := s.ctx.Viewport()
	panel := utils.CenteredRect(w/2, h/2, w*0.7, h*0.6)
	drawPanel(screen, panel, fadeColor(config.ColorPanel, 1), config.ColorPanelBorder)

	// 标题栏
	vector.DrawFilledRect(screen, float32(panel.X), float32(panel.Y), float32(panel.W), 36, fadeColor(config.ColorAccentCyan, 0.15), true)
	for i, clr := range []uint8{0xff, 0xcc, 0x88} {
		vector.DrawFilledCircle(screen, float32(panel.X+20+float64(i)*20), float32(panel.Y+18), 6, fadeColor(config.ColorNebulaPink, float64(clr)/255), true)
	}
	drawText(screen, s.ctx.Face(game.FontMono, config.FontSizeSmall), s.ctx.Content().Terminal.Heading,
		panel.X+panel.W/2, panel.Y+8, config.ColorMuted, 1, text.AlignCenter)

	body := s.ctx.State.Terminal.String()
	if s.typewriter.Running() && int(s.blink*2)%2 == 0 {
		body += "_"
	}
	drawText(screen, s.ctx.Face(game.FontMono, config.FontSizeMono), "> "+body,
		panel.X+24, panel.Y+56, config.ColorAccentCyan, 1, text.AlignStart)
}
