package scenes

import (
	"strings"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// CelebrationScene 庆祝页
// 五彩纸屑每帧下落一步，"重新开始任务"回到控制台
type CelebrationScene struct {
	page

	confetti *systems.ConfettiSystem
	restart  *components.ButtonComponent
}

// NewCelebrationScene 创建庆祝页
func NewCelebrationScene(ctx *Context, confetti *systems.ConfettiSystem) *CelebrationScene {
	s := &CelebrationScene{
		page:     newPage(ctx),
		confetti: confetti,
	}
	s.restart = s.addButton(ctx.Content().Celebration.Restart, components.ButtonPrimary, func() {
		s.ctx.Navigator.Restart()
	})
	s.restart.Width = config.ButtonWidth * 1.2
	return s
}

// Activate 刷新按钮文字
func (s *CelebrationScene) Activate() {
	s.restart.Label = s.ctx.Content().Celebration.Restart
}

// Deactivate implements game.PageLifecycle.
func (s *CelebrationScene) Deactivate() {}

// Update 处理输入并推进纸屑
func (s *CelebrationScene) Update(deltaTime float64) {
	s.layout()
	s.pointer(utils.GetInputState())
	s.Step()
}

// Step 纸屑下落一步
func (s *CelebrationScene) Step() {
	if s.confetti.Active() {
		s.confetti.Step()
	}
}

func (s *CelebrationScene) layout() {
	_, h := s.ctx.Viewport()
	s.restart.MoveTo(s.centerX()-s.restart.Width/2, h*0.75)
}

// Draw 绘制纸屑和祝福
func (s *CelebrationScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Celebration
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	s.confetti.Draw(screen)

	systems.DrawHeart(screen, cx, h*0.2, 80, config.ColorNebulaPink)
	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeTitle), content.Heading, cx, h*0.32, config.ColorMoonCream)
	drawCentered(screen, s.ctx.Face(game.FontRegular, config.FontSizeBody), strings.Join(content.Lines, "\n"), cx, h*0.32+80, config.ColorAccentCyan)
	s.drawButtons(screen)
}
