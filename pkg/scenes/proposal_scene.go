package scenes

import (
	"log"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ProposalScene 告白页
//
// "No" 按钮在指针悬停或触摸时跳到视口内的随机位置（距右下边缘至少 20 像素）。
// "Yes" 进入庆祝页、开始五彩纸屑并切换到更亮的背景。
type ProposalScene struct {
	page
	fadeLines

	confetti *systems.ConfettiSystem
	yes      *components.ButtonComponent
	no       *components.ButtonComponent
}

// NewProposalScene 创建告白页
func NewProposalScene(ctx *Context, confetti *systems.ConfettiSystem) *ProposalScene {
	s := &ProposalScene{
		page:      newPage(ctx),
		fadeLines: newFadeLines(ctx.Scheduler),
		confetti:  confetti,
	}
	content := ctx.Content().Proposal
	s.yes = s.addButton(content.Yes, components.ButtonAccent, func() { s.Accept() })
	s.no = s.addButton(content.No, components.ButtonGhost, func() { s.DodgeNo() })
	s.no.Width, s.no.Height = config.NoButtonWidth, config.NoButtonHeight
	s.no.OnHover = func() { s.DodgeNo() }
	return s
}

// Enter 页面进入动画
func (s *ProposalScene) Enter() {
	content := s.ctx.Content().Proposal
	s.yes.Label, s.no.Label = content.Yes, content.No
	s.fade.PlayLines(content.Lines)
}

// DodgeNo 把 No 按钮移到随机位置
func (s *ProposalScene) DodgeNo() {
	w, h := s.ctx.Viewport()
	maxX := w - config.NoButtonWidth - config.NoButtonDodgeMargin
	maxY := h - config.NoButtonHeight - config.NoButtonDodgeMargin
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	x, y := s.ctx.Rng.Float64()*maxX, s.ctx.Rng.Float64()*maxY
	s.ctx.State.DisplaceNoButton(x, y)
	s.no.MoveTo(x, y)
}

// Accept 接受告白
func (s *ProposalScene) Accept() {
	log.Printf("[ProposalScene] Proposal accepted")
	if !s.ctx.Navigator.GoToPage(game.PageCelebration) {
		return
	}
	w, h := s.ctx.Viewport()
	s.confetti.SetPalette(s.ctx.Content().ConfettiPalette())
	s.confetti.Start(w, h)
	s.ctx.State.Background = game.BackgroundCelebration
}

// NoButton 返回 No 按钮当前位置
func (s *ProposalScene) NoButton() (float64, float64) {
	s.layout()
	return s.no.X, s.no.Y
}

// HandleInput 处理一次指针输入
func (s *ProposalScene) HandleInput(input utils.InputState) {
	s.layout()
	s.pointer(input)
}

// Update 处理输入并推进淡入
func (s *ProposalScene) Update(deltaTime float64) {
	s.HandleInput(utils.GetInputState())
	s.fade.Update(deltaTime)
}

// defaultNoPosition No 按钮的默认布局位置（Yes 右侧）
func (s *ProposalScene) defaultNoPosition() (float64, float64) {
	_, h := s.ctx.Viewport()
	return s.centerX() + 20, h*0.65 + (config.ButtonHeight-config.NoButtonHeight)/2
}

func (s *ProposalScene) layout() {
	_, h := s.ctx.Viewport()
	s.yes.MoveTo(s.centerX()-s.yes.Width-20, h*0.65)
	if s.ctx.State.NoButton.Displaced {
		s.no.MoveTo(s.ctx.State.NoButton.X, s.ctx.State.NoButton.Y)
		return
	}
	s.no.MoveTo(s.defaultNoPosition())
}

// Draw 绘制告白页
func (s *ProposalScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Proposal
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	systems.DrawHeart(screen, cx, h*0.15, 60, config.ColorNebulaPink)
	drawCentered(screen, s.ctx.Face(game.FontMono, config.FontSizeBody), content.Heading, cx, h*0.25, config.ColorAccentCyan)
	s.draw(screen, s.ctx, content.Lines, cx, h*0.35)
	s.drawButtons(screen)
}
