package scenes

import (
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MoonScene 月球页
// 进入时逐行淡入；点击发光的星星揭示秘密信息并重新开始脉冲
type MoonScene struct {
	page
	fadeLines

	next   *components.ButtonComponent
	pulse  float64 // 当前脉冲周期内经过的秒数
	reveal float64 // 揭示后经过的秒数
}

// NewMoonScene 创建月球页
func NewMoonScene(ctx *Context) *MoonScene {
	s := &MoonScene{
		page:      newPage(ctx),
		fadeLines: newFadeLines(ctx.Scheduler),
	}
	s.next = s.addButton(ctx.Content().Moon.Button, components.ButtonPrimary, func() {
		s.ctx.Navigator.GoToPage(game.PageProposal)
	})
	return s
}

// Enter 页面进入动画
func (s *MoonScene) Enter() {
	content := s.ctx.Content().Moon
	s.next.Label = content.Button
	s.fade.PlayLines(content.Lines)
}

// Revealed 秘密信息是否已揭示
func (s *MoonScene) Revealed() bool {
	return s.ctx.State.HasMarker(game.ElementSecretMessage, game.MarkerRevealed)
}

// RevealSecret 揭示秘密信息，并从头开始星星的脉冲
func (s *MoonScene) RevealSecret() {
	if !s.Revealed() {
		s.reveal = 0
	}
	s.ctx.State.AddMarker(game.ElementSecretMessage, game.MarkerRevealed)
	s.pulse = 0
}

// PulsePhase 当前脉冲相位 [0,1)
func (s *MoonScene) PulsePhase() float64 {
	return s.pulse / config.SecretPulseSeconds
}

// secretStar 秘密星星的中心
func (s *MoonScene) secretStar() (float64, float64) {
	w, h := s.ctx.Viewport()
	return w/2 + config.MoonRadius*1.6, h * 0.22
}

// HandleInput 处理一次指针输入
func (s *MoonScene) HandleInput(input utils.InputState) {
	s.layout()
	if s.pointer(input) || !input.JustPressed {
		return
	}
	sx, sy := s.secretStar()
	if utils.InCircle(float64(input.X), float64(input.Y), sx, sy, config.SecretStarRadius*2) {
		s.RevealSecret()
	}
}

// Update 处理输入并推进动画
func (s *MoonScene) Update(deltaTime float64) {
	s.HandleInput(utils.GetInputState())
	s.Step(deltaTime)
}

// Step 推进淡入、脉冲和揭示动画
func (s *MoonScene) Step(deltaTime float64) {
	s.fade.Update(deltaTime)
	s.pulse += deltaTime
	for s.pulse >= config.SecretPulseSeconds {
		s.pulse -= config.SecretPulseSeconds
	}
	if s.Revealed() {
		s.reveal += deltaTime
	}
}

func (s *MoonScene) layout() {
	_, h := s.ctx.Viewport()
	s.next.MoveTo(s.centerX()-s.next.Width/2, h*0.85)
}

// Draw 绘制月球、秘密星星和文字
func (s *MoonScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Moon
	_, h := s.ctx.Viewport()
	cx := s.centerX()

	// 月球和陨石坑
	moonY := h * 0.22
	vector.DrawFilledCircle(screen, float32(cx), float32(moonY), config.MoonRadius*1.25, fadeColor(config.ColorMoonCream, 0.12), true)
	vector.DrawFilledCircle(screen, float32(cx), float32(moonY), config.MoonRadius, config.ColorMoonCream, true)
	crater := fadeColor(config.ColorMuted, 0.35)
	vector.DrawFilledCircle(screen, float32(cx-30), float32(moonY-20), 16, crater, true)
	vector.DrawFilledCircle(screen, float32(cx+25), float32(moonY+30), 11, crater, true)
	vector.DrawFilledCircle(screen, float32(cx+35), float32(moonY-35), 7, crater, true)

	sx, sy := s.secretStar()
	scale := utils.Pulse(s.PulsePhase(), 0.3)
	systems.DrawStar(screen, sx, sy, 5, config.SecretStarRadius*scale, config.SecretStarRadius*scale/2, config.ColorAccentCyan)

	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeHeading), content.Heading, cx, h*0.4, config.ColorMoonCream)
	bottom := s.draw(screen, s.ctx, content.Lines, cx, h*0.4+60)

	if s.Revealed() {
		alpha, offset := utils.FadeInUp(s.reveal/config.FadeInDurationSeconds, config.FadeInRise)
		drawText(screen, s.ctx.Face(game.FontBold, config.FontSizeBody), content.Secret, cx, bottom+offset, config.ColorNebulaPink, alpha, text.AlignCenter)
	} else {
		drawText(screen, s.ctx.Face(game.FontRegular, config.FontSizeSmall), content.SecretHint, cx, bottom, config.ColorMuted, 1, text.AlignCenter)
	}

	s.drawButtons(screen)
}
