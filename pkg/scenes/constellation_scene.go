package scenes

import (
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ConstellationScene 星座页
// 进入时绘制星座；点击星座点亮它并揭示隐藏信息
type ConstellationScene struct {
	page

	renderer *systems.ConstellationRenderer
	next     *components.ButtonComponent
	reveal   float64 // 揭示后经过的秒数
}

// NewConstellationScene 创建星座页
func NewConstellationScene(ctx *Context) *ConstellationScene {
	s := &ConstellationScene{
		page:     newPage(ctx),
		renderer: systems.NewConstellationRenderer(ctx.State),
	}
	s.next = s.addButton(ctx.Content().Stargaze.Button, components.ButtonPrimary, func() {
		s.ctx.Navigator.GoToPage(game.PageMemoryGallery)
	})
	return s
}

// Renderer 返回星座渲染器
func (s *ConstellationScene) Renderer() *systems.ConstellationRenderer {
	return s.renderer
}

// Enter 页面进入动画：重新绘制星座（替换而不是叠加）
func (s *ConstellationScene) Enter() {
	content := s.ctx.Content().Stargaze
	s.next.Label = content.Button
	s.layout()
	s.renderer.Render(content.Points, content.Edges)
}

// Click 处理页面上没有被按钮消费的点击
func (s *ConstellationScene) Click(x, y float64) {
	if s.renderer.Click(x, y) {
		s.reveal = 0
	}
}

// Update 处理输入并推进动画
func (s *ConstellationScene) Update(deltaTime float64) {
	s.layout()
	input := utils.GetInputState()
	if !s.pointer(input) && input.JustPressed {
		s.Click(input.Point())
	}
	s.Step(deltaTime)
}

// Step 推进连线和揭示动画
func (s *ConstellationScene) Step(deltaTime float64) {
	s.renderer.Update(deltaTime)
	if s.renderer.Active() {
		s.reveal += deltaTime
	}
}

func (s *ConstellationScene) layout() {
	_, h := s.ctx.Viewport()
	cx := s.centerX()
	s.renderer.SetBounds(utils.Rect{
		X: cx - config.ConstellationWidth/2,
		Y: h * 0.25,
		W: config.ConstellationWidth,
		H: config.ConstellationHeight,
	})
	s.next.MoveTo(cx-s.next.Width/2, h*0.82)
}

// Draw 绘制星座页
func (s *ConstellationScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content().Stargaze
	_, h := s.ctx.Viewport()
	cx := s.centerX()
	bounds := s.renderer.Bounds()

	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeHeading), content.Heading, cx, h*0.1, config.ColorMoonCream)
	drawPanel(screen, bounds, fadeColor(config.ColorPanel, 0.5), fadeColor(config.ColorPanelBorder, 0.5))
	s.renderer.Draw(screen)

	if s.ctx.State.HasMarker(game.ElementStargazeReveal, game.MarkerRevealed) {
		alpha, offset := utils.FadeInUp(s.reveal/config.FadeInDurationSeconds, config.FadeInRise)
		drawText(screen, s.ctx.Face(game.FontRegular, config.FontSizeBody), content.Reveal,
			cx, bounds.Y+bounds.H+30+offset, config.ColorNebulaPink, alpha, text.AlignCenter)
	} else {
		drawText(screen, s.ctx.Face(game.FontRegular, config.FontSizeSmall), content.Hint,
			cx, bounds.Y+bounds.H+30, config.ColorMuted, 1, text.AlignCenter)
	}

	s.drawButtons(screen)
}
