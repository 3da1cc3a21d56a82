package scenes

import (
	"image/color"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/systems"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// page 所有页面共用的部分：上下文、按钮实体和按钮系统
type page struct {
	ctx *Context

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem
}

func newPage(ctx *Context) page {
	em := ecs.NewEntityManager()
	return page{
		ctx:           ctx,
		entityManager: em,
		buttonSystem:  systems.NewButtonSystem(em),
		buttonRender:  systems.NewButtonRenderSystem(em, nil),
	}
}

// addButton 创建按钮实体，位置由页面的 layout 负责
func (p *page) addButton(label string, style components.ButtonStyle, onClick func()) *components.ButtonComponent {
	button := &components.ButtonComponent{
		Width:   config.ButtonWidth,
		Height:  config.ButtonHeight,
		Label:   label,
		Style:   style,
		Enabled: true,
		OnClick: onClick,
	}
	id := p.entityManager.CreateEntity()
	p.entityManager.AddComponent(id, button)
	return button
}

// pointer 把指针状态交给按钮，返回点击是否被按钮消费
func (p *page) pointer(input utils.InputState) bool {
	return p.buttonSystem.HandlePointer(input)
}

// drawButtons 绘制全部按钮
func (p *page) drawButtons(screen *ebiten.Image) {
	p.buttonRender.SetFont(p.ctx.Face(game.FontBold, config.FontSizeBody))
	p.buttonRender.Draw(screen)
}

// centerX 视口水平中心
func (p *page) centerX() float64 {
	w, _ := p.ctx.Viewport()
	return w / 2
}

// drawText 绘制一段文字（可含换行），face 为 nil 时不绘制
func drawText(screen *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color, alpha float64, align text.Align) {
	if face == nil || str == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.PrimaryAlign = align
	op.LineSpacing = face.Size * config.LineSpacing
	text.Draw(screen, str, face, op)
}

// drawCentered 以 x 为中心绘制文字
func drawCentered(screen *ebiten.Image, face *text.GoTextFace, str string, x, y float64, clr color.Color) {
	drawText(screen, face, str, x, y, clr, 1, text.AlignCenter)
}

// drawPanel 绘制半透明面板
func drawPanel(screen *ebiten.Image, rect utils.Rect, fill, border color.Color) {
	x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)
}

// fadeLines 淡入文字行的共用实现（故事页、月球页、告白页）
type fadeLines struct {
	fade *systems.FadeInSystem
}

func newFadeLines(scheduler *game.Scheduler) fadeLines {
	return fadeLines{fade: systems.NewFadeInSystem(scheduler)}
}

// draw 从 top 开始逐行绘制，返回最后一行之后的 y
func (f *fadeLines) draw(screen *ebiten.Image, ctx *Context, lines []config.FadeLine, x, top float64) float64 {
	y := top
	for i, line := range lines {
		size := config.FontSizeBody
		style := game.FontRegular
		if line.Large {
			size, style = config.FontSizeHeading, game.FontBold
		}
		alpha, offset := f.fade.Appearance(i)
		drawText(screen, ctx.Face(style, size), line.Text, x, y+offset, config.ColorMoonCream, alpha, text.AlignCenter)
		y += size * config.LineSpacing * 1.4
	}
	return y
}

// fadeColor 返回乘以透明度后的颜色（预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	alpha = utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
