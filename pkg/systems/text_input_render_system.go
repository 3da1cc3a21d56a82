package systems

import (
	"image/color"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// textInputPadding 文本距输入框左边缘的距离
const textInputPadding = 14.0

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace // 文本字体，可为 nil（只画边框）
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// SetFont 替换字体（字体在场景创建之后才加载时使用）
func (s *TextInputRenderSystem) SetFont(font *text.GoTextFace) {
	s.font = font
}

// DrawEntity 绘制实体上的输入框，实体没有输入组件时什么也不画
func (s *TextInputRenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID, rect utils.Rect) {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
	if !ok {
		return
	}
	s.DrawInputBox(screen, input, rect)
}

// DrawInputBox 在 rect 处绘制一个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, rect utils.Rect) {
	// 1. 背景和边框，获得焦点时边框高亮
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H),
		color.RGBA{R: 0x05, G: 0x08, B: 0x1a, A: 0xdd}, true)
	border := config.ColorPanelBorder
	if input.IsFocused {
		border = config.ColorAccentCyan
	}
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 2, border, true)

	// 2. 文本或占位符
	textX := rect.X + textInputPadding
	textY := rect.Y + rect.H/2

	if input.Text == "" && input.Placeholder != "" {
		s.drawText(screen, input.Placeholder, textX, textY, config.ColorMuted)
	} else if input.Text != "" {
		s.drawText(screen, input.DisplayText(), textX, textY, config.ColorMoonCream)
	}

	// 3. 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, rect, textX)
	}
}

// drawText 绘制垂直居中的文本
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, txt string, x, y float64, clr color.Color) {
	if s.font == nil || txt == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter

	text.Draw(screen, txt, s.font, op)
}

// drawCursor 绘制光标
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, rect utils.Rect, textX float64) {
	// 光标在第 N 个字符后面，按显示文本测量（遮罩模式下是圆点的宽度）
	runes := []rune(input.DisplayText())
	pos := input.CursorPosition
	if pos > len(runes) {
		pos = len(runes)
	}

	var textWidth float64
	if s.font != nil && pos > 0 {
		textWidth, _ = text.Measure(string(runes[:pos]), s.font, 0)
	}

	cursorX := textX + textWidth
	cursorY := rect.Y + rect.H/4
	vector.DrawFilledRect(screen, float32(cursorX), float32(cursorY), 2, float32(rect.H/2), color.White, false)
}
