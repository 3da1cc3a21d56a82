package systems

import (
	"image/color"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体
//
// 职责：
//   - 渲染按钮背景和边框（按配色和状态）
//   - 渲染按钮文字（自动居中）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	font          *text.GoTextFace
}

// NewButtonRenderSystem 创建按钮渲染系统
// font 可为 nil，此时只绘制按钮背景
func NewButtonRenderSystem(em *ecs.EntityManager, font *text.GoTextFace) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		font:          font,
	}
}

// SetFont 替换按钮字体
func (s *ButtonRenderSystem) SetFont(font *text.GoTextFace) {
	s.font = font
}

// Draw 渲染所有可见按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
// 用于需要精确控制渲染顺序的场景（如弹窗上的按钮）
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || button.Hidden {
		return
	}

	fill, border, label := buttonColors(button)

	x, y := float32(button.X), float32(button.Y)
	w, h := float32(button.Width), float32(button.Height)
	vector.DrawFilledRect(screen, x, y, w, h, fill, true)
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	if s.font == nil || button.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(button.X+button.Width/2, button.Y+button.Height/2)
	op.ColorScale.ScaleWithColor(label)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, button.Label, s.font, op)
}

// buttonColors 返回按钮的填充、边框和文字颜色
func buttonColors(button *components.ButtonComponent) (fill, border, label color.RGBA) {
	hovered := button.State == components.UIHovered || button.State == components.UIClicked

	switch button.Style {
	case components.ButtonAccent:
		fill, border, label = config.ColorNebulaPink, config.ColorNebulaPink, config.ColorMoonCream
		if hovered {
			fill = lerpColor(config.ColorNebulaPink, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, 0.2)
		}
	case components.ButtonGhost:
		fill, border, label = withAlpha(config.ColorPanel, 0.6), config.ColorMuted, config.ColorMoonCream
		if hovered {
			border = config.ColorMoonCream
		}
	default:
		fill, border, label = withAlpha(config.ColorAccentCyan, 0.08), config.ColorAccentCyan, config.ColorAccentCyan
		if hovered {
			fill = withAlpha(config.ColorAccentCyan, 0.25)
		}
	}

	if button.State == components.UIDisabled {
		fill, border, label = withAlpha(fill, 0.4), withAlpha(border, 0.4), withAlpha(label, 0.4)
	}
	return fill, border, label
}
