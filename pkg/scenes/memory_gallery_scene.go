package scenes

import (
	"log"
	"strings"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MemoryGalleryScene 回忆星系
//
// 每条回忆是一颗星球，点击打开弹窗显示标题和正文。
// 弹窗打开时，点击弹窗外部、关闭按钮或按 Esc 都会关闭它。
type MemoryGalleryScene struct {
	page

	next  *components.ButtonComponent
	close *components.ButtonComponent
	age   float64
}

// NewMemoryGalleryScene 创建回忆星系页
func NewMemoryGalleryScene(ctx *Context) *MemoryGalleryScene {
	s := &MemoryGalleryScene{page: newPage(ctx)}
	s.next = s.addButton(ctx.Content().Gallery.Button, components.ButtonPrimary, func() {
		s.ctx.Navigator.GoToPage(game.PageGameBridge)
	})
	s.close = s.addButton(ctx.Content().Gallery.Close, components.ButtonGhost, func() { s.CloseMemory() })
	s.close.Width = config.ButtonWidth * 0.6
	s.close.Hidden = true
	return s
}

// OpenMemory 打开回忆弹窗，未知的键只记录日志
func (s *MemoryGalleryScene) OpenMemory(key string) bool {
	memory, ok := s.ctx.Content().Memory(key)
	if !ok {
		log.Printf("[MemoryGallery] Unknown memory %q", key)
		return false
	}
	log.Printf("[MemoryGallery] Opening memory %q", memory.Key)
	s.ctx.State.OpenMemory = memory.Key
	s.syncButtons()
	return true
}

// CloseMemory 关闭回忆弹窗
func (s *MemoryGalleryScene) CloseMemory() {
	s.ctx.State.OpenMemory = ""
	s.syncButtons()
}

// IsOpen 弹窗是否打开
func (s *MemoryGalleryScene) IsOpen() bool {
	return s.ctx.State.OpenMemory != ""
}

func (s *MemoryGalleryScene) syncButtons() {
	open := s.IsOpen()
	s.close.Hidden = !open
	s.next.Hidden = open
}

// Activate 进入时关闭可能残留的弹窗
func (s *MemoryGalleryScene) Activate() {
	gallery := s.ctx.Content().Gallery
	s.next.Label, s.close.Label = gallery.Button, gallery.Close
	s.CloseMemory()
}

// Deactivate implements game.PageLifecycle.
func (s *MemoryGalleryScene) Deactivate() {
	s.CloseMemory()
}

// HandleInput 处理一次指针输入
func (s *MemoryGalleryScene) HandleInput(input utils.InputState) {
	s.layout()
	x, y := input.Point()

	if s.IsOpen() {
		if input.JustPressed && !s.modalRect().Contains(x, y) {
			s.CloseMemory()
			return
		}
		s.pointer(input)
		return
	}

	if s.pointer(input) || !input.JustPressed {
		return
	}
	if key, ok := s.planetAt(x, y); ok {
		s.OpenMemory(key)
	}
}

// planetAt 返回点击位置的星球
func (s *MemoryGalleryScene) planetAt(x, y float64) (string, bool) {
	for i, memory := range s.ctx.Content().Memories {
		px, py := s.planetCenter(i)
		if utils.InCircle(x, y, px, py, config.PlanetRadius) {
			return memory.Key, true
		}
	}
	return "", false
}

// planetCenter 第 i 颗星球的中心，星球在视口中部水平排开
func (s *MemoryGalleryScene) planetCenter(i int) (float64, float64) {
	w, h := s.ctx.Viewport()
	n := len(s.ctx.Content().Memories)
	spacing := config.PlanetSpacing
	if n > 1 && spacing*float64(n-1) > w-2*config.PlanetRadius {
		spacing = (w - 2*config.PlanetRadius) / float64(n-1)
	}
	startX := w/2 - spacing*float64(n-1)/2
	return startX + spacing*float64(i), h * 0.45
}

func (s *MemoryGalleryScene) modalRect() utils.Rect {
	w, h := s.ctx.Viewport()
	return utils.CenteredRect(w/2, h/2, config.MemoryModalWidth, config.MemoryModalHeight)
}

func (s *MemoryGalleryScene) layout() {
	_, h := s.ctx.Viewport()
	s.next.MoveTo(s.centerX()-s.next.Width/2, h*0.8)
	modal := s.modalRect()
	s.close.MoveTo(modal.X+(modal.W-s.close.Width)/2, modal.Y+modal.H-s.close.Height-20)
}

// Update 处理输入
func (s *MemoryGalleryScene) Update(deltaTime float64) {
	if s.IsOpen() && utils.IsEscapeJustPressed() {
		s.CloseMemory()
	}
	s.HandleInput(utils.GetInputState())
	s.age += deltaTime
}

// Draw 绘制星球和弹窗
func (s *MemoryGalleryScene) Draw(screen *ebiten.Image) {
	s.layout()
	content := s.ctx.Content()
	w, h := s.ctx.Viewport()

	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeHeading), content.Gallery.Heading, w/2, h*0.1, config.ColorMoonCream)
	drawCentered(screen, s.ctx.Face(game.FontRegular, config.FontSizeSmall), content.Gallery.Hint, w/2, h*0.1+50, config.ColorMuted)

	labelFace := s.ctx.Face(game.FontRegular, config.FontSizeSmall)
	for i, memory := range content.Memories {
		px, py := s.planetCenter(i)
		clr := config.ColorMoonCream
		if memory.Color != "" {
			if parsed, err := config.ParseHexColor(memory.Color); err == nil {
				clr = parsed
			}
		}
		glow := 0.15 + 0.1*utils.Twinkle(s.age/3+float64(i)/3, 0)
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(config.PlanetRadius*1.3), fadeColor(clr, glow), true)
		vector.DrawFilledCircle(screen, float32(px), float32(py), float32(config.PlanetRadius), clr, true)
		drawCentered(screen, labelFace, memory.Label, px, py+config.PlanetRadius+16, config.ColorMoonCream)
	}

	memory, ok := content.Memory(s.ctx.State.OpenMemory)
	if !ok {
		s.drawButtons(screen)
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.ColorOverlay, false)
	modal := s.modalRect()
	drawPanel(screen, modal, config.ColorPanel, config.ColorAccentCyan)
	drawCentered(screen, s.ctx.Face(game.FontBold, config.FontSizeHeading), memory.Title, modal.X+modal.W/2, modal.Y+30, config.ColorAccentCyan)
	bodyFace := s.ctx.Face(game.FontRegular, config.FontSizeBody)
	body := strings.Join(utils.WrapText(memory.Body, bodyFace, modal.W-64), "\n")
	drawText(screen, bodyFace, body, modal.X+32, modal.Y+100, config.ColorMoonCream, 1, text.AlignStart)
	// 弹窗打开时只有关闭按钮可见，画在遮罩之上
	s.drawButtons(screen)
}
