package systems

import (
	"image/color"
	"math"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	starColor         = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	shootingStarColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// BackdropRenderSystem 绘制背景渐变和装饰元素
type BackdropRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewBackdropRenderSystem 创建背景渲染系统
func NewBackdropRenderSystem(em *ecs.EntityManager) *BackdropRenderSystem {
	return &BackdropRenderSystem{entityManager: em}
}

// DrawGradient 用竖直三段渐变填充整个屏幕
func (s *BackdropRenderSystem) DrawGradient(screen *ebiten.Image, stops config.GradientStops) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), b.Dy()
	if h <= 0 {
		return
	}

	// 每 4 像素一条色带，足够平滑
	const band = 4
	for y := 0; y < h; y += band {
		t := float64(y) / float64(h)
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(stops[0], stops[1], t*2)
		} else {
			c = lerpColor(stops[1], stops[2], (t-0.5)*2)
		}
		vector.DrawFilledRect(screen, 0, float32(y), w, band, c, false)
	}
}

// Draw 绘制全部装饰元素（星星在最底层，其次爱心，流星在最上层）
func (s *BackdropRenderSystem) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	ids := ecs.GetEntitiesWith1[*components.DecorationComponent](s.entityManager)
	for _, kind := range []components.DecorationKind{
		components.DecorationStar,
		components.DecorationHeart,
		components.DecorationShootingStar,
	} {
		for _, id := range ids {
			deco, ok := ecs.GetComponent[*components.DecorationComponent](s.entityManager, id)
			if !ok || deco.Kind != kind {
				continue
			}
			switch kind {
			case components.DecorationStar:
				drawTwinkleStar(screen, deco, width, height)
			case components.DecorationHeart:
				drawFloatingHeart(screen, deco, width, height)
			case components.DecorationShootingStar:
				drawShootingStar(screen, deco, width, height)
			}
		}
	}
}

func drawTwinkleStar(screen *ebiten.Image, deco *components.DecorationComponent, width, height float64) {
	alpha := utils.Twinkle(deco.Progress(), 0.3)
	vector.DrawFilledCircle(screen,
		float32(deco.RelX*width), float32(deco.RelY*height),
		float32(deco.Size/2), withAlpha(starColor, alpha), true)
}

// HeartPosition 返回漂浮爱心当前的屏幕坐标和透明度
// 从视口底部下方升到顶部上方，开头和结尾各有一段淡入淡出
func HeartPosition(deco *components.DecorationComponent, width, height float64) (x, y, alpha float64) {
	t := deco.Elapsed()
	x = deco.RelX*width + math.Sin(t*math.Pi*4)*10
	y = utils.Lerp(height+deco.Size, -deco.Size, t)

	alpha = 1.0
	switch {
	case t < 0.1:
		alpha = t / 0.1
	case t > 0.9:
		alpha = (1 - t) / 0.1
	}
	return x, y, alpha * 0.8
}

func drawFloatingHeart(screen *ebiten.Image, deco *components.DecorationComponent, width, height float64) {
	x, y, alpha := HeartPosition(deco, width, height)
	if alpha <= 0 {
		return
	}
	DrawHeart(screen, x, y, deco.Size, withAlpha(config.ColorNebulaPink, alpha))
}

// ShootingStarSegment 返回流星头部和尾部坐标
// 流星沿 45° 方向向右下划过，后半程逐渐消失
func ShootingStarSegment(deco *components.DecorationComponent, width, height float64) (x0, y0, x1, y1, alpha float64) {
	t := deco.Elapsed()
	travel := deco.Size * 3 * utils.EaseOutCubic(t)
	headX := deco.RelX*width + travel
	headY := deco.RelY*height + travel
	tail := deco.Size * (1 - t*0.5)

	alpha = 1.0
	if t > 0.5 {
		alpha = (1 - t) / 0.5
	}
	return headX - tail, headY - tail, headX, headY, alpha
}

func drawShootingStar(screen *ebiten.Image, deco *components.DecorationComponent, width, height float64) {
	x0, y0, x1, y1, alpha := ShootingStarSegment(deco, width, height)
	if alpha <= 0 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, withAlpha(shootingStarColor, alpha*0.6), true)
	vector.DrawFilledCircle(screen, float32(x1), float32(y1), 2, withAlpha(shootingStarColor, alpha), true)
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(utils.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(utils.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(utils.Lerp(float64(a.B), float64(b.B), t)),
		A: 0xff,
	}
}
