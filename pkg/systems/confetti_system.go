package systems

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ConfettiShape 纸屑形状
type ConfettiShape int

const (
	// ConfettiCircle 圆形纸屑
	ConfettiCircle ConfettiShape = iota
	// ConfettiStar 五角星纸屑
	ConfettiStar
)

// confettiRecycleY 落出底部的纸屑重新出现的高度
const confettiRecycleY = -10

// ConfettiParticle 单个纸屑
type ConfettiParticle struct {
	X, Y   float64
	Size   float64
	VX, VY float64 // 每帧位移
	Color  color.RGBA
	Shape  ConfettiShape
}

// ConfettiSystem 庆祝页的五彩纸屑模拟
//
// 粒子池大小固定，落出底部的粒子回收到顶部（y=-10，新的随机 x），
// 因此粒子数量始终不变。每帧由游戏主循环调用 Step 推进一次。
// 与背景装饰不同，纸屑不使用 ECS：粒子池整体创建、整体回收，不需要逐个实体管理。
type ConfettiSystem struct {
	rng       *rand.Rand
	palette   []color.RGBA
	count     int
	particles []ConfettiParticle

	width, height float64
	active        bool
}

// NewConfettiSystem 创建纸屑系统
// palette 为空时使用白色；rng 为 nil 时使用以当前时间为种子的随机源
func NewConfettiSystem(count int, palette []color.RGBA, rng *rand.Rand) *ConfettiSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(palette) == 0 {
		palette = []color.RGBA{{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	}
	return &ConfettiSystem{
		rng:     rng,
		palette: palette,
		count:   count,
	}
}

// SetPalette 更换颜色（只影响之后 Start 的粒子）
func (s *ConfettiSystem) SetPalette(palette []color.RGBA) {
	if len(palette) > 0 {
		s.palette = palette
	}
}

// Start 以视口尺寸重新生成整个粒子池并开始动画
// 初始位置在视口上方一屏内：x ∈ [0,w)，y ∈ [-h,0)
func (s *ConfettiSystem) Start(width, height float64) {
	s.width, s.height = width, height
	s.particles = make([]ConfettiParticle, s.count)
	for i := range s.particles {
		s.particles[i] = ConfettiParticle{
			X:     s.rng.Float64() * width,
			Y:     s.rng.Float64()*height - height,
			Size:  s.rng.Float64()*8 + 4,
			VY:    s.rng.Float64()*3 + 2,
			VX:    s.rng.Float64()*2 - 1,
			Color: s.palette[s.rng.Intn(len(s.palette))],
			Shape: ConfettiShape(s.rng.Intn(2)),
		}
	}
	s.active = true
	log.Printf("[ConfettiSystem] Started %d particles on %.0fx%.0f", len(s.particles), width, height)
}

// Stop 停止动画并释放粒子池
func (s *ConfettiSystem) Stop() {
	s.active = false
	s.particles = nil
}

// Active 是否正在运行
func (s *ConfettiSystem) Active() bool {
	return s.active
}

// Resize 更新绘制面尺寸（仅在运行时生效）
func (s *ConfettiSystem) Resize(width, height float64) {
	if !s.active {
		return
	}
	s.width, s.height = width, height
}

// Size 返回绘制面尺寸
func (s *ConfettiSystem) Size() (float64, float64) {
	return s.width, s.height
}

// Step 推进一帧
func (s *ConfettiSystem) Step() {
	if !s.active {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		p.Y += p.VY
		p.X += p.VX
		if p.Y > s.height {
			p.Y = confettiRecycleY
			p.X = s.rng.Float64() * s.width
		}
	}
}

// Particles 返回粒子池（只读用途）
func (s *ConfettiSystem) Particles() []ConfettiParticle {
	return s.particles
}

// Draw 绘制所有纸屑：圆形半径为 size，星形外半径 size、内半径 size/2
func (s *ConfettiSystem) Draw(screen *ebiten.Image) {
	if !s.active {
		return
	}
	for i := range s.particles {
		p := &s.particles[i]
		switch p.Shape {
		case ConfettiCircle:
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.Color, true)
		case ConfettiStar:
			DrawStar(screen, p.X, p.Y, 5, p.Size, p.Size/2, p.Color)
		}
	}
}
