package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypeHeart cp.CollisionType = iota + 1
	collisionTypeBasket
)

// 小游戏物理参数
const (
	miniGameGravity      = 260.0
	miniGameHeartRadius  = 14.0
	miniGameBasketWidth  = 120.0
	miniGameBasketHeight = 20.0
	miniGameBasketMargin = 60.0 // 篮子距底部的距离
	miniGameSpawnSeconds = 0.9
	miniGameMaxHearts    = 12
)

// fallingHeart 一颗正在下落的爱心
type fallingHeart struct {
	body  *cp.Body
	shape *cp.Shape
}

// MiniGameSystem 小游戏"接住爱心"的物理模拟
//
// 爱心是受重力影响的动态刚体，篮子是跟随指针水平移动的运动学刚体。
// 爱心与篮子的碰撞在 BeginFunc 中记录并忽略物理响应，Step 结束后统一移除。
// 接住 Goal 颗爱心即获胜，落出底部的爱心计为错过，没有失败条件。
type MiniGameSystem struct {
	space  *cp.Space
	basket *cp.Body
	rng    *rand.Rand

	width, height float64

	hearts  map[*cp.Shape]*fallingHeart
	caught  map[*cp.Shape]bool
	spawnIn float64

	Goal   int
	Caught int
	Missed int
	won    bool

	// OnWin 获胜时调用一次，可为 nil
	OnWin func()
	// OnCatch 每接住一颗爱心调用，可为 nil
	OnCatch func(caught int)
}

// NewMiniGameSystem 创建小游戏
// rng 为 nil 时使用以当前时间为种子的随机源
func NewMiniGameSystem(width, height float64, goal int, rng *rand.Rand) *MiniGameSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if goal <= 0 {
		goal = config.DefaultBridgeGoal
	}
	g := &MiniGameSystem{
		rng:    rng,
		width:  width,
		height: height,
		Goal:   goal,
	}
	g.Reset()
	return g
}

// Reset 重建物理空间并清零计分
func (g *MiniGameSystem) Reset() {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: miniGameGravity})

	basket := cp.NewKinematicBody()
	basket.SetPosition(cp.Vector{X: g.width / 2, Y: g.height - miniGameBasketMargin})
	space.AddBody(basket)
	shape := cp.NewBox(basket, miniGameBasketWidth, miniGameBasketHeight, 0)
	shape.SetCollisionType(collisionTypeBasket)
	space.AddShape(shape)

	g.space = space
	g.basket = basket
	g.hearts = make(map[*cp.Shape]*fallingHeart)
	g.caught = make(map[*cp.Shape]bool)
	g.spawnIn = 0
	g.Caught, g.Missed = 0, 0
	g.won = false

	handler := space.NewCollisionHandler(collisionTypeHeart, collisionTypeBasket)
	handler.UserData = g
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		game, ok := userData.(*MiniGameSystem)
		if !ok || game == nil {
			return false
		}
		a, b := arb.Shapes()
		if _, isHeart := game.hearts[a]; isHeart {
			game.caught[a] = true
		} else if _, isHeart := game.hearts[b]; isHeart {
			game.caught[b] = true
		}
		// 接住的爱心直接消失，不与篮子发生碰撞
		return false
	}
}

// Won 是否已获胜
func (g *MiniGameSystem) Won() bool {
	return g.won
}

// HeartCount 当前下落中的爱心数量
func (g *MiniGameSystem) HeartCount() int {
	return len(g.hearts)
}

// BasketX 篮子中心 x
func (g *MiniGameSystem) BasketX() float64 {
	return g.basket.Position().X
}

// MoveBasket 把篮子移到指针 x 处（限制在屏幕内）
func (g *MiniGameSystem) MoveBasket(x float64) {
	half := miniGameBasketWidth / 2
	if x < half {
		x = half
	}
	if x > g.width-half {
		x = g.width - half
	}
	pos := g.basket.Position()
	g.basket.SetPosition(cp.Vector{X: x, Y: pos.Y})
}

// SpawnHeart 在顶部随机位置生成一颗爱心
func (g *MiniGameSystem) SpawnHeart(x float64) {
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, miniGameHeartRadius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: -miniGameHeartRadius})
	body.SetVelocity(g.rng.Float64()*40-20, g.rng.Float64()*60)
	g.space.AddBody(body)

	shape := cp.NewCircle(body, miniGameHeartRadius, cp.Vector{})
	shape.SetCollisionType(collisionTypeHeart)
	g.space.AddShape(shape)

	g.hearts[shape] = &fallingHeart{body: body, shape: shape}
}

// Update 推进一帧：生成、物理步进、结算接住和错过的爱心
func (g *MiniGameSystem) Update(deltaTime float64) {
	if g.won {
		return
	}

	g.spawnIn -= deltaTime
	if g.spawnIn <= 0 && len(g.hearts) < miniGameMaxHearts {
		margin := miniGameHeartRadius * 2
		g.SpawnHeart(margin + g.rng.Float64()*(g.width-2*margin))
		g.spawnIn = miniGameSpawnSeconds
	}

	g.space.Step(deltaTime)

	for shape := range g.caught {
		g.removeHeart(shape)
		g.Caught++
		if g.OnCatch != nil {
			g.OnCatch(g.Caught)
		}
	}
	g.caught = make(map[*cp.Shape]bool)

	for shape, heart := range g.hearts {
		if heart.body.Position().Y > g.height+miniGameHeartRadius {
			g.removeHeart(shape)
			g.Missed++
		}
	}

	if g.Caught >= g.Goal && !g.won {
		g.won = true
		log.Printf("[MiniGame] Won: caught %d hearts (missed %d)", g.Caught, g.Missed)
		if g.OnWin != nil {
			g.OnWin()
		}
	}
}

func (g *MiniGameSystem) removeHeart(shape *cp.Shape) {
	heart, ok := g.hearts[shape]
	if !ok {
		return
	}
	g.space.RemoveShape(heart.shape)
	g.space.RemoveBody(heart.body)
	delete(g.hearts, shape)
}

// Draw 绘制篮子和爱心
func (g *MiniGameSystem) Draw(screen *ebiten.Image) {
	for _, heart := range g.hearts {
		p := heart.body.Position()
		DrawHeart(screen, p.X, p.Y, miniGameHeartRadius*2, config.ColorNebulaPink)
	}

	b := g.basket.Position()
	vector.DrawFilledRect(screen,
		float32(b.X-miniGameBasketWidth/2), float32(b.Y-miniGameBasketHeight/2),
		miniGameBasketWidth, miniGameBasketHeight, config.ColorAccentCyan, true)
}
