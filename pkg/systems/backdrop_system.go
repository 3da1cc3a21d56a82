package systems

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/game"
)

// starTwinkleSeconds 星星闪烁周期
const starTwinkleSeconds = 3.0

// BackdropSystem 背景装饰生成器
//
// 启动时一次性生成一批闪烁星星（宽屏100颗，窄屏50颗，永不过期），
// 之后每3秒生成一颗漂浮爱心（15秒后移除），每4秒生成一颗流星（3秒后移除）。
// 生成节奏由 Scheduler 驱动，移除由 LifetimeSystem 负责。
// 背景层与页面切换无关，整个应用生命周期内持续运行。
type BackdropSystem struct {
	entityManager *ecs.EntityManager
	scheduler     *game.Scheduler
	rng           *rand.Rand

	width, height float64

	heartTimer    game.TimerID
	shootingTimer game.TimerID
	running       bool
}

// NewBackdropSystem 创建背景装饰生成器
// rng 为 nil 时使用以当前时间为种子的随机源
func NewBackdropSystem(em *ecs.EntityManager, scheduler *game.Scheduler, rng *rand.Rand) *BackdropSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BackdropSystem{
		entityManager: em,
		scheduler:     scheduler,
		rng:           rng,
	}
}

// StarCountFor 根据视口宽度返回星星数量
func StarCountFor(width float64) int {
	if width > config.WideViewportThreshold {
		return config.StarCountWide
	}
	return config.StarCountNarrow
}

// Start 生成星星并开始周期性生成爱心和流星
// 重复调用无效果
func (s *BackdropSystem) Start(width, height float64) {
	if s.running {
		return
	}
	s.running = true
	s.width, s.height = width, height

	count := StarCountFor(width)
	for i := 0; i < count; i++ {
		s.spawnStar()
	}

	s.heartTimer = s.scheduler.Every(seconds(config.HeartSpawnSeconds), func() { s.SpawnHeart() })
	s.shootingTimer = s.scheduler.Every(seconds(config.ShootingStarSpawnSeconds), func() { s.SpawnShootingStar() })

	log.Printf("[BackdropSystem] Started with %d stars (viewport %.0fx%.0f)", count, width, height)
}

// Stop 停止周期性生成，已有的装饰元素保留
func (s *BackdropSystem) Stop() {
	if !s.running {
		return
	}
	s.scheduler.Cancel(s.heartTimer)
	s.scheduler.Cancel(s.shootingTimer)
	s.running = false
}

// Running 是否正在运行
func (s *BackdropSystem) Running() bool {
	return s.running
}

// SetViewport 更新视口尺寸
// 装饰元素使用比例坐标，因此已有元素会自动跟随新尺寸
func (s *BackdropSystem) SetViewport(width, height float64) {
	s.width, s.height = width, height
}

// Viewport 返回当前视口尺寸
func (s *BackdropSystem) Viewport() (float64, float64) {
	return s.width, s.height
}

// Update 推进所有装饰元素的动画时间
func (s *BackdropSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](s.entityManager) {
		deco, ok := ecs.GetComponent[*components.DecorationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		deco.Age += deltaTime
	}
}

// spawnStar 生成一颗星星：大小 [1,4) 像素，闪烁延迟 [0,3) 秒，不挂载生命周期
func (s *BackdropSystem) spawnStar() ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.DecorationComponent{
		Kind:              components.DecorationStar,
		Size:              s.rng.Float64()*3 + 1,
		AnimationDuration: starTwinkleSeconds,
		AnimationDelay:    s.rng.Float64() * 3,
		RelX:              s.rng.Float64(),
		RelY:              s.rng.Float64(),
	})
	return id
}

// SpawnHeart 生成一颗漂浮爱心
// 上升时长 [10,20) 秒，与 15 秒的移除时间相互独立
func (s *BackdropSystem) SpawnHeart() ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.DecorationComponent{
		Kind:              components.DecorationHeart,
		Size:              config.HeartSize,
		AnimationDuration: s.rng.Float64()*10 + 10,
		RelX:              s.rng.Float64(),
		RelY:              1,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		TTL: config.HeartLifetimeSeconds,
	})
	return id
}

// SpawnShootingStar 在屏幕上半部分生成一颗流星，3 秒后移除
func (s *BackdropSystem) SpawnShootingStar() ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.DecorationComponent{
		Kind:              components.DecorationShootingStar,
		Size:              config.ShootingStarLength,
		AnimationDuration: config.ShootingStarLifetimeSeconds,
		RelX:              s.rng.Float64(),
		RelY:              s.rng.Float64() * 0.5,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		TTL: config.ShootingStarLifetimeSeconds,
	})
	return id
}

// CountKind 统计某种装饰元素的数量（不含已标记删除但尚未清理的）
func (s *BackdropSystem) CountKind(kind components.DecorationKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](s.entityManager) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](s.entityManager, id)
		if deco != nil && deco.Kind == kind && !s.entityManager.IsMarked(id) {
			n++
		}
	}
	return n
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
