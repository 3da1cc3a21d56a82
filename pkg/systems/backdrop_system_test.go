package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/game"
)

// backdropHarness 模拟游戏主循环：调度器 -> 背景生成 -> 生命周期 -> 清理
type backdropHarness struct {
	em        *ecs.EntityManager
	scheduler *game.Scheduler
	backdrop  *BackdropSystem
	lifetime  *LifetimeSystem
}

func newBackdropHarness(seed int64) *backdropHarness {
	em := ecs.NewEntityManager()
	scheduler := game.NewScheduler()
	return &backdropHarness{
		em:        em,
		scheduler: scheduler,
		backdrop:  NewBackdropSystem(em, scheduler, rand.New(rand.NewSource(seed))),
		lifetime:  NewLifetimeSystem(em),
	}
}

// run 以 60fps 推进指定秒数
func (h *backdropHarness) run(seconds float64) {
	const dt = 1.0 / 60.0
	frames := int(seconds*60 + 0.5)
	for i := 0; i < frames; i++ {
		h.scheduler.Update(dt)
		h.backdrop.Update(dt)
		h.lifetime.Update(dt)
		h.em.RemoveMarkedEntities()
	}
}

func TestStarCountFor(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{1024, 100},
		{769, 100},
		{768, 50},
		{375, 50},
	}
	for _, tt := range tests {
		if got := StarCountFor(tt.width); got != tt.want {
			t.Errorf("StarCountFor(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestBackdropStartSeedsStars(t *testing.T) {
	h := newBackdropHarness(1)
	h.backdrop.Start(1024, 768)

	if n := h.backdrop.CountKind(components.DecorationStar); n != 100 {
		t.Fatalf("star count = %d, want 100", n)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](h.em) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](h.em, id)
		if deco.Size < 1 || deco.Size >= 4 {
			t.Errorf("star size %v outside [1,4)", deco.Size)
		}
		if deco.AnimationDelay < 0 || deco.AnimationDelay >= 3 {
			t.Errorf("star delay %v outside [0,3)", deco.AnimationDelay)
		}
		if ecs.HasComponent[*components.LifetimeComponent](h.em, id) {
			t.Error("stars must not expire")
		}
	}

	// 重复启动不会再生成
	h.backdrop.Start(1024, 768)
	if n := h.backdrop.CountKind(components.DecorationStar); n != 100 {
		t.Errorf("star count after second Start = %d, want 100", n)
	}
}

func TestBackdropNarrowViewport(t *testing.T) {
	h := newBackdropHarness(2)
	h.backdrop.Start(600, 900)
	if n := h.backdrop.CountKind(components.DecorationStar); n != 50 {
		t.Errorf("star count = %d, want 50", n)
	}
}

func TestBackdropHeartsSpawnAndExpire(t *testing.T) {
	h := newBackdropHarness(3)
	h.backdrop.Start(1024, 768)

	h.run(2.5)
	if n := h.backdrop.CountKind(components.DecorationHeart); n != 0 {
		t.Fatalf("hearts at 2.5s = %d, want 0", n)
	}

	h.run(1.0) // 3.5s
	if n := h.backdrop.CountKind(components.DecorationHeart); n != 1 {
		t.Fatalf("hearts at 3.5s = %d, want 1", n)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](h.em) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](h.em, id)
		if deco.Kind != components.DecorationHeart {
			continue
		}
		if deco.AnimationDuration < 10 || deco.AnimationDuration >= 20 {
			t.Errorf("heart rise duration %v outside [10,20)", deco.AnimationDuration)
		}
	}

	h.run(13.0) // 16.5s: 3,6,9,12,15 已生成，第一颗在 18s 才移除
	if n := h.backdrop.CountKind(components.DecorationHeart); n != 5 {
		t.Fatalf("hearts at 16.5s = %d, want 5", n)
	}

	h.run(3.0) // 19.5s: 18s 又生成一颗，3s 生成的那颗已移除
	if n := h.backdrop.CountKind(components.DecorationHeart); n != 5 {
		t.Errorf("hearts at 19.5s = %d, want 5", n)
	}

	// 星星始终保持不变
	if n := h.backdrop.CountKind(components.DecorationStar); n != 100 {
		t.Errorf("star count = %d, want 100", n)
	}
}

func TestBackdropShootingStars(t *testing.T) {
	h := newBackdropHarness(4)
	h.backdrop.Start(1024, 768)

	h.run(5.0)
	if n := h.backdrop.CountKind(components.DecorationShootingStar); n != 1 {
		t.Fatalf("shooting stars at 5s = %d, want 1", n)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.DecorationComponent](h.em) {
		deco, _ := ecs.GetComponent[*components.DecorationComponent](h.em, id)
		if deco.Kind == components.DecorationShootingStar && (deco.RelY < 0 || deco.RelY >= 0.5) {
			t.Errorf("shooting star RelY %v outside upper half", deco.RelY)
		}
	}

	h.run(2.5) // 7.5s: 4s 的流星在 7s 移除，下一颗 8s 才生成
	if n := h.backdrop.CountKind(components.DecorationShootingStar); n != 0 {
		t.Errorf("shooting stars at 7.5s = %d, want 0", n)
	}

	h.run(1.5) // 9s
	if n := h.backdrop.CountKind(components.DecorationShootingStar); n != 1 {
		t.Errorf("shooting stars at 9s = %d, want 1", n)
	}
}

func TestBackdropStop(t *testing.T) {
	h := newBackdropHarness(5)
	h.backdrop.Start(1024, 768)
	h.backdrop.Stop()

	h.run(10)
	if n := h.backdrop.CountKind(components.DecorationHeart); n != 0 {
		t.Errorf("hearts after Stop = %d, want 0", n)
	}
	if h.backdrop.Running() {
		t.Error("Running() should be false after Stop")
	}
}

func TestHeartPositionRises(t *testing.T) {
	deco := &components.DecorationComponent{Kind: components.DecorationHeart, Size: 20, AnimationDuration: 10, RelX: 0.5, RelY: 1}

	_, y0, _ := HeartPosition(deco, 800, 600)
	deco.Age = 5
	_, y1, a1 := HeartPosition(deco, 800, 600)
	deco.Age = 10
	_, y2, a2 := HeartPosition(deco, 800, 600)

	if !(y0 > y1 && y1 > y2) {
		t.Errorf("heart should rise: y0=%v y1=%v y2=%v", y0, y1, y2)
	}
	if y0 != 620 || y2 != -20 {
		t.Errorf("heart path = %v -> %v, want 620 -> -20", y0, y2)
	}
	if a1 <= 0 || a2 != 0 {
		t.Errorf("alpha mid=%v end=%v", a1, a2)
	}
}

func TestShootingStarSegmentMovesDiagonally(t *testing.T) {
	deco := &components.DecorationComponent{Kind: components.DecorationShootingStar, Size: 100, AnimationDuration: 3, RelX: 0.1, RelY: 0.2}

	_, _, hx0, hy0, _ := ShootingStarSegment(deco, 1000, 1000)
	deco.Age = 1.5
	x0, y0, hx1, hy1, alpha := ShootingStarSegment(deco, 1000, 1000)

	if hx1 <= hx0 || hy1 <= hy0 {
		t.Errorf("head should move right and down: (%v,%v) -> (%v,%v)", hx0, hy0, hx1, hy1)
	}
	if x0 >= hx1 || y0 >= hy1 {
		t.Error("tail should trail behind the head")
	}
	if alpha != 1 {
		t.Errorf("alpha at half way = %v, want 1", alpha)
	}
}
