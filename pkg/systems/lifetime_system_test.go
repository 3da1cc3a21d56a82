package systems

import (
	"testing"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
)

func TestLifetimeSystemExpires(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewLifetimeSystem(em)

	short := em.CreateEntity()
	em.AddComponent(short, &components.LifetimeComponent{TTL: 1})
	long := em.CreateEntity()
	em.AddComponent(long, &components.LifetimeComponent{TTL: 5})
	forever := em.CreateEntity()
	em.AddComponent(forever, &components.DecorationComponent{Kind: components.DecorationStar})

	if n := sys.Update(0.5); n != 0 {
		t.Fatalf("expired at 0.5s = %d, want 0", n)
	}
	if n := sys.Update(0.5); n != 1 {
		t.Fatalf("expired at 1.0s = %d, want 1", n)
	}
	em.RemoveMarkedEntities()

	if em.Exists(short) {
		t.Error("short-lived entity should be removed")
	}
	if !em.Exists(long) || !em.Exists(forever) {
		t.Error("other entities should survive")
	}

	// 已过期的实体不会重复计数
	if n := sys.Update(0.1); n != 0 {
		t.Errorf("expired again = %d, want 0", n)
	}
}
