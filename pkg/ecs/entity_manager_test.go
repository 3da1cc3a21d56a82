package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testLifetimeComponent struct {
	Remaining float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("GetComponent[*testPositionComponent] should succeed")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("got (%v, %v), want (3, 4)", pos.X, pos.Y)
	}

	if _, ok := GetComponent[*testLifetimeComponent](em, id); ok {
		t.Error("GetComponent should fail for a missing component type")
	}
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("HasComponent should report the position component")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyTwiceInSameFrame(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if !em.IsMarked(id) {
		t.Error("IsMarked should report the pending entity")
	}
	if n := em.RemoveMarkedEntities(); n != 1 {
		t.Errorf("RemoveMarkedEntities() = %d, want 1", n)
	}
	if em.IsMarked(id) {
		t.Error("pending mark should be cleared after cleanup")
	}

	// 标记不存在的实体无副作用
	em.DestroyEntity(id)
	if n := em.RemoveMarkedEntities(); n != 0 {
		t.Errorf("RemoveMarkedEntities() on missing entity = %d, want 0", n)
	}
	if em.Count() != 0 {
		t.Errorf("Count() = %d, want 0", em.Count())
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testLifetimeComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testPositionComponent](em)
	if len(all) != 20 {
		t.Fatalf("expected 20 entities, got %d", len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("entities not in creation order at %d: got %d, want %d", i, all[i], ids[i])
		}
	}

	withLifetime := GetEntitiesWith2[*testPositionComponent, *testLifetimeComponent](em)
	if len(withLifetime) != 10 {
		t.Errorf("expected 10 entities with lifetime, got %d", len(withLifetime))
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", em.Count())
	}

	// ID 不回退
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("next ID after Clear = %d, want 3", id)
	}
}
