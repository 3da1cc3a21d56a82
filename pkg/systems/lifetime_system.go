package systems

import (
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
)

// LifetimeSystem 让爱心和流星到期后离场
// 到期实体只是被标记删除，帧末 RemoveMarkedEntities 时才真正移除
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{entityManager: em}
}

// Update 累加存活时间，返回本帧到期的数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if life == nil || life.Expired {
			continue
		}
		life.Age += deltaTime
		if life.Progress() < 1 {
			continue
		}
		life.Expired = true
		s.entityManager.DestroyEntity(id)
		expired++
	}
	return expired
}
