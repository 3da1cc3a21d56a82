// Package ecs 提供背景装饰元素使用的轻量实体-组件存储
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// EntityManager 保存背景层的实体和组件
//
// 星星、漂浮爱心、流星各对应一个实体，由 BackdropSystem 创建，
// 由 LifetimeSystem 标记删除。删除延迟到帧末，遍历中标记是安全的。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]interface{}
	pending    map[EntityID]struct{}
}

func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
		pending:    make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回 ID，ID 单调递增即创建顺序
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除，重复标记或标记不存在的实体都无副作用
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, ok := em.components[id]; ok {
		em.pending[id] = struct{}{}
	}
}

// IsMarked 实体是否已标记删除但尚未清理
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, ok := em.pending[id]
	return ok
}

// AddComponent 为实体添加组件，同类型组件会被替换；实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if comps, ok := em.components[id]; ok {
		comps[reflect.TypeOf(component)] = component
	}
}

func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// Exists 实体是否仍在存储中（标记删除的实体在清理前仍然存在）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count 当前存储中的实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// RemoveMarkedEntities 帧末清理所有标记删除的实体，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	n := len(em.pending)
	for id := range em.pending {
		delete(em.components, id)
		delete(em.pending, id)
	}
	return n
}

// Clear 删除全部实体，ID 计数器不回退
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.pending = make(map[EntityID]struct{})
}

// GetEntitiesWith 返回拥有全部指定组件的实体，按创建顺序排列以保证绘制顺序稳定
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for id, comps := range em.components {
		if hasAll(comps, componentTypes) {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func hasAll(comps map[reflect.Type]interface{}, types []reflect.Type) bool {
	for _, t := range types {
		if _, ok := comps[t]; !ok {
			return false
		}
	}
	return true
}
