package systems

import (
	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered，进入时触发 OnHover）
//   - 检测点击/触摸（触发 OnClick 回调）
//   - 根据 Enabled / Hidden 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 读取本帧指针状态并更新所有按钮
func (s *ButtonSystem) Update(deltaTime float64) {
	s.HandlePointer(utils.GetInputState())
}

// HandlePointer 用给定的指针状态更新按钮，返回本次点击是否落在某个按钮上
//
// 同一次点击最多触发一个按钮。OnHover 可能移动按钮（No 按钮躲避），
// 因此 OnHover 之后重新做一次命中检测。
func (s *ButtonSystem) HandlePointer(input utils.InputState) bool {
	x, y := input.Point()
	consumed := false

	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)
	for _, entityID := range entities {
		button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !ok || button.Hidden {
			continue
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !button.Contains(x, y) {
			button.State = components.UINormal
			continue
		}

		entering := button.State != components.UIHovered && button.State != components.UIClicked
		if entering && button.OnHover != nil {
			button.OnHover()
			if !button.Contains(x, y) {
				button.State = components.UINormal
				continue
			}
		}

		if input.JustPressed && !consumed {
			consumed = true
			button.State = components.UIClicked
			if button.OnClick != nil {
				button.OnClick()
			}
			continue
		}
		button.State = components.UIHovered
	}
	return consumed
}
