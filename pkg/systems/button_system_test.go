package systems

import (
	"testing"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/gonewx/moonmission/pkg/utils"
)

func addButton(em *ecs.EntityManager, b *components.ButtonComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, b)
	return id
}

func TestButtonClickFiresOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	btn := &components.ButtonComponent{X: 10, Y: 10, Width: 100, Height: 40, Enabled: true, OnClick: func() { clicks++ }}
	addButton(em, btn)
	s := NewButtonSystem(em)

	if !s.HandlePointer(utils.InputState{JustPressed: true, X: 50, Y: 30}) {
		t.Fatal("click inside button should be consumed")
	}
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
	if btn.State != components.UIClicked {
		t.Errorf("state = %v, want clicked", btn.State)
	}

	// 悬停不点击
	s.HandlePointer(utils.InputState{X: 50, Y: 30})
	if clicks != 1 || btn.State != components.UIHovered {
		t.Errorf("hover: clicks=%d state=%v", clicks, btn.State)
	}

	// 按钮外点击
	if s.HandlePointer(utils.InputState{JustPressed: true, X: 500, Y: 500}) {
		t.Error("click outside should not be consumed")
	}
	if btn.State != components.UINormal {
		t.Errorf("state = %v, want normal", btn.State)
	}
}

func TestButtonDisabledAndHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	disabled := &components.ButtonComponent{Width: 100, Height: 40, OnClick: func() { clicks++ }}
	hidden := &components.ButtonComponent{Width: 100, Height: 40, Enabled: true, Hidden: true, OnClick: func() { clicks++ }}
	addButton(em, disabled)
	addButton(em, hidden)

	if NewButtonSystem(em).HandlePointer(utils.InputState{JustPressed: true, X: 5, Y: 5}) {
		t.Error("disabled and hidden buttons should not consume clicks")
	}
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if disabled.State != components.UIDisabled {
		t.Errorf("disabled state = %v", disabled.State)
	}
}

func TestButtonOnlyFirstOverlappingButtonClicks(t *testing.T) {
	em := ecs.NewEntityManager()
	var order []string
	addButton(em, &components.ButtonComponent{Width: 100, Height: 40, Enabled: true, OnClick: func() { order = append(order, "a") }})
	addButton(em, &components.ButtonComponent{Width: 100, Height: 40, Enabled: true, OnClick: func() { order = append(order, "b") }})

	NewButtonSystem(em).HandlePointer(utils.InputState{JustPressed: true, X: 5, Y: 5})
	if len(order) != 1 || order[0] != "a" {
		t.Errorf("order = %v, want [a]", order)
	}
}

func TestButtonHoverDodgeCancelsClick(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks, hovers := 0, 0
	btn := &components.ButtonComponent{X: 0, Y: 0, Width: 100, Height: 40, Enabled: true}
	btn.OnClick = func() { clicks++ }
	btn.OnHover = func() {
		hovers++
		btn.MoveTo(400, 400)
	}
	addButton(em, btn)
	s := NewButtonSystem(em)

	// 触摸按下：先躲开，点击落空
	if s.HandlePointer(utils.InputState{JustPressed: true, X: 10, Y: 10, IsTouching: true}) {
		t.Error("dodging button should not consume the click")
	}
	if hovers != 1 || clicks != 0 {
		t.Errorf("hovers=%d clicks=%d, want 1/0", hovers, clicks)
	}
	if btn.X != 400 || btn.Y != 400 {
		t.Errorf("button at (%v,%v), want (400,400)", btn.X, btn.Y)
	}
}

func TestButtonHoverFiresOnEnterOnly(t *testing.T) {
	em := ecs.NewEntityManager()
	hovers := 0
	btn := &components.ButtonComponent{Width: 100, Height: 40, Enabled: true, OnHover: func() { hovers++ }}
	addButton(em, btn)
	s := NewButtonSystem(em)

	for i := 0; i < 5; i++ {
		s.HandlePointer(utils.InputState{X: 10, Y: 10})
	}
	if hovers != 1 {
		t.Errorf("hovers = %d, want 1 while staying inside", hovers)
	}

	s.HandlePointer(utils.InputState{X: 300, Y: 300})
	s.HandlePointer(utils.InputState{X: 10, Y: 10})
	if hovers != 2 {
		t.Errorf("hovers = %d, want 2 after re-entering", hovers)
	}
}
