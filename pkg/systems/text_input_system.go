package systems

import (
	"log"

	"github.com/gonewx/moonmission/pkg/components"
	"github.com/gonewx/moonmission/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputSystem 把键盘输入交给获得焦点的输入框，并驱动光标闪烁
// 回车提交不在这里处理，由所在场景决定提交行为
type TextInputSystem struct {
	entityManager *ecs.EntityManager
}

func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{entityManager: em}
}

// Update 每帧调用一次
func (s *TextInputSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager) {
		field, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		if field == nil {
			continue
		}
		if !field.IsFocused {
			field.CursorVisible = false
			continue
		}
		if applyKeys(field) {
			// 编辑时光标保持可见
			field.CursorBlinkTimer = 0
			field.CursorVisible = true
			continue
		}
		field.CursorBlinkTimer += deltaTime
		if field.CursorBlinkTimer >= cursorBlinkInterval {
			field.CursorBlinkTimer = 0
			field.CursorVisible = !field.CursorVisible
		}
	}
}

// repeatKey 第1帧立即响应，按住半秒后每隔3帧响应一次
func repeatKey(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// applyKeys 把本帧的字符和编辑键应用到输入框，返回是否有编辑
func applyKeys(field *components.TextInputComponent) bool {
	edited := false
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		if !field.Insert(string(chars)) {
			log.Printf("[TextInputSystem] Input ignored (%d chars, max length %d)", len(chars), field.MaxLength)
		}
		edited = true
	}

	edits := []struct {
		pressed bool
		apply   func()
	}{
		{repeatKey(ebiten.KeyBackspace), field.Backspace},
		{repeatKey(ebiten.KeyDelete), field.DeleteForward},
		{repeatKey(ebiten.KeyArrowLeft), func() { field.MoveCursor(-1) }},
		{repeatKey(ebiten.KeyArrowRight), func() { field.MoveCursor(1) }},
		{inpututil.IsKeyJustPressed(ebiten.KeyHome), func() { field.CursorPosition = 0 }},
		{inpututil.IsKeyJustPressed(ebiten.KeyEnd), func() { field.CursorPosition = len([]rune(field.Text)) }},
	}
	for _, e := range edits {
		if e.pressed {
			e.apply()
			edited = true
		}
	}
	return edited
}
