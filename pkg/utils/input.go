// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 当前帧的指针状态，鼠标和触摸统一成一个指针
//
// 没有按下时 X/Y 仍然有效，页面用它做悬停检测
// （告白页的 No 按钮在鼠标悬停或手指按住时躲开）。
type InputState struct {
	JustPressed bool
	X, Y        int
	IsTouching  bool // 指针来自触摸
}

// Point 以浮点坐标返回指针位置
func (s InputState) Point() (float64, float64) {
	return float64(s.X), float64(s.Y)
}

// consumedTick 被全局控件（音乐开关）占用的那一帧，-1 表示没有
var consumedTick int64 = -1

// ConsumePress 声明本帧的按下已被处理，之后同一帧的 GetInputState 不再报告 JustPressed
// 指针位置仍然保留，悬停检测不受影响
func ConsumePress() {
	consumedTick = ebiten.Tick()
}

// GetInputState 读取当前帧的指针，触摸优先于鼠标
func GetInputState() InputState {
	return withoutConsumed(readPointer(), ebiten.Tick())
}

func withoutConsumed(state InputState, tick int64) InputState {
	if tick == consumedTick {
		state.JustPressed = false
	}
	return state
}

func readPointer() InputState {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		return touchState(ids[0], true)
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		return touchState(ids[0], false)
	}

	state := InputState{JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)}
	state.X, state.Y = ebiten.CursorPosition()
	return state
}

func touchState(id ebiten.TouchID, justPressed bool) InputState {
	x, y := ebiten.TouchPosition(id)
	return InputState{JustPressed: justPressed, X: x, Y: y, IsTouching: true}
}

// IsEnterJustPressed 回车（含小键盘回车）是否刚刚按下，口令门用它提交
func IsEnterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

// IsEscapeJustPressed Esc 是否刚刚按下，用于关闭回忆弹窗和退出小游戏
func IsEscapeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
