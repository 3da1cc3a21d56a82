package game

import "strings"

// 元素与状态标记名称
const (
	// MarkerRevealed 隐藏文字已揭示
	MarkerRevealed = "revealed"
	// MarkerConstellationActive 星座已点亮
	MarkerConstellationActive = "constellation-active"

	// ElementStargazeReveal 星座页的隐藏信息
	ElementStargazeReveal = "stargaze-reveal"
	// ElementSecretMessage 月球页的秘密信息
	ElementSecretMessage = "secret-message"
	// ElementConstellation 星座绘制面
	ElementConstellation = "constellation"
)

// Background 页面背景渐变
type Background int

const (
	// BackgroundDefault 默认深空渐变
	BackgroundDefault Background = iota
	// BackgroundCelebration 接受告白后更亮的渐变
	BackgroundCelebration
)

// NoButtonState "No" 按钮的位移状态
// Displaced 为 false 时按钮位于默认布局位置
type NoButtonState struct {
	Displaced bool
	X, Y      float64
}

// AppState 应用状态对象
//
// 由 Navigator 持有，其他组件通过它查询或修改跨页面的瞬时状态。
// 替代全局变量：当前页面、终端文字、揭示标记、No 按钮位置、背景、音乐开关。
type AppState struct {
	Current    PageID
	Terminal   *TerminalBuffer
	NoButton   NoButtonState
	Background Background
	// OpenMemory 当前打开的回忆弹窗键，空字符串表示弹窗关闭
	OpenMemory string
	// Music 背景音乐开关，可为 nil（无音频设备）
	Music *MusicToggle

	markers map[string]map[string]bool // element -> marker set
}

// NewAppState 创建初始状态（当前页面为 Gate）
func NewAppState() *AppState {
	return &AppState{
		Current:    PageGate,
		Terminal:   NewTerminalBuffer(),
		Background: BackgroundDefault,
		markers:    make(map[string]map[string]bool),
	}
}

// AddMarker 为元素添加状态标记
func (s *AppState) AddMarker(element, marker string) {
	set, ok := s.markers[element]
	if !ok {
		set = make(map[string]bool)
		s.markers[element] = set
	}
	set[marker] = true
}

// RemoveMarker 移除元素上的状态标记
func (s *AppState) RemoveMarker(element, marker string) {
	if set, ok := s.markers[element]; ok {
		delete(set, marker)
	}
}

// HasMarker 检查元素是否带有某个标记
func (s *AppState) HasMarker(element, marker string) bool {
	return s.markers[element][marker]
}

// CountMarker 统计带有某个标记的元素数量
func (s *AppState) CountMarker(marker string) int {
	n := 0
	for _, set := range s.markers {
		if set[marker] {
			n++
		}
	}
	return n
}

// DisplaceNoButton 记录 No 按钮被移动到的位置
func (s *AppState) DisplaceNoButton(x, y float64) {
	s.NoButton = NoButtonState{Displaced: true, X: x, Y: y}
}

// ResetTransient 重置重新开始任务时需要清空的瞬时视觉状态
// 不影响当前页面和音乐开关
func (s *AppState) ResetTransient() {
	s.Terminal.Clear()
	s.markers = make(map[string]map[string]bool)
	s.NoButton = NoButtonState{}
	s.Background = BackgroundDefault
	s.OpenMemory = ""
}

// TerminalBuffer 终端页的文字显示面
// 实现 TextSink，供打字机逐字写入
type TerminalBuffer struct {
	lines []string
}

// NewTerminalBuffer 创建空的终端显示面
func NewTerminalBuffer() *TerminalBuffer {
	return &TerminalBuffer{lines: []string{""}}
}

// AppendRune 在最后一行追加一个字符
func (b *TerminalBuffer) AppendRune(r rune) {
	last := len(b.lines) - 1
	b.lines[last] += string(r)
}

// LineBreak 换行
func (b *TerminalBuffer) LineBreak() {
	b.lines = append(b.lines, "")
}

// Clear 清空所有文字
func (b *TerminalBuffer) Clear() {
	b.lines = []string{""}
}

// Lines 返回当前所有行（最后一行可能是正在输入的行）
func (b *TerminalBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// String 以换行符连接全部文字
func (b *TerminalBuffer) String() string {
	return strings.Join(b.lines, "\n")
}
