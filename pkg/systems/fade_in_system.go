package systems

import (
	"time"

	"github.com/gonewx/moonmission/pkg/config"
	"github.com/gonewx/moonmission/pkg/game"
	"github.com/gonewx/moonmission/pkg/utils"
)

// fadeItem 一行淡入文字的动画状态
type fadeItem struct {
	started bool
	elapsed float64 // 开始淡入后经过的秒数
}

// FadeInSystem 页面文字的延迟淡入上移动画
//
// 每行文字有自己的延迟（毫秒），延迟到期后在 1 秒内从下方 30 像素处淡入到原位。
// 每次 Play 都会先取消上一轮尚未开始的计时，并把所有行重置为隐藏，
// 因此重复进入同一页面会重新播放而不会叠加。
type FadeInSystem struct {
	scheduler *game.Scheduler
	items     []fadeItem
	timers    []game.TimerID

	// Duration 单行动画时长（秒）
	Duration float64
	// Rise 起始时向下的偏移（像素）
	Rise float64
}

// NewFadeInSystem 创建淡入动画系统
func NewFadeInSystem(scheduler *game.Scheduler) *FadeInSystem {
	return &FadeInSystem{
		scheduler: scheduler,
		Duration:  config.FadeInDurationSeconds,
		Rise:      config.FadeInRise,
	}
}

// Play 按给定延迟（毫秒）开始一轮淡入
// 延迟为 0 的行在下一次 Update 时开始
func (s *FadeInSystem) Play(delaysMs []int) {
	s.Reset()
	s.items = make([]fadeItem, len(delaysMs))
	s.timers = make([]game.TimerID, 0, len(delaysMs))

	for i, delay := range delaysMs {
		if delay < 0 {
			delay = 0
		}
		idx := i
		s.timers = append(s.timers, s.scheduler.After(time.Duration(delay)*time.Millisecond, func() {
			if idx < len(s.items) {
				s.items[idx].started = true
			}
		}))
	}
}

// PlayLines 以文字行的延迟开始一轮淡入
func (s *FadeInSystem) PlayLines(lines []config.FadeLine) {
	delays := make([]int, len(lines))
	for i, line := range lines {
		delays[i] = line.Delay
	}
	s.Play(delays)
}

// Reset 取消尚未开始的淡入并隐藏所有行
func (s *FadeInSystem) Reset() {
	for _, id := range s.timers {
		s.scheduler.Cancel(id)
	}
	s.timers = nil
	for i := range s.items {
		s.items[i] = fadeItem{}
	}
}

// Update 推进已开始的行
func (s *FadeInSystem) Update(deltaTime float64) {
	for i := range s.items {
		if s.items[i].started {
			s.items[i].elapsed += deltaTime
		}
	}
}

// Appearance 返回第 i 行的透明度和竖直偏移
// 未开始的行完全透明
func (s *FadeInSystem) Appearance(i int) (alpha, offsetY float64) {
	if i < 0 || i >= len(s.items) || !s.items[i].started {
		return 0, s.Rise
	}
	if s.Duration <= 0 {
		return 1, 0
	}
	return utils.FadeInUp(s.items[i].elapsed/s.Duration, s.Rise)
}

// Started 第 i 行是否已开始淡入
func (s *FadeInSystem) Started(i int) bool {
	return i >= 0 && i < len(s.items) && s.items[i].started
}

// Done 是否所有行都已完全显示
func (s *FadeInSystem) Done() bool {
	for _, item := range s.items {
		if !item.started || item.elapsed < s.Duration {
			return false
		}
	}
	return true
}
