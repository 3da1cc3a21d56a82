package game

import (
	"sort"
	"time"
)

// TimerID 计时器句柄，用于取消
type TimerID uint64

// timer 单个计时任务
type timer struct {
	id       TimerID
	due      time.Duration // 触发时刻（调度器时间轴上的绝对时间）
	interval time.Duration // > 0 表示周期任务
	fn       func()
}

// Scheduler 协作式计时调度器
//
// 所有动画组件（打字机、淡入、背景生成器、通行延迟）都通过 Scheduler
// 安排下一步，然后立即返回，不存在任何阻塞等待。
// 调度器由游戏主循环的 Update 推进，单线程执行，不需要加锁。
//
// 同一次 Update 内到期的任务按触发时刻先后执行（同一时刻按创建顺序），
// 回调中新建的任务若在本次推进范围内到期，也会在本次 Update 中执行。
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []*timer
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1,
		timers: make([]*timer, 0, 16),
	}
}

// After 在 delay 之后执行一次 fn
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if delay < 0 {
		delay = 0
	}
	return s.add(&timer{due: s.now + delay, fn: fn})
}

// Every 每隔 interval 执行一次 fn（首次在 interval 之后）
// interval <= 0 时不做任何调度，返回 0
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 {
		return 0
	}
	return s.add(&timer{due: s.now + interval, interval: interval, fn: fn})
}

func (s *Scheduler) add(t *timer) TimerID {
	t.id = s.nextID
	s.nextID++
	s.timers = append(s.timers, t)
	return t.id
}

// Cancel 取消计时任务，对已执行或不存在的ID无效果
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// Update 按秒推进时间轴（游戏主循环每帧调用）
func (s *Scheduler) Update(deltaTime float64) {
	s.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Advance 推进时间轴并执行所有到期任务
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := s.now + d

	for {
		next := s.earliest()
		if next == nil || next.due > target {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			s.Cancel(next.id)
		}
		next.fn()
	}

	s.now = target
}

// earliest 返回最早到期的任务
func (s *Scheduler) earliest() *timer {
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due == s.timers[j].due {
			return s.timers[i].id < s.timers[j].id
		}
		return s.timers[i].due < s.timers[j].due
	})
	return s.timers[0]
}

// Now 返回调度器当前时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending 返回尚未执行的任务数
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
