package game

import "time"

// 打字机默认节奏
const (
	DefaultCharDelay   = 50 * time.Millisecond
	DefaultLineDelay   = 500 * time.Millisecond
	DefaultSettleDelay = 2000 * time.Millisecond
)

// TextSink 打字机的输出面
type TextSink interface {
	AppendRune(r rune)
	LineBreak()
}

// Typewriter 打字机引擎
//
// 按固定间隔逐字输出多行文字：每个字符间隔 CharDelay，
// 一行结束后换行并停顿 LineDelay，最后一行结束后等待 SettleDelay 再通知完成。
//
// 每次 Play 都会开始一个新的任务代（generation），
// 旧任务尚未执行的步骤在检测到代数变化后直接丢弃，因此快速重复触发不会叠加输出。
type Typewriter struct {
	scheduler *Scheduler
	sink      TextSink

	CharDelay   time.Duration
	LineDelay   time.Duration
	SettleDelay time.Duration

	generation uint64
	running    bool
}

// typewriterJob 一次播放任务
type typewriterJob struct {
	generation uint64
	lines      [][]rune
	line       int
	char       int
	onDone     func()
}

// NewTypewriter 创建打字机
func NewTypewriter(scheduler *Scheduler, sink TextSink) *Typewriter {
	return &Typewriter{
		scheduler:   scheduler,
		sink:        sink,
		CharDelay:   DefaultCharDelay,
		LineDelay:   DefaultLineDelay,
		SettleDelay: DefaultSettleDelay,
	}
}

// Play 开始播放，第一个字符立即输出
// onDone 可为 nil
func (tw *Typewriter) Play(lines []string, onDone func()) {
	tw.generation++
	tw.running = true

	job := &typewriterJob{
		generation: tw.generation,
		lines:      make([][]rune, len(lines)),
		onDone:     onDone,
	}
	for i, line := range lines {
		job.lines[i] = []rune(line)
	}

	tw.step(job)
}

// Cancel 作废正在进行的任务（不会触发完成回调）
func (tw *Typewriter) Cancel() {
	tw.generation++
	tw.running = false
}

// Running 是否有任务正在进行
func (tw *Typewriter) Running() bool {
	return tw.running
}

// step 执行一步并安排下一步
func (tw *Typewriter) step(job *typewriterJob) {
	if job.generation != tw.generation {
		return // 已被新任务取代
	}

	if job.line >= len(job.lines) {
		tw.scheduler.After(tw.SettleDelay, func() {
			if job.generation != tw.generation {
				return
			}
			tw.running = false
			if job.onDone != nil {
				job.onDone()
			}
		})
		return
	}

	current := job.lines[job.line]
	if job.char < len(current) {
		tw.sink.AppendRune(current[job.char])
		job.char++
		tw.scheduler.After(tw.CharDelay, func() { tw.step(job) })
		return
	}

	tw.sink.LineBreak()
	job.line++
	job.char = 0
	tw.scheduler.After(tw.LineDelay, func() { tw.step(job) })
}
