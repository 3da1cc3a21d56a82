package game

import (
	"testing"
	"time"
)

// recordingSink 记录打字机输出事件
type recordingSink struct {
	events []string
}

func (r *recordingSink) AppendRune(ch rune) { r.events = append(r.events, string(ch)) }
func (r *recordingSink) LineBreak()         { r.events = append(r.events, "<br>") }

func TestTypewriterEventOrder(t *testing.T) {
	s := NewScheduler()
	sink := &recordingSink{}
	tw := NewTypewriter(s, sink)

	done := 0
	tw.Play([]string{"HI", "OK"}, func() {
		sink.events = append(sink.events, "done")
		done++
	})

	s.Advance(10 * time.Second)

	want := []string{"H", "I", "<br>", "O", "K", "<br>", "done"}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %v, want %v", sink.events, want)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Fatalf("events = %v, want %v", sink.events, want)
		}
	}

	chars, breaks := 0, 0
	for _, e := range sink.events {
		switch e {
		case "<br>":
			breaks++
		case "done":
		default:
			chars++
		}
	}
	if chars != 4 || breaks != 2 || done != 1 {
		t.Errorf("chars=%d breaks=%d done=%d, want 4/2/1", chars, breaks, done)
	}
	if tw.Running() {
		t.Error("typewriter still running after completion")
	}
}

func TestTypewriterTiming(t *testing.T) {
	s := NewScheduler()
	sink := &recordingSink{}
	tw := NewTypewriter(s, sink)

	done := false
	tw.Play([]string{"HI"}, func() { done = true })

	// 第一个字符立即输出
	if len(sink.events) != 1 {
		t.Fatalf("events after Play = %v, want first char only", sink.events)
	}

	// 50ms: 第二个字符
	s.Advance(50 * time.Millisecond)
	if len(sink.events) != 2 {
		t.Fatalf("events at 50ms = %v", sink.events)
	}

	// 100ms: 换行
	s.Advance(50 * time.Millisecond)
	if len(sink.events) != 3 || sink.events[2] != "<br>" {
		t.Fatalf("events at 100ms = %v", sink.events)
	}

	// 换行后 500ms 到达末尾，再等 2000ms 才完成
	s.Advance(500*time.Millisecond + 1999*time.Millisecond)
	if done {
		t.Fatal("completion fired before settle delay elapsed")
	}
	s.Advance(time.Millisecond)
	if !done {
		t.Fatal("completion not fired after settle delay")
	}
}

func TestTypewriterRestartInvalidatesPreviousJob(t *testing.T) {
	s := NewScheduler()
	sink := &recordingSink{}
	tw := NewTypewriter(s, sink)

	firstDone := false
	tw.Play([]string{"ABCDEFGH"}, func() { firstDone = true })
	s.Advance(120 * time.Millisecond) // A B C

	sink.events = nil
	secondDone := 0
	tw.Play([]string{"XY"}, func() { secondDone++ })
	s.Advance(10 * time.Second)

	want := []string{"X", "Y", "<br>"}
	if len(sink.events) != len(want) {
		t.Fatalf("events after restart = %v, want %v", sink.events, want)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Fatalf("events after restart = %v, want %v", sink.events, want)
		}
	}
	if firstDone {
		t.Error("superseded job signalled completion")
	}
	if secondDone != 1 {
		t.Errorf("second job completion count = %d, want 1", secondDone)
	}
}

func TestTypewriterCancel(t *testing.T) {
	s := NewScheduler()
	sink := &recordingSink{}
	tw := NewTypewriter(s, sink)

	done := false
	tw.Play([]string{"HELLO"}, func() { done = true })
	tw.Cancel()
	s.Advance(10 * time.Second)

	if len(sink.events) != 1 {
		t.Errorf("events after cancel = %v, want only the first char", sink.events)
	}
	if done || tw.Running() {
		t.Error("cancelled job should neither complete nor keep running")
	}
}

func TestTypewriterEmptyLines(t *testing.T) {
	s := NewScheduler()
	sink := &recordingSink{}
	tw := NewTypewriter(s, sink)

	done := false
	tw.Play([]string{"", "A"}, func() { done = true })
	s.Advance(10 * time.Second)

	want := []string{"<br>", "A", "<br>"}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %v, want %v", sink.events, want)
	}
	if !done {
		t.Error("completion not signalled")
	}
}

func TestTypewriterUnicodeRunes(t *testing.T) {
	s := NewScheduler()
	buf := NewTerminalBuffer()
	tw := NewTypewriter(s, buf)

	tw.Play([]string{"██ 100%"}, nil)
	s.Advance(10 * time.Second)

	lines := buf.Lines()
	if lines[0] != "██ 100%" {
		t.Errorf("line = %q, want %q", lines[0], "██ 100%")
	}
}
