package render

import (
	"sync"
	"testing"
	"time"
)

func TestTypewriterSpecifiedSequence(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter([]string{"ab", "cd"}, 100)

	// 两拍打出整句
	first := tw.Tick()
	if first.Text != "a" || first.Mode != ModeTyping || first.Delay != 100*time.Millisecond {
		t.Fatalf("unexpected first frame: %+v", first)
	}
	second := tw.Tick()
	if second.Text != "ab" {
		t.Fatalf("expected full phrase after 2 ticks, got %q", second.Text)
	}
	if second.Mode != ModePausedAtFull || second.Delay != 2*time.Second {
		t.Fatalf("expected 2000ms pause at full phrase, got %+v", second)
	}

	// 停顿后第一拍删除，且删除速度是打字的两倍
	third := tw.Tick()
	if third.Text != "a" {
		t.Fatalf("expected %q after one deletion tick, got %q", "a", third.Text)
	}
	if third.Mode != ModeDeleting || third.Delay != 50*time.Millisecond {
		t.Fatalf("deletion should run at half the typing interval: %+v", third)
	}

	// 删空后进入句间停顿并循环推进到下一句
	fourth := tw.Tick()
	if fourth.Text != "" || fourth.Mode != ModePausedAtEmpty || fourth.Delay != 500*time.Millisecond {
		t.Fatalf("unexpected empty-pause frame: %+v", fourth)
	}
	fifth := tw.Tick()
	if fifth.Text != "c" || fifth.PhraseIndex != 1 {
		t.Fatalf("machine should start typing the next phrase, got %+v", fifth)
	}
}

func TestTypewriterWrapsToFirstPhrase(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter([]string{"x", "y"}, 10)

	var last TypewriterFrame
	// 单字符短语每句两拍（打出、删空），四拍跑完两句，第五拍回绕到第一句
	for i := 0; i < 5; i++ {
		last = tw.Tick()
	}
	if last.PhraseIndex != 0 || last.Text != "x" {
		t.Fatalf("expected wrap back to phrase 0, got frame %+v", last)
	}
}

func TestTypewriterEmptyPhraseListIsInert(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter(nil, 100)
	if !tw.Inert() {
		t.Fatalf("empty phrase list must be inert")
	}

	// Tick 对惰性状态机不做任何事，也绝不 panic
	frame := tw.Tick()
	if frame.Text != "" || frame.Delay != 0 {
		t.Fatalf("inert machine should produce zero frames, got %+v", frame)
	}

	fired := false
	runner := StartTypewriter(tw, func(TypewriterFrame) { fired = true })
	defer runner.Stop()
	time.Sleep(20 * time.Millisecond)
	if fired {
		t.Fatalf("inert machine must not schedule a timer")
	}
}

func TestTypewriterBlankPhrasesAreDropped(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter([]string{"", ""}, 100)
	if !tw.Inert() {
		t.Fatalf("all-blank phrase list must be inert")
	}
}

func TestTypewriterRunnerStopCancelsTimerChain(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	frames := 0

	runner := StartTypewriter(NewTypewriter([]string{"hello"}, 1), func(TypewriterFrame) {
		mu.Lock()
		frames++
		mu.Unlock()
	})

	time.Sleep(20 * time.Millisecond)
	runner.Stop()

	mu.Lock()
	seen := frames
	mu.Unlock()
	if seen == 0 {
		t.Fatalf("runner should have produced frames before stop")
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	after := frames
	mu.Unlock()
	if after != seen {
		t.Fatalf("frames leaked after stop: %d -> %d", seen, after)
	}

	// Stop 幂等
	runner.Stop()
}
