package render

import (
	"sync"
	"time"
)

// TypewriterMode 表示打字机状态机所处的阶段。
type TypewriterMode int

const (
	ModeTyping TypewriterMode = iota
	ModePausedAtFull
	ModeDeleting
	ModePausedAtEmpty
)

// 打字机的固定停顿：整句展示 2000ms，清空后换句前 500ms。
const (
	typewriterFullPause  = 2 * time.Second
	typewriterEmptyPause = 500 * time.Millisecond
)

// TypewriterFrame 是状态机单步推进后的快照：
// 当前展示文本、所处阶段、短语下标，以及距下一步的延迟。
type TypewriterFrame struct {
	Text        string
	Mode        TypewriterMode
	PhraseIndex int
	Delay       time.Duration
}

// Typewriter 是驱动打字机效果的纯状态机。
// 打字每拍一个字符，删除速度是打字的两倍；短语循环推进，尾句回绕到 0。
// 状态推进与具体渲染技术解耦，由 TypewriterRunner 负责定时调度。
type Typewriter struct {
	phrases   []string
	speed     time.Duration
	phraseIdx int
	charIdx   int
	mode      TypewriterMode
}

// NewTypewriter 构造状态机。speedMS<=0 时取默认打字速度。
// 初始状态：Typing，短语下标 0，字符下标 0。
func NewTypewriter(phrases []string, speedMS int) *Typewriter {
	if speedMS <= 0 {
		speedMS = DefaultTypewriterSpeed
	}
	kept := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if phrase != "" {
			kept = append(kept, phrase)
		}
	}
	return &Typewriter{
		phrases: kept,
		speed:   time.Duration(speedMS) * time.Millisecond,
		mode:    ModeTyping,
	}
}

// Inert 报告状态机是否无事可做（空短语列表不调度任何定时器）。
func (t *Typewriter) Inert() bool {
	return len(t.phrases) == 0
}

// Tick 推进一步并返回新的帧。对 Inert 状态机调用返回零值帧。
func (t *Typewriter) Tick() TypewriterFrame {
	if t.Inert() {
		return TypewriterFrame{}
	}

	phrase := []rune(t.phrases[t.phraseIdx])

	switch t.mode {
	case ModeTyping:
		t.charIdx++
		if t.charIdx >= len(phrase) {
			t.charIdx = len(phrase)
			t.mode = ModePausedAtFull
			return t.frame(phrase, typewriterFullPause)
		}
		return t.frame(phrase, t.speed)

	case ModePausedAtFull:
		t.mode = ModeDeleting
		fallthrough

	case ModeDeleting:
		t.charIdx--
		if t.charIdx <= 0 {
			t.charIdx = 0
			t.mode = ModePausedAtEmpty
			// 清空后换句：循环推进短语下标
			frame := t.frame(phrase, typewriterEmptyPause)
			t.phraseIdx = (t.phraseIdx + 1) % len(t.phrases)
			return frame
		}
		// 删除是打字速度的两倍
		return t.frame(phrase, t.speed/2)

	default: // ModePausedAtEmpty
		t.mode = ModeTyping
		t.charIdx = 1
		phrase = []rune(t.phrases[t.phraseIdx])
		if len(phrase) == 1 {
			t.mode = ModePausedAtFull
			return t.frame(phrase, typewriterFullPause)
		}
		return t.frame(phrase, t.speed)
	}
}

func (t *Typewriter) frame(phrase []rune, delay time.Duration) TypewriterFrame {
	return TypewriterFrame{
		Text:        string(phrase[:t.charIdx]),
		Mode:        t.mode,
		PhraseIndex: t.phraseIdx,
		Delay:       delay,
	}
}

// TypewriterRunner 以单条定时器链驱动状态机，并把每一帧交给回调。
// 同一时刻至多一只定时器在飞，帧推进严格串行。
type TypewriterRunner struct {
	mu      sync.Mutex
	machine *Typewriter
	emit    func(TypewriterFrame)
	timer   *time.Timer
	stopped bool
}

// StartTypewriter 启动打字机效果。空短语列表不调度定时器，直接返回惰性 runner。
func StartTypewriter(machine *Typewriter, emit func(TypewriterFrame)) *TypewriterRunner {
	runner := &TypewriterRunner{machine: machine, emit: emit}
	if machine.Inert() || emit == nil {
		runner.stopped = true
		return runner
	}
	runner.step()
	return runner
}

func (r *TypewriterRunner) step() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}

	frame := r.machine.Tick()
	r.timer = time.AfterFunc(frame.Delay, r.step)
	// 回调在持锁状态下执行，约定为非阻塞，避免卡住定时器链
	r.emit(frame)
}

// Stop 取消定时器链。幂等；停止后不再产生任何帧。
// 重新启动需要用全新的状态机从短语下标 0 开始。
func (r *TypewriterRunner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}
