package render

import (
	"fmt"
	"sync"
)

// parallaxDivisor 控制倾斜幅度：旋转角与指针偏移量的比例。
const parallaxDivisor = 20

// NeutralTransform 是指针离开卡片后的复位变换。
const NeutralTransform = "perspective(1000px) rotateX(0deg) rotateY(0deg)"

// ParallaxTilt 根据指针相对卡片中心的偏移计算旋转角（单位：度）。
// rotateX = Δy/20，rotateY = -Δx/20，是瞬时指针位置的纯函数，无惯性。
func ParallaxTilt(deltaX, deltaY float64) (rotateX, rotateY float64) {
	rotateX = deltaY / parallaxDivisor
	rotateY = -deltaX / parallaxDivisor
	// 归一 IEEE 负零，中心指针不能格式化出 "-0.00deg"
	if rotateX == 0 {
		rotateX = 0
	}
	if rotateY == 0 {
		rotateY = 0
	}
	return rotateX, rotateY
}

// ParallaxTransform 把指针在卡片内的绝对坐标换算为 3D 透视变换。
// width/height 是卡片包围盒尺寸，pointerX/pointerY 是盒内坐标。
func ParallaxTransform(width, height, pointerX, pointerY float64) string {
	rotateX, rotateY := ParallaxTilt(pointerX-width/2, pointerY-height/2)
	return fmt.Sprintf("perspective(1000px) rotateX(%.2fdeg) rotateY(%.2fdeg)", rotateX, rotateY)
}

// enterVolume 是用户显式进入后背景视频的固定音量。
const enterVolume = 0.5

// EnterResult 描述进入动作触发的媒体变化。
type EnterResult struct {
	// PlayVideo 为真时应解除视频静音并以 Volume 开始播放
	PlayVideo bool
	Volume    float64
}

// EnterGate 实现 click_to_enter 的单向门：
// Gated 状态下整页被遮罩覆盖且音视频保持静音暂停，
// 用户单击后进入 Entered 状态并且不可回退。
type EnterGate struct {
	mu       sync.Mutex
	enabled  bool
	hasVideo bool
	entered  bool
}

// NewEnterGate 构造进入门。未启用 click_to_enter 时门天然处于已进入状态。
func NewEnterGate(rc ResolvedCustomization, bg Background) *EnterGate {
	return &EnterGate{
		enabled:  rc.ClickToEnter,
		hasVideo: bg.Kind == BackgroundTypeVideo,
		entered:  !rc.ClickToEnter,
	}
}

// Entered 报告访客是否已经越过遮罩。
func (g *EnterGate) Entered() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.entered
}

// Enter 处理访客的进入点击。只有第一次调用产生媒体副作用，之后均为空操作。
func (g *EnterGate) Enter() EnterResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.entered {
		return EnterResult{}
	}
	g.entered = true
	if !g.hasVideo {
		return EnterResult{}
	}
	return EnterResult{PlayVideo: true, Volume: enterVolume}
}
