package render

import "fmt"

// overlayCSS 是无条件压在背景上的低透明度黑色遮罩，保证前景文字可读。
const overlayCSS = "rgba(0, 0, 0, 0.3)"

// Background 描述整页背景的唯一渲染层及其派生样式。
type Background struct {
	// Kind 取 BackgroundTypeColor / BackgroundTypeImage / BackgroundTypeVideo 之一
	Kind string
	// Color 仅在 Kind=color 时有意义
	Color string
	// SourceURL 仅在 Kind=image/video 时有意义
	SourceURL string
	// Filter 是 CSS filter 值，无模糊时为空串（避免无谓的合成开销）
	Filter string
	// Opacity 为 0~1 的不透明度
	Opacity float64
	// OverlayCSS 是压在背景层之上的遮罩颜色
	OverlayCSS string

	// 视频层的播放属性。开启 click_to_enter 时视频保持静音暂停，
	// 由 EnterGate 在用户显式进入后解除。
	VideoAutoplay bool
	VideoMuted    bool
	VideoLoop     bool
}

// Compose 依据解析后的配置选择唯一背景层（首个命中者生效）：
// 视频（type=video 且有 URL）→ 图片（type=image 且有 URL）→ 纯色。
// URL 缺失时静默降级为纯色，绝不产生破损的媒体层。
func Compose(rc ResolvedCustomization) Background {
	bg := Background{
		Filter:     blurFilter(rc.BackgroundBlur),
		Opacity:    clampOpacity(rc.BackgroundOpacity),
		OverlayCSS: overlayCSS,
	}

	switch {
	case rc.BackgroundType == BackgroundTypeVideo && rc.BackgroundVideoURL != "":
		bg.Kind = BackgroundTypeVideo
		bg.SourceURL = rc.BackgroundVideoURL
		bg.VideoLoop = true
		bg.VideoMuted = true
		bg.VideoAutoplay = !rc.ClickToEnter
	case rc.BackgroundType == BackgroundTypeImage && rc.BackgroundImageURL != "":
		bg.Kind = BackgroundTypeImage
		bg.SourceURL = rc.BackgroundImageURL
	default:
		bg.Kind = BackgroundTypeColor
		bg.Color = rc.BackgroundColor
	}

	return bg
}

// blurFilter 生成 blur(Npx) 滤镜；N<=0 时返回空串，不输出 filter 属性。
func blurFilter(blur int) string {
	if blur <= 0 {
		return ""
	}
	return fmt.Sprintf("blur(%dpx)", blur)
}

// clampOpacity 把存储的 0~100 不透明度换算到 0~1。
// 写入侧应当已校验范围，这里仍对脏数据做钳制，避免产生非法 CSS。
func clampOpacity(opacity int) float64 {
	if opacity < 0 {
		return 0
	}
	if opacity > 100 {
		return 1
	}
	return float64(opacity) / 100
}
