package render

import (
	"fmt"
	htmlstd "html"
	"strings"
)

// 支持的 widget 类型。soundcloud/twitter/custom 暂无嵌入模板，按未知类型静默跳过。
const (
	WidgetYouTube    = "youtube"
	WidgetSpotify    = "spotify"
	WidgetDiscord    = "discord"
	WidgetSoundCloud = "soundcloud"
	WidgetTwitter    = "twitter"
	WidgetCustom     = "custom"
)

// WidgetEmbed 描述一个可渲染的第三方嵌入帧。
type WidgetEmbed struct {
	Platform string
	EmbedURL string
	Allow    string
	Sandbox  string
	Class    string
}

// ResolveEmbed 把 widget 类型与不透明配置映射为具体的嵌入 URL。
// URL 模板必须与第三方约定逐字节一致；必需键缺失时以空串代入而不是失败，
// 未识别的类型返回 ok=false，由调用方静默跳过。
func ResolveEmbed(widgetType string, config map[string]string) (WidgetEmbed, bool) {
	switch strings.ToLower(strings.TrimSpace(widgetType)) {
	case WidgetYouTube:
		return WidgetEmbed{
			Platform: WidgetYouTube,
			EmbedURL: fmt.Sprintf("https://www.youtube.com/embed/%s", configValue(config, "videoId")),
			Allow:    "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture",
			Class:    "widget-youtube",
		}, true
	case WidgetSpotify:
		return WidgetEmbed{
			Platform: WidgetSpotify,
			EmbedURL: fmt.Sprintf("https://open.spotify.com/embed/track/%s", configValue(config, "trackId")),
			Allow:    "encrypted-media",
			Class:    "widget-spotify",
		}, true
	case WidgetDiscord:
		return WidgetEmbed{
			Platform: WidgetDiscord,
			EmbedURL: fmt.Sprintf("https://discord.com/widget?id=%s&theme=dark", configValue(config, "serverId")),
			Sandbox:  "allow-popups allow-popups-to-escape-sandbox allow-same-origin allow-scripts",
			Class:    "widget-discord",
		}, true
	default:
		return WidgetEmbed{}, false
	}
}

// EmbedHTML 把嵌入帧渲染为 iframe 标签，所有属性做 HTML 转义。
// width/height 是 widget 声明的 CSS 长度。
func EmbedHTML(embed WidgetEmbed, width, height string) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, ` src="%s"`, htmlstd.EscapeString(embed.EmbedURL))
	if embed.Allow != "" {
		fmt.Fprintf(&attrs, ` allow="%s"`, htmlstd.EscapeString(embed.Allow))
	}
	if embed.Sandbox != "" {
		fmt.Fprintf(&attrs, ` sandbox="%s"`, htmlstd.EscapeString(embed.Sandbox))
	}

	return fmt.Sprintf(
		`<div class="widget %s" style="width: %s; height: %s;"><iframe%s loading="lazy" frameborder="0" allowfullscreen></iframe></div>`,
		htmlstd.EscapeString(embed.Class),
		htmlstd.EscapeString(widgetLength(width)),
		htmlstd.EscapeString(widgetLength(height)),
		attrs.String(),
	)
}

func configValue(config map[string]string, key string) string {
	if config == nil {
		return ""
	}
	return strings.TrimSpace(config[key])
}

func widgetLength(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "100%"
	}
	return trimmed
}
