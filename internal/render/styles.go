package render

import (
	"fmt"
	"sort"
	"strings"
)

// CSSVariables 返回注入页面根元素的自定义属性集合，键按字典序稳定输出。
func CSSVariables(rc ResolvedCustomization) string {
	vars := map[string]string{
		"--profile-primary":   rc.PrimaryColor,
		"--profile-secondary": rc.SecondaryColor,
		"--profile-bg":        rc.BackgroundColor,
		"--profile-text":      rc.TextColor,
		"--profile-name":      rc.NameColor,
	}

	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&sb, "%s: %s; ", key, vars[key])
	}
	return strings.TrimSpace(sb.String())
}

// AvatarClass 根据头像配置派生样式类。
func AvatarClass(rc ResolvedCustomization) string {
	shapes := map[string]string{
		AvatarCircle:  "avatar-circle",
		AvatarSquare:  "avatar-square",
		AvatarRounded: "avatar-rounded",
		AvatarHexagon: "avatar-hexagon",
	}

	class, ok := shapes[rc.AvatarStyle]
	if !ok {
		class = shapes[AvatarCircle]
	}

	if rc.AvatarBorder {
		class += " avatar-border"
	}
	if rc.AvatarGlow {
		class += " avatar-glow"
	}
	return class
}

// CardClass 返回主卡片的样式类。
func CardClass(rc ResolvedCustomization) string {
	return "card-" + rc.CardStyle
}

// CardStyleCSS 返回主卡片的内联样式（圆角来自配置）。
func CardStyleCSS(rc ResolvedCustomization) string {
	return fmt.Sprintf("border-radius: %dpx;", rc.CardRadius)
}

// LayoutClass 返回页面布局的样式类。
func LayoutClass(rc ResolvedCustomization) string {
	return "layout-" + rc.LayoutStyle
}

// NameClass 返回昵称文字的样式类，包含可选的闪光装饰。
func NameClass(rc ResolvedCustomization) string {
	class := "profile-name"
	if rc.SparkleName {
		class += " sparkle"
	}
	return class
}

// 链接样式枚举，未知值回退到 LinkStyleDefault
const (
	LinkStyleDefault  = "default"
	LinkStyleOutline  = "outline"
	LinkStyleFilled   = "filled"
	LinkStyleGradient = "gradient"
)

// LinkAppearance 是单条链接的派生呈现样式。
type LinkAppearance struct {
	BackgroundColor string
	TextColor       string
	BorderColor     string
	BorderWidth     string
	Class           string
}

// ResolveLinkAppearance 合并链接自身的覆盖色与全局主题色。
// 覆盖色缺失时回退：背景 → 主色的 20% 透明度；文字 → 主题文字色；描边 → 主色。
func ResolveLinkAppearance(rc ResolvedCustomization, style, bgColor, textColor, borderColor string) LinkAppearance {
	normalized := normalizeEnum(style, LinkStyleDefault, LinkStyleOutline, LinkStyleFilled, LinkStyleGradient)

	appearance := LinkAppearance{
		BackgroundColor: fallbackString(bgColor, rc.PrimaryColor+"20"),
		TextColor:       fallbackString(textColor, rc.TextColor),
		BorderColor:     fallbackString(borderColor, rc.PrimaryColor),
		BorderWidth:     "0",
		Class:           "link-" + normalized,
	}
	if normalized == LinkStyleOutline {
		appearance.BorderWidth = "2px"
	}
	return appearance
}
