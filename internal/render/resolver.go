package render

import (
	"strings"

	"github.com/sinswtf/internal/db"
)

// 背景类型
const (
	BackgroundTypeColor = "color"
	BackgroundTypeImage = "image"
	BackgroundTypeVideo = "video"
)

// 卡片样式，未知值回退到 CardClassic
const (
	CardClassic       = "classic"
	CardFrostedSquare = "frosted_square"
	CardFrostedSoft   = "frosted_soft"
	CardOutlined      = "outlined"
	CardAurora        = "aurora"
	CardTransparent   = "transparent"
)

// 布局样式，未知值回退到 LayoutFloating
const (
	LayoutFloating = "floating"
	LayoutStacked  = "stacked"
	LayoutCompact  = "compact"
)

// 头像形状，未知值回退到 AvatarCircle
const (
	AvatarCircle  = "circle"
	AvatarSquare  = "square"
	AvatarRounded = "rounded"
	AvatarHexagon = "hexagon"
)

// 各字段的文档化默认值。解析是逐字段独立的静态回退，不做跨字段推导。
const (
	DefaultPrimaryColor    = "#ff3333"
	DefaultSecondaryColor  = "#ff6600"
	DefaultBackgroundColor = "#0a0a0a"
	DefaultTextColor       = "#ffffff"
	DefaultNameColor       = "#ffffff"
	DefaultFontFamily      = "Inter"
	DefaultCardRadius      = 16
	DefaultTitleFontSize   = 24
	DefaultBioFontSize     = 16
	DefaultTypewriterSpeed = 100
	DefaultBackgroundBlur  = 0
	DefaultOpacity         = 100
)

// ResolvedCustomization 是渲染管线消费的完整配置。
// 每个字段要么来自存储值，要么取文档化默认值，不存在未定义分支。
type ResolvedCustomization struct {
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	NameColor       string

	BackgroundType     string
	BackgroundImageURL string
	BackgroundVideoURL string
	BackgroundBlur     int
	BackgroundOpacity  int

	CardStyle   string
	CardRadius  int
	LayoutStyle string

	AvatarStyle  string
	AvatarBorder bool
	AvatarGlow   bool

	NameFont      string
	TextFont      string
	TitleFontSize int
	BioFontSize   int

	TypewriterEnabled bool
	TypewriterSpeed   int
	TypewriterPhrases []string
	ClickToEnter      bool
	SparkleName       bool
	ParallaxEnabled   bool
	AudioReactive     bool
	CustomCursor      bool

	DiscordUserID        string
	DiscordWidgetEnabled bool

	CustomCSS string
}

// Resolve 将可能为空或稀疏的定制记录补齐为完整配置。
// 纯函数：不读取外部状态，不校验数值范围（范围钳制在 Compositor 边界完成）。
func Resolve(row *db.ProfileCustomization) ResolvedCustomization {
	if row == nil {
		row = &db.ProfileCustomization{}
	}

	return ResolvedCustomization{
		PrimaryColor:    fallbackString(row.PrimaryColor, DefaultPrimaryColor),
		SecondaryColor:  fallbackString(row.SecondaryColor, DefaultSecondaryColor),
		BackgroundColor: fallbackString(row.BackgroundColor, DefaultBackgroundColor),
		TextColor:       fallbackString(row.TextColor, DefaultTextColor),
		NameColor:       fallbackString(row.NameColor, DefaultNameColor),

		BackgroundType:     normalizeEnum(row.BackgroundType, BackgroundTypeColor, BackgroundTypeImage, BackgroundTypeVideo),
		BackgroundImageURL: strings.TrimSpace(row.BackgroundImageURL),
		BackgroundVideoURL: strings.TrimSpace(row.BackgroundVideoURL),
		BackgroundBlur:     fallbackInt(row.BackgroundBlur, DefaultBackgroundBlur),
		BackgroundOpacity:  fallbackInt(row.BackgroundOpacity, DefaultOpacity),

		CardStyle:   normalizeEnum(row.CardStyle, CardClassic, CardFrostedSquare, CardFrostedSoft, CardOutlined, CardAurora, CardTransparent),
		CardRadius:  fallbackInt(row.CardRadius, DefaultCardRadius),
		LayoutStyle: normalizeEnum(row.LayoutStyle, LayoutFloating, LayoutStacked, LayoutCompact),

		AvatarStyle:  normalizeEnum(row.AvatarStyle, AvatarCircle, AvatarSquare, AvatarRounded, AvatarHexagon),
		AvatarBorder: row.AvatarBorder,
		AvatarGlow:   row.AvatarGlow,

		NameFont:      fallbackString(row.NameFont, DefaultFontFamily),
		TextFont:      fallbackString(row.TextFont, DefaultFontFamily),
		TitleFontSize: fallbackInt(row.TitleFontSize, DefaultTitleFontSize),
		BioFontSize:   fallbackInt(row.BioFontSize, DefaultBioFontSize),

		TypewriterEnabled: row.TypewriterEnabled,
		TypewriterSpeed:   fallbackInt(row.TypewriterSpeed, DefaultTypewriterSpeed),
		TypewriterPhrases: append([]string(nil), row.TypewriterPhrases...),
		ClickToEnter:      row.ClickToEnter,
		SparkleName:       row.SparkleName,
		ParallaxEnabled:   row.ParallaxEnabled,
		AudioReactive:     row.AudioReactive,
		CustomCursor:      row.CustomCursor,

		DiscordUserID:        strings.TrimSpace(row.DiscordUserID),
		DiscordWidgetEnabled: row.DiscordWidgetEnabled,

		CustomCSS: row.CustomCSS,
	}
}

func fallbackString(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func fallbackInt(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

// normalizeEnum 将存储值匹配到合法枚举，未知值回退到第一个变体。
func normalizeEnum(value string, variants ...string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	for _, variant := range variants {
		if trimmed == variant {
			return variant
		}
	}
	return variants[0]
}
