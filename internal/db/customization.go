package db

import "gorm.io/gorm"

// ProfileCustomization 保存主页的外观与行为配置，与 Profile 一一对应。
// 所有字段在存储层都是可选的：字符串空值与数值指针 nil 均表示「未设置」，
// 渲染前由 render.Resolve 补齐文档化的默认值，这里不做任何默认值计算。
type ProfileCustomization struct {
	gorm.Model
	ProfileID uint `gorm:"uniqueIndex"`

	// 颜色
	PrimaryColor    string `gorm:"size:32"`
	SecondaryColor  string `gorm:"size:32"`
	BackgroundColor string `gorm:"size:32"`
	TextColor       string `gorm:"size:32"`
	NameColor       string `gorm:"size:32"`

	// 背景
	BackgroundType     string `gorm:"size:16"`
	BackgroundImageURL string `gorm:"size:512"`
	BackgroundVideoURL string `gorm:"size:512"`
	BackgroundBlur     *int
	BackgroundOpacity  *int

	// 布局
	CardStyle   string `gorm:"size:32"`
	CardRadius  *int
	LayoutStyle string `gorm:"size:32"`

	// 头像
	AvatarStyle  string `gorm:"size:16"`
	AvatarBorder bool
	AvatarGlow   bool

	// 字体
	NameFont      string `gorm:"size:64"`
	TextFont      string `gorm:"size:64"`
	TitleFontSize *int
	BioFontSize   *int

	// 效果开关
	TypewriterEnabled bool
	TypewriterSpeed   *int
	TypewriterPhrases []string `gorm:"serializer:json"`
	ClickToEnter      bool
	SparkleName       bool
	ParallaxEnabled   bool
	AudioReactive     bool
	CustomCursor      bool

	// Discord 在线状态
	DiscordUserID        string `gorm:"size:32"`
	DiscordWidgetEnabled bool

	// SEO 元信息，仅由页面 head 消费，渲染管线不关心
	MetaTitle       string `gorm:"size:160"`
	MetaDescription string `gorm:"size:300"`
	MetaImageURL    string `gorm:"size:512"`
	FaviconURL      string `gorm:"size:512"`

	// 自定义 CSS，原样注入页面样式作用域（信任边界见 render.StyleScope）
	CustomCSS string
}

// TableName 返回自定义表名
func (ProfileCustomization) TableName() string {
	return "profile_customization"
}
