package db

import "gorm.io/gorm"

// Widget 表示嵌入主页的第三方内容块。
// Config 是按 WidgetType 取形的不透明键值映射，具体必需键由
// render.ResolveEmbed 按类型声明，存储层不做校验。
type Widget struct {
	gorm.Model
	ProfileID  uint              `gorm:"index"`
	WidgetType string            `gorm:"size:32;not null"`
	Config     map[string]string `gorm:"serializer:json"`
	Width      string            `gorm:"size:32"`
	Height     string            `gorm:"size:32"`
	// 可见性默认值由服务层显式赋值，见 Link 的字段说明
	IsVisible bool
	SortOrder int `gorm:"default:0"`
}
