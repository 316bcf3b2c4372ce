package db

import "gorm.io/gorm"

// SocialLink 表示主页上的社交平台图标链接。
// Platform 是开放字符串，内置平台映射到固定图标，未知平台回退为首字母图标。
// Username 仅用于 Discord 的「复制 ID」交互。
type SocialLink struct {
	gorm.Model
	ProfileID uint   `gorm:"index"`
	Platform  string `gorm:"size:32;not null"`
	Username  string `gorm:"size:80"`
	URL       string `gorm:"size:512;not null"`
	// 可见性默认值由服务层显式赋值，见 Link 的字段说明
	IsVisible bool
	SortOrder int `gorm:"default:0"`
}

// TableName 返回自定义表名
func (SocialLink) TableName() string {
	return "social_links"
}
