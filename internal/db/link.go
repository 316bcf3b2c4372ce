package db

import "gorm.io/gorm"

// Link 表示主页上的一条跳转链接。
// 只有 IsVisible=true 的链接会在前台渲染，按 SortOrder 升序排列，
// 同序值按插入顺序稳定排序（主键递增保证）。
type Link struct {
	gorm.Model
	ProfileID       uint   `gorm:"index"`
	Title           string `gorm:"size:120;not null"`
	URL             string `gorm:"size:512;not null"`
	Icon            string `gorm:"size:50"`
	BackgroundColor string `gorm:"size:32"`
	TextColor       string `gorm:"size:32"`
	BorderColor     string `gorm:"size:32"`
	Style           string `gorm:"size:16"`
	Animation       string `gorm:"size:16"`
	Clicks          uint64 `gorm:"default:0"`
	// 不能挂 default 标签：GORM 对带默认值的零值字段不写入 INSERT，
	// 会把显式创建的隐藏行存成可见。可见性默认值由服务层显式赋值。
	IsVisible bool
	SortOrder int `gorm:"default:0"`
}
