package db

import (
	"time"

	"gorm.io/gorm"
)

// Profile 是对外展示的个人主页记录，通过唯一用户名寻址。
// 与 User 一一对应，在账号首次创建时一并生成。
type Profile struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex"`
	Username    string `gorm:"uniqueIndex;size:64;not null"`
	DisplayName string `gorm:"size:80"`
	Bio         string `gorm:"size:500"`
	AvatarURL   string `gorm:"size:512"`
	BannerURL   string `gorm:"size:512"`
	Views       uint64 `gorm:"default:0"`
}

// ProfileView 记录单个访客对主页的浏览，用于 UV 去重。
type ProfileView struct {
	ID           uint   `gorm:"primarykey"`
	ProfileID    uint   `gorm:"uniqueIndex:idx_profile_visitor"`
	VisitorID    string `gorm:"uniqueIndex:idx_profile_visitor;size:64"`
	LastViewedAt time.Time
}

// TableName 返回自定义表名
func (ProfileView) TableName() string {
	return "profile_views"
}

// LinkClick 记录链接跳转次数的明细。
type LinkClick struct {
	ID        uint `gorm:"primarykey"`
	LinkID    uint `gorm:"index"`
	ProfileID uint `gorm:"index"`
	VisitorID string `gorm:"size:64"`
	ClickedAt time.Time
}

// TableName 返回自定义表名
func (LinkClick) TableName() string {
	return "link_clicks"
}
