package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrLinkNotFound 在指定的链接不存在时返回
	ErrLinkNotFound = errors.New("link not found")
	// ErrLinkInvalidInput 在输入数据不完整时返回
	ErrLinkInvalidInput = errors.New("invalid link input")
)

// LinkService 负责主页链接的增删改查与点击计数。
type LinkService struct {
	db *gorm.DB
}

// NewLinkService 构造 LinkService
func NewLinkService(gdb *gorm.DB) *LinkService {
	return &LinkService{db: gdb}
}

// LinkInput 描述创建或更新链接时可设置的字段。
// SortOrder/IsVisible 使用指针判断是否显式传入。
type LinkInput struct {
	Title           string
	URL             string
	Icon            string
	BackgroundColor string
	TextColor       string
	BorderColor     string
	Style           string
	Animation       string
	SortOrder       *int
	IsVisible       *bool
}

// List 返回主页的链接集合，默认按排序值升序。
// includeHidden 为 false 时过滤掉 IsVisible=false 的条目。
func (s *LinkService) List(profileID uint, includeHidden bool) ([]db.Link, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var links []db.Link
	if err := query.Order("sort_order ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Create 为主页新增链接。URL 缺少协议时补全 https 前缀，
// 未显式指定排序值时追加到末尾。
func (s *LinkService) Create(profileID uint, input LinkInput) (*db.Link, error) {
	title := strings.TrimSpace(input.Title)
	url := normalizeLinkURL(input.URL)
	if title == "" || url == "" {
		return nil, ErrLinkInvalidInput
	}

	link := db.Link{
		ProfileID:       profileID,
		Title:           title,
		URL:             url,
		Icon:            strings.TrimSpace(input.Icon),
		BackgroundColor: strings.TrimSpace(input.BackgroundColor),
		TextColor:       strings.TrimSpace(input.TextColor),
		BorderColor:     strings.TrimSpace(input.BorderColor),
		Style:           strings.TrimSpace(input.Style),
		Animation:       strings.TrimSpace(input.Animation),
		IsVisible:       true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if input.SortOrder != nil {
		link.SortOrder = *input.SortOrder
	} else {
		var count int64
		if err := s.db.Model(&db.Link{}).Where("profile_id = ?", profileID).Count(&count).Error; err != nil {
			return nil, err
		}
		link.SortOrder = int(count)
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Update 更新链接字段。
func (s *LinkService) Update(profileID, linkID uint, input LinkInput) (*db.Link, error) {
	var link db.Link
	if err := s.db.Where("id = ? AND profile_id = ?", linkID, profileID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		link.Title = title
	}
	if url := normalizeLinkURL(input.URL); url != "" {
		link.URL = url
	}
	link.Icon = strings.TrimSpace(input.Icon)
	link.BackgroundColor = strings.TrimSpace(input.BackgroundColor)
	link.TextColor = strings.TrimSpace(input.TextColor)
	link.BorderColor = strings.TrimSpace(input.BorderColor)
	if style := strings.TrimSpace(input.Style); style != "" {
		link.Style = style
	}
	if animation := strings.TrimSpace(input.Animation); animation != "" {
		link.Animation = animation
	}
	if input.SortOrder != nil {
		link.SortOrder = *input.SortOrder
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if err := s.db.Save(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete 删除链接。
func (s *LinkService) Delete(profileID, linkID uint) error {
	result := s.db.Where("id = ? AND profile_id = ?", linkID, profileID).Delete(&db.Link{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

// RecordClick 记录一次链接点击并返回跳转目标。
func (s *LinkService) RecordClick(linkID uint, visitorID string, now time.Time) (string, error) {
	var link db.Link
	if err := s.db.First(&link, linkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrLinkNotFound
		}
		return "", err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db.Link{}).Where("id = ?", linkID).
			UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error; err != nil {
			return err
		}
		return tx.Create(&db.LinkClick{
			LinkID:    link.ID,
			ProfileID: link.ProfileID,
			VisitorID: visitorID,
			ClickedAt: now,
		}).Error
	})
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

func normalizeLinkURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		return "https://" + trimmed
	}
	return trimmed
}
