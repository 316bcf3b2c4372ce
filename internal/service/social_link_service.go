package service

import (
	"errors"
	"strings"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrSocialLinkNotFound 在指定的社交链接不存在时返回
	ErrSocialLinkNotFound = errors.New("social link not found")
	// ErrSocialLinkInvalidInput 在输入数据不完整时返回
	ErrSocialLinkInvalidInput = errors.New("invalid social link input")
)

// SocialLinkService 负责社交图标链接的增删改查。
type SocialLinkService struct {
	db *gorm.DB
}

// NewSocialLinkService 构造 SocialLinkService
func NewSocialLinkService(gdb *gorm.DB) *SocialLinkService {
	return &SocialLinkService{db: gdb}
}

// SocialLinkInput 描述创建或更新社交链接时可设置的字段。
type SocialLinkInput struct {
	Platform  string
	Username  string
	URL       string
	SortOrder *int
	IsVisible *bool
}

// List 返回主页的社交链接，默认按排序值升序。
func (s *SocialLinkService) List(profileID uint, includeHidden bool) ([]db.SocialLink, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var links []db.SocialLink
	if err := query.Order("sort_order ASC, id ASC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Create 新增社交链接，未指定排序值时追加到末尾。
func (s *SocialLinkService) Create(profileID uint, input SocialLinkInput) (*db.SocialLink, error) {
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	url := normalizeLinkURL(input.URL)
	if platform == "" || url == "" {
		return nil, ErrSocialLinkInvalidInput
	}

	link := db.SocialLink{
		ProfileID: profileID,
		Platform:  platform,
		Username:  strings.TrimSpace(input.Username),
		URL:       url,
		IsVisible: true,
	}
	if input.IsVisible != nil {
		link.IsVisible = *input.IsVisible
	}

	if input.SortOrder != nil {
		link.SortOrder = *input.SortOrder
	} else {
		var count int64
		if err := s.db.Model(&db.SocialLink{}).Where("profile_id = ?", profileID).Count(&count).Error; err != nil {
			return nil, err
		}
		link.SortOrder = int(count)
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Update 更新社交链接字段。
func (s *SocialLinkService) Update(profileID, linkID uint, input SocialLinkInput) (*db.SocialLink, error) {
	var link db.SocialLink
	if err := s.db.Where("id = ? AND profile_id = ?", linkID, profileID).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSocialLinkNotFound
		}
		return nil, err
	}

	if platform := strings.ToLower(strings.TrimSpace(input.Platform)); platform != "" {
		link.Platform = platform
	}
	if url := normalizeLinkURL(input.URL); url != "" {
		link.URL = url
	}
	link.Username = strings.TrimSpace(input.Username)
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

// Delete 删除社交链接。
func (s *SocialLinkService) Delete(profileID, linkID uint) error {
	result := s.db.Where("id = ? AND profile_id = ?", linkID, profileID).Delete(&db.SocialLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSocialLinkNotFound
	}
	return nil
}
