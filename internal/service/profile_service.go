package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrProfileNotFound 在指定的主页不存在时返回
	ErrProfileNotFound = errors.New("profile not found")
	// ErrUsernameTaken 在用户名已被占用时返回
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidUsername 在用户名不符合规则时返回
	ErrInvalidUsername = errors.New("invalid username")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

// ProfileService 负责主页记录的读写与首次登录时的自动创建。
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService 构造 ProfileService
func NewProfileService(gdb *gorm.DB) *ProfileService {
	return &ProfileService{db: gdb}
}

// PublicProfile 聚合渲染公开主页所需的全部记录。
// 子记录只包含可见项，已按 sort_order 升序排好，渲染方不再排序。
type PublicProfile struct {
	Profile       db.Profile
	Customization *db.ProfileCustomization
	Links         []db.Link
	SocialLinks   []db.SocialLink
	Widgets       []db.Widget
}

// NormalizeUsername 把任意输入收敛为合法用户名：小写、仅保留 [a-z0-9_]。
func NormalizeUsername(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	var sb strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() > 64 {
		return sb.String()[:64]
	}
	return sb.String()
}

// IsUsernameAvailable 检查用户名是否未被占用。
func (s *ProfileService) IsUsernameAvailable(username string) (bool, error) {
	normalized := NormalizeUsername(username)
	if !usernamePattern.MatchString(normalized) {
		return false, ErrInvalidUsername
	}

	var count int64
	if err := s.db.Model(&db.Profile{}).Where("username = ?", normalized).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateForUser 为账号创建主页，并同时生成一条空的定制记录。
// 用户名冲突时追加数字后缀重试，与账号创建属于同一事务。
func (s *ProfileService) CreateForUser(userID uint, username, displayName, avatarURL string) (*db.Profile, error) {
	base := NormalizeUsername(username)
	if base == "" {
		base = fmt.Sprintf("user_%d", userID)
	}

	var profile db.Profile
	err := s.db.Transaction(func(tx *gorm.DB) error {
		candidate := base
		for attempt := 0; ; attempt++ {
			var count int64
			if err := tx.Model(&db.Profile{}).Where("username = ?", candidate).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				break
			}
			candidate = fmt.Sprintf("%s%d", base, attempt+1)
		}

		profile = db.Profile{
			UserID:      userID,
			Username:    candidate,
			DisplayName: strings.TrimSpace(displayName),
			AvatarURL:   strings.TrimSpace(avatarURL),
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		// 定制记录与主页同生共死，所有字段留空走默认值
		return tx.Create(&db.ProfileCustomization{ProfileID: profile.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUsername 按用户名取公开主页及全部子记录。
// 子记录在 SQL 层完成可见性过滤与排序。
func (s *ProfileService) GetByUsername(username string) (*PublicProfile, error) {
	normalized := NormalizeUsername(username)

	var profile db.Profile
	if err := s.db.Where("username = ?", normalized).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	result := &PublicProfile{Profile: profile}

	var customization db.ProfileCustomization
	if err := s.db.Where("profile_id = ?", profile.ID).First(&customization).Error; err == nil {
		result.Customization = &customization
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("sort_order ASC, id ASC").Find(&result.Links).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("sort_order ASC, id ASC").Find(&result.SocialLinks).Error; err != nil {
		return nil, err
	}
	if err := s.db.Where("profile_id = ? AND is_visible = ?", profile.ID, true).
		Order("sort_order ASC, id ASC").Find(&result.Widgets).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetByUserID 按账号取主页（仪表盘使用，不过滤子记录）。
func (s *ProfileService) GetByUserID(userID uint) (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// ProfileInput 描述更新主页时可设置的字段，nil 表示保持原值。
type ProfileInput struct {
	Username    *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	BannerURL   *string
}

// Update 更新主页基础信息。改用户名前先做规范化与占用检查。
func (s *ProfileService) Update(profileID uint, input ProfileInput) (*db.Profile, error) {
	var profile db.Profile
	if err := s.db.First(&profile, profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if input.Username != nil {
		normalized := NormalizeUsername(*input.Username)
		if !usernamePattern.MatchString(normalized) {
			return nil, ErrInvalidUsername
		}
		if normalized != profile.Username {
			var count int64
			if err := s.db.Model(&db.Profile{}).Where("username = ? AND id <> ?", normalized, profileID).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrUsernameTaken
			}
			profile.Username = normalized
		}
	}
	if input.DisplayName != nil {
		profile.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.Bio != nil {
		profile.Bio = strings.TrimSpace(*input.Bio)
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.BannerURL != nil {
		profile.BannerURL = strings.TrimSpace(*input.BannerURL)
	}

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
