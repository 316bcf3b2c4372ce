package service

import (
	"errors"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

// CustomizationService 负责主页定制记录的读取与合并更新。
// 记录允许不存在：读取返回 nil 由 render.Resolve 走全默认值。
type CustomizationService struct {
	db *gorm.DB
}

// NewCustomizationService 构造 CustomizationService
func NewCustomizationService(gdb *gorm.DB) *CustomizationService {
	return &CustomizationService{db: gdb}
}

// Get 返回主页的定制记录，不存在时返回 (nil, nil)。
func (s *CustomizationService) Get(profileID uint) (*db.ProfileCustomization, error) {
	var row db.ProfileCustomization
	if err := s.db.Where("profile_id = ?", profileID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// CustomizationInput 描述一次定制更新。指针为 nil 表示保持原值，
// 指向零值表示显式清空（回到默认值）。
type CustomizationInput struct {
	PrimaryColor    *string
	SecondaryColor  *string
	BackgroundColor *string
	TextColor       *string
	NameColor       *string

	BackgroundType     *string
	BackgroundImageURL *string
	BackgroundVideoURL *string
	BackgroundBlur     *int
	BackgroundOpacity  *int

	CardStyle   *string
	CardRadius  *int
	LayoutStyle *string

	AvatarStyle  *string
	AvatarBorder *bool
	AvatarGlow   *bool

	NameFont      *string
	TextFont      *string
	TitleFontSize *int
	BioFontSize   *int

	TypewriterEnabled *bool
	TypewriterSpeed   *int
	TypewriterPhrases *[]string
	ClickToEnter      *bool
	SparkleName       *bool
	ParallaxEnabled   *bool
	AudioReactive     *bool
	CustomCursor      *bool

	DiscordUserID        *string
	DiscordWidgetEnabled *bool

	MetaTitle       *string
	MetaDescription *string
	MetaImageURL    *string
	FaviconURL      *string

	CustomCSS *string
}

// Upsert 合并写入定制记录，不存在时先创建。
// 数值范围在这里钳制（opacity 0~100，blur/速度非负），
// 保证坏数据不会落库，渲染侧的钳制只是兜底。
func (s *CustomizationService) Upsert(profileID uint, input CustomizationInput) (*db.ProfileCustomization, error) {
	var row db.ProfileCustomization
	err := s.db.Where("profile_id = ?", profileID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = db.ProfileCustomization{ProfileID: profileID}
	} else if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyIntPtr := func(dst **int, src *int, clamp func(int) int) {
		if src != nil {
			value := clamp(*src)
			*dst = &value
		}
	}

	clampOpacity := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}
	clampNonNegative := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	clampPositive := func(v int) int {
		if v < 1 {
			return 1
		}
		return v
	}

	applyString(&row.PrimaryColor, input.PrimaryColor)
	applyString(&row.SecondaryColor, input.SecondaryColor)
	applyString(&row.BackgroundColor, input.BackgroundColor)
	applyString(&row.TextColor, input.TextColor)
	applyString(&row.NameColor, input.NameColor)

	applyString(&row.BackgroundType, input.BackgroundType)
	applyString(&row.BackgroundImageURL, input.BackgroundImageURL)
	applyString(&row.BackgroundVideoURL, input.BackgroundVideoURL)
	applyIntPtr(&row.BackgroundBlur, input.BackgroundBlur, clampNonNegative)
	applyIntPtr(&row.BackgroundOpacity, input.BackgroundOpacity, clampOpacity)

	applyString(&row.CardStyle, input.CardStyle)
	applyIntPtr(&row.CardRadius, input.CardRadius, clampNonNegative)
	applyString(&row.LayoutStyle, input.LayoutStyle)

	applyString(&row.AvatarStyle, input.AvatarStyle)
	applyBool(&row.AvatarBorder, input.AvatarBorder)
	applyBool(&row.AvatarGlow, input.AvatarGlow)

	applyString(&row.NameFont, input.NameFont)
	applyString(&row.TextFont, input.TextFont)
	applyIntPtr(&row.TitleFontSize, input.TitleFontSize, clampPositive)
	applyIntPtr(&row.BioFontSize, input.BioFontSize, clampPositive)

	applyBool(&row.TypewriterEnabled, input.TypewriterEnabled)
	applyIntPtr(&row.TypewriterSpeed, input.TypewriterSpeed, clampPositive)
	if input.TypewriterPhrases != nil {
		row.TypewriterPhrases = append([]string(nil), (*input.TypewriterPhrases)...)
	}
	applyBool(&row.ClickToEnter, input.ClickToEnter)
	applyBool(&row.SparkleName, input.SparkleName)
	applyBool(&row.ParallaxEnabled, input.ParallaxEnabled)
	applyBool(&row.AudioReactive, input.AudioReactive)
	applyBool(&row.CustomCursor, input.CustomCursor)

	applyString(&row.DiscordUserID, input.DiscordUserID)
	applyBool(&row.DiscordWidgetEnabled, input.DiscordWidgetEnabled)

	applyString(&row.MetaTitle, input.MetaTitle)
	applyString(&row.MetaDescription, input.MetaDescription)
	applyString(&row.MetaImageURL, input.MetaImageURL)
	applyString(&row.FaviconURL, input.FaviconURL)

	applyString(&row.CustomCSS, input.CustomCSS)

	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
