package service

import (
	"errors"
	"strings"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrWidgetNotFound 在指定的 widget 不存在时返回
	ErrWidgetNotFound = errors.New("widget not found")
	// ErrWidgetInvalidInput 在输入数据不完整时返回
	ErrWidgetInvalidInput = errors.New("invalid widget input")
)

// WidgetService 负责第三方嵌入块的增删改查。
// Config 按类型取形，必需键的解释完全交给 render.ResolveEmbed，
// 这里不校验键集合：缺键在渲染时以空串代入而不是报错。
type WidgetService struct {
	db *gorm.DB
}

// NewWidgetService 构造 WidgetService
func NewWidgetService(gdb *gorm.DB) *WidgetService {
	return &WidgetService{db: gdb}
}

// WidgetInput 描述创建或更新 widget 时可设置的字段。
type WidgetInput struct {
	WidgetType string
	Config     map[string]string
	Width      string
	Height     string
	SortOrder  *int
	IsVisible  *bool
}

// List 返回主页的 widget 集合，默认按排序值升序。
func (s *WidgetService) List(profileID uint, includeHidden bool) ([]db.Widget, error) {
	query := s.db.Where("profile_id = ?", profileID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var widgets []db.Widget
	if err := query.Order("sort_order ASC, id ASC").Find(&widgets).Error; err != nil {
		return nil, err
	}
	return widgets, nil
}

// Create 新增 widget，未指定排序值时追加到末尾。
func (s *WidgetService) Create(profileID uint, input WidgetInput) (*db.Widget, error) {
	widgetType := strings.ToLower(strings.TrimSpace(input.WidgetType))
	if widgetType == "" {
		return nil, ErrWidgetInvalidInput
	}

	widget := db.Widget{
		ProfileID:  profileID,
		WidgetType: widgetType,
		Config:     input.Config,
		Width:      strings.TrimSpace(input.Width),
		Height:     strings.TrimSpace(input.Height),
		IsVisible:  true,
	}
	if widget.Config == nil {
		widget.Config = map[string]string{}
	}
	if input.IsVisible != nil {
		widget.IsVisible = *input.IsVisible
	}

	if input.SortOrder != nil {
		widget.SortOrder = *input.SortOrder
	} else {
		var count int64
		if err := s.db.Model(&db.Widget{}).Where("profile_id = ?", profileID).Count(&count).Error; err != nil {
			return nil, err
		}
		widget.SortOrder = int(count)
	}

	if err := s.db.Create(&widget).Error; err != nil {
		return nil, err
	}
	return &widget, nil
}

// Update 更新 widget 字段。Config 非 nil 时整体替换。
func (s *WidgetService) Update(profileID, widgetID uint, input WidgetInput) (*db.Widget, error) {
	var widget db.Widget
	if err := s.db.Where("id = ? AND profile_id = ?", widgetID, profileID).First(&widget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWidgetNotFound
		}
		return nil, err
	}

	if widgetType := strings.ToLower(strings.TrimSpace(input.WidgetType)); widgetType != "" {
		widget.WidgetType = widgetType
	}
	if input.Config != nil {
		widget.Config = input.Config
	}
	if width := strings.TrimSpace(input.Width); width != "" {
		widget.Width = width
	}
	if height := strings.TrimSpace(input.Height); height != "" {
		widget.Height = height
	}
	if input.SortOrder != nil {
		widget.SortOrder = *input.SortOrder
	}
	if input.IsVisible != nil {
		widget.IsVisible = *input.IsVisible
	}

	if err := s.db.Save(&widget).Error; err != nil {
		return nil, err
	}
	return &widget, nil
}

// Delete 删除 widget。
func (s *WidgetService) Delete(profileID, widgetID uint) error {
	result := s.db.Where("id = ? AND profile_id = ?", widgetID, profileID).Delete(&db.Widget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWidgetNotFound
	}
	return nil
}
