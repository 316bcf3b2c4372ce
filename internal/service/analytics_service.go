package service

import (
	"errors"
	"time"

	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalyticsService 负责主页浏览量统计。
// 每个访客（cookie 标识）对同一主页只计一次 Views，重复到访仅刷新时间。
type AnalyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService 构造 AnalyticsService
func NewAnalyticsService(gdb *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: gdb}
}

// RecordProfileView 记录访客对主页的浏览并返回最新浏览量。
func (s *AnalyticsService) RecordProfileView(profileID uint, visitorID string, now time.Time) (uint64, error) {
	if profileID == 0 || visitorID == "" {
		return 0, errors.New("invalid profile or visitor id")
	}

	var views uint64
	if err := s.db.Transaction(func(tx *gorm.DB) error {
		visit := db.ProfileView{
			ProfileID:    profileID,
			VisitorID:    visitorID,
			LastViewedAt: now,
		}
		insert := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "visitor_id"}},
			DoNothing: true,
		}).Create(&visit)
		if insert.Error != nil {
			return insert.Error
		}

		isNewVisitor := insert.RowsAffected == 1
		if !isNewVisitor {
			if err := tx.Model(&db.ProfileView{}).
				Where("profile_id = ? AND visitor_id = ?", profileID, visitorID).
				UpdateColumn("last_viewed_at", now).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&db.Profile{}).Where("id = ?", profileID).
				UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
				return err
			}
		}

		var profile db.Profile
		if err := tx.Select("views").First(&profile, profileID).Error; err != nil {
			return err
		}
		views = profile.Views
		return nil
	}); err != nil {
		return 0, err
	}

	return views, nil
}
