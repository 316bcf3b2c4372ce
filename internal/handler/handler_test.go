package handler

import (
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sinswtf/internal/config"
	"github.com/sinswtf/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestAPI 构造带独立内存数据库的 handler 集合。
func setupTestAPI(t *testing.T) *API {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:handler_%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Profile{},
		&db.ProfileCustomization{},
		&db.Link{},
		&db.SocialLink{},
		&db.Widget{},
		&db.ProfileView{},
		&db.LinkClick{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return NewAPI(gdb, config.AppConfig{
		UploadDir:       t.TempDir(),
		UploadURLPath:   "/static/uploads",
		SiteBaseURL:     "https://sins.wtf",
		PresenceBaseURL: "https://presence.sins.wtf",
	})
}
