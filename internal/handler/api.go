package handler

import (
	"github.com/sinswtf/internal/config"
	"github.com/sinswtf/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db             *gorm.DB
	profiles       *service.ProfileService
	customizations *service.CustomizationService
	links          *service.LinkService
	socialLinks    *service.SocialLinkService
	widgets        *service.WidgetService
	analytics      *service.AnalyticsService
	presence       *service.PresenceService
	uploadDir      string
	uploadURL      string
	siteBaseURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	return &API{
		db:             gdb,
		profiles:       service.NewProfileService(gdb),
		customizations: service.NewCustomizationService(gdb),
		links:          service.NewLinkService(gdb),
		socialLinks:    service.NewSocialLinkService(gdb),
		widgets:        service.NewWidgetService(gdb),
		analytics:      service.NewAnalyticsService(gdb),
		presence:       service.NewPresenceService(cfg.PresenceBaseURL),
		uploadDir:      cfg.UploadDir,
		uploadURL:      cfg.UploadURLPath,
		siteBaseURL:    cfg.SiteBaseURL,
	}
}
