package config

import (
	"fmt"
	"os"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr          string
	Port                string
	DatabasePath        string
	SessionSecret       string
	SecureCookies       bool
	GinMode             string
	UploadDir           string
	UploadURLPath       string
	SiteBaseURL         string
	PresenceBaseURL     string
	DiscordClientID     string
	DiscordClientSecret string
	DiscordCallbackURL  string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "sinswtf.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "sinswtf-dev-secret"
	}

	// 仅 HTTPS 部署下开启，否则浏览器不会在明文 HTTP 回传会话 cookie
	secureCookies := strings.EqualFold(strings.TrimSpace(os.Getenv("SECURE_COOKIES")), "true")

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "web/static/uploads"
	}

	uploadURLPath := strings.TrimSpace(os.Getenv("UPLOAD_URL_PATH"))
	if uploadURLPath == "" {
		uploadURLPath = "/static/uploads"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://sins.wtf"
	}

	// Discord 在线状态查询服务，公开接口，无需令牌
	presenceBaseURL := strings.TrimSpace(os.Getenv("PRESENCE_BASE_URL"))
	if presenceBaseURL == "" {
		presenceBaseURL = "https://presence.sins.wtf"
	}

	discordCallbackURL := strings.TrimSpace(os.Getenv("DISCORD_CALLBACK_URL"))
	if discordCallbackURL == "" {
		discordCallbackURL = siteBaseURL + "/auth/discord/callback"
	}

	return AppConfig{
		ListenAddr:          listenAddr,
		Port:                port,
		DatabasePath:        databasePath,
		SessionSecret:       sessionSecret,
		SecureCookies:       secureCookies,
		GinMode:             ginMode,
		UploadDir:           uploadDir,
		UploadURLPath:       uploadURLPath,
		SiteBaseURL:         siteBaseURL,
		PresenceBaseURL:     presenceBaseURL,
		DiscordClientID:     strings.TrimSpace(os.Getenv("DISCORD_CLIENT_ID")),
		DiscordClientSecret: strings.TrimSpace(os.Getenv("DISCORD_CLIENT_SECRET")),
		DiscordCallbackURL:  discordCallbackURL,
	}
}
