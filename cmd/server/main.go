package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sinswtf/internal/config"
	"github.com/sinswtf/internal/db"
	"github.com/sinswtf/internal/handler"
	"github.com/sinswtf/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Discord OAuth（未配置时只保留邮箱密码登录）
	handler.SetupDiscordOAuth(cfg.DiscordClientID, cfg.DiscordClientSecret, cfg.DiscordCallbackURL)

	// 设置并运行 Gin 服务器
	api := handler.NewAPI(db.DB, cfg)
	r := router.SetupRouter(api, cfg, "web/template/*.html")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
