package main

import (
	"fmt"
	"log"

	"github.com/sinswtf/internal/config"
	"github.com/sinswtf/internal/db"
	"github.com/sinswtf/internal/service"
)

// 演示数据生成器
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成演示数据...")

	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		fmt.Println("已存在用户，跳过创建")
		return
	}

	user := db.User{Email: "demo@sins.wtf"}
	if err := user.SetPassword("demo1234"); err != nil {
		log.Fatal("设置密码失败:", err)
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatal("创建用户失败:", err)
	}

	profiles := service.NewProfileService(db.DB)
	profile, err := profiles.CreateForUser(user.ID, "demo", "Demo Sinner", "")
	if err != nil {
		log.Fatal("创建主页失败:", err)
	}

	customizations := service.NewCustomizationService(db.DB)
	phrases := []string{"welcome to my page", "stay a while"}
	enabled := true
	if _, err := customizations.Upsert(profile.ID, service.CustomizationInput{
		TypewriterEnabled: &enabled,
		TypewriterPhrases: &phrases,
		SparkleName:       &enabled,
		ParallaxEnabled:   &enabled,
	}); err != nil {
		log.Fatal("写入定制失败:", err)
	}

	links := service.NewLinkService(db.DB)
	seedLinks := []service.LinkInput{
		{Title: "My Discord", URL: "https://discord.gg/example"},
		{Title: "My Music", URL: "https://open.spotify.com/artist/example"},
	}
	for _, input := range seedLinks {
		if _, err := links.Create(profile.ID, input); err != nil {
			log.Fatal("创建链接失败:", err)
		}
	}

	socials := service.NewSocialLinkService(db.DB)
	if _, err := socials.Create(profile.ID, service.SocialLinkInput{
		Platform: "github",
		Username: "demo",
		URL:      "https://github.com/demo",
	}); err != nil {
		log.Fatal("创建社交链接失败:", err)
	}

	widgets := service.NewWidgetService(db.DB)
	if _, err := widgets.Create(profile.ID, service.WidgetInput{
		WidgetType: "youtube",
		Config:     map[string]string{"videoId": "dQw4w9WgXcQ"},
	}); err != nil {
		log.Fatal("创建 widget 失败:", err)
	}

	fmt.Println("演示数据生成完成！")
	fmt.Printf("账号: demo@sins.wtf (密码: demo1234)，主页: /%s\n", profile.Username)
}
