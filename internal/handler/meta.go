package handler

import (
	"fmt"
	"strings"

	"github.com/sinswtf/internal/db"
)

// pageMeta 是公开主页 <head> 区域需要的 SEO 字段。
type pageMeta struct {
	Title        string
	Description  string
	ImageURL     string
	FaviconURL   string
	CanonicalURL string
}

// buildPageMeta 逐字段按回退链取值：
// 标题：meta_title → "{display_name|username} - sins.wtf"；
// 描述：meta_description → bio → 默认文案；
// 图片：meta_image_url → 头像。
func buildPageMeta(profile db.Profile, row *db.ProfileCustomization, siteBaseURL string) pageMeta {
	if row == nil {
		row = &db.ProfileCustomization{}
	}

	name := strings.TrimSpace(profile.DisplayName)
	if name == "" {
		name = profile.Username
	}

	title := strings.TrimSpace(row.MetaTitle)
	if title == "" {
		title = fmt.Sprintf("%s - sins.wtf", name)
	}

	description := strings.TrimSpace(row.MetaDescription)
	if description == "" {
		description = strings.TrimSpace(profile.Bio)
	}
	if description == "" {
		description = fmt.Sprintf("Check out %s's profile on sins.wtf", profile.Username)
	}

	imageURL := strings.TrimSpace(row.MetaImageURL)
	if imageURL == "" {
		imageURL = strings.TrimSpace(profile.AvatarURL)
	}

	return pageMeta{
		Title:        title,
		Description:  description,
		ImageURL:     imageURL,
		FaviconURL:   strings.TrimSpace(row.FaviconURL),
		CanonicalURL: strings.TrimRight(siteBaseURL, "/") + "/" + profile.Username,
	}
}
