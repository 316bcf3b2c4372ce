package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sinswtf/internal/render"
	"github.com/sinswtf/internal/service"
)

// ShowDashboard 渲染仪表盘页面，页面内的编辑操作走 JSON 接口。
func (a *API) ShowDashboard(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":       "仪表盘",
		"profile":     profile,
		"socialIcons": render.SocialIconKeys(),
	})
}

// GetMyProfile 返回当前账号的主页基础信息。
func (a *API) GetMyProfile(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type profileRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	BannerURL   *string `json:"banner_url"`
}

// UpdateMyProfile 更新主页基础信息。
func (a *API) UpdateMyProfile(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	var req profileRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	updated, err := a.profiles.Update(profile.ID, service.ProfileInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
		BannerURL:   req.BannerURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusBadRequest, "用户名已被占用")
		case errors.Is(err, service.ErrInvalidUsername):
			respondError(c, http.StatusBadRequest, "用户名不合法")
		default:
			respondError(c, http.StatusInternalServerError, "更新失败")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": updated})
}

// CheckUsername 检查用户名是否可用。
func (a *API) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	available, err := a.profiles.IsUsernameAvailable(username)
	if err != nil {
		if errors.Is(err, service.ErrInvalidUsername) {
			respondError(c, http.StatusBadRequest, "用户名不合法")
			return
		}
		respondError(c, http.StatusInternalServerError, "查询失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

// GetMyCustomization 返回当前主页的定制记录与解析后的完整配置。
func (a *API) GetMyCustomization(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	row, err := a.customizations.Get(profile.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "查询失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customization": row,
		"resolved":      render.Resolve(row),
	})
}

type customizationRequest struct {
	PrimaryColor    *string `json:"primary_color"`
	SecondaryColor  *string `json:"secondary_color"`
	BackgroundColor *string `json:"background_color"`
	TextColor       *string `json:"text_color"`
	NameColor       *string `json:"name_color"`

	BackgroundType     *string `json:"background_type"`
	BackgroundImageURL *string `json:"background_image_url"`
	BackgroundVideoURL *string `json:"background_video_url"`
	BackgroundBlur     *int    `json:"background_blur"`
	BackgroundOpacity  *int    `json:"background_opacity"`

	CardStyle   *string `json:"card_style"`
	CardRadius  *int    `json:"card_radius"`
	LayoutStyle *string `json:"layout_style"`

	AvatarStyle  *string `json:"avatar_style"`
	AvatarBorder *bool   `json:"avatar_border"`
	AvatarGlow   *bool   `json:"avatar_glow"`

	NameFont      *string `json:"name_font"`
	TextFont      *string `json:"text_font"`
	TitleFontSize *int    `json:"title_font_size"`
	BioFontSize   *int    `json:"bio_font_size"`

	TypewriterEnabled *bool     `json:"typewriter_enabled"`
	TypewriterSpeed   *int      `json:"typewriter_speed"`
	TypewriterPhrases *[]string `json:"typewriter_phrases"`
	ClickToEnter      *bool     `json:"click_to_enter"`
	SparkleName       *bool     `json:"sparkle_name"`
	ParallaxEnabled   *bool     `json:"parallax_enabled"`
	AudioReactive     *bool     `json:"audio_reactive"`
	CustomCursor      *bool     `json:"custom_cursor"`

	DiscordUserID        *string `json:"discord_user_id"`
	DiscordWidgetEnabled *bool   `json:"discord_widget_enabled"`

	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaImageURL    *string `json:"meta_image_url"`
	FaviconURL      *string `json:"favicon_url"`

	CustomCSS *string `json:"custom_css"`
}

// UpdateMyCustomization 合并写入定制记录，仅更新请求携带的字段。
func (a *API) UpdateMyCustomization(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	var req customizationRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	row, err := a.customizations.Upsert(profile.ID, service.CustomizationInput{
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
		NameColor:       req.NameColor,

		BackgroundType:     req.BackgroundType,
		BackgroundImageURL: req.BackgroundImageURL,
		BackgroundVideoURL: req.BackgroundVideoURL,
		BackgroundBlur:     req.BackgroundBlur,
		BackgroundOpacity:  req.BackgroundOpacity,

		CardStyle:   req.CardStyle,
		CardRadius:  req.CardRadius,
		LayoutStyle: req.LayoutStyle,

		AvatarStyle:  req.AvatarStyle,
		AvatarBorder: req.AvatarBorder,
		AvatarGlow:   req.AvatarGlow,

		NameFont:      req.NameFont,
		TextFont:      req.TextFont,
		TitleFontSize: req.TitleFontSize,
		BioFontSize:   req.BioFontSize,

		TypewriterEnabled: req.TypewriterEnabled,
		TypewriterSpeed:   req.TypewriterSpeed,
		TypewriterPhrases: req.TypewriterPhrases,
		ClickToEnter:      req.ClickToEnter,
		SparkleName:       req.SparkleName,
		ParallaxEnabled:   req.ParallaxEnabled,
		AudioReactive:     req.AudioReactive,
		CustomCursor:      req.CustomCursor,

		DiscordUserID:        req.DiscordUserID,
		DiscordWidgetEnabled: req.DiscordWidgetEnabled,

		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaImageURL:    req.MetaImageURL,
		FaviconURL:      req.FaviconURL,

		CustomCSS: req.CustomCSS,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"customization": row})
}

type linkRequest struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Icon            string `json:"icon"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	BorderColor     string `json:"border_color"`
	Style           string `json:"style"`
	Animation       string `json:"animation"`
	SortOrder       *int   `json:"sort_order"`
	IsVisible       *bool  `json:"is_visible"`
}

func (r linkRequest) toInput() service.LinkInput {
	return service.LinkInput{
		Title:           r.Title,
		URL:             r.URL,
		Icon:            r.Icon,
		BackgroundColor: r.BackgroundColor,
		TextColor:       r.TextColor,
		BorderColor:     r.BorderColor,
		Style:           r.Style,
		Animation:       r.Animation,
		SortOrder:       r.SortOrder,
		IsVisible:       r.IsVisible,
	}
}

// GetMyLinks 返回当前主页的全部链接（含隐藏项）。
func (a *API) GetMyLinks(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	links, err := a.links.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "查询失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"links": links})
}

// CreateLink 新增链接。
func (a *API) CreateLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	var req linkRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	link, err := a.links.Create(profile.ID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrLinkInvalidInput) {
			respondError(c, http.StatusBadRequest, "标题和链接地址不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// UpdateLink 更新链接。
func (a *API) UpdateLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	linkID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req linkRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	link, err := a.links.Update(profile.ID, linkID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			respondError(c, http.StatusNotFound, "链接不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "更新失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// DeleteLink 删除链接。
func (a *API) DeleteLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	linkID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.links.Delete(profile.ID, linkID); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			respondError(c, http.StatusNotFound, "链接不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type socialLinkRequest struct {
	Platform  string `json:"platform"`
	Username  string `json:"username"`
	URL       string `json:"url"`
	SortOrder *int   `json:"sort_order"`
	IsVisible *bool  `json:"is_visible"`
}

func (r socialLinkRequest) toInput() service.SocialLinkInput {
	return service.SocialLinkInput{
		Platform:  r.Platform,
		Username:  r.Username,
		URL:       r.URL,
		SortOrder: r.SortOrder,
		IsVisible: r.IsVisible,
	}
}

// GetMySocialLinks 返回当前主页的全部社交链接（含隐藏项）。
func (a *API) GetMySocialLinks(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	links, err := a.socialLinks.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "查询失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_links": links})
}

// CreateSocialLink 新增社交链接。
func (a *API) CreateSocialLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	var req socialLinkRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	link, err := a.socialLinks.Create(profile.ID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSocialLinkInvalidInput) {
			respondError(c, http.StatusBadRequest, "平台和链接地址不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_link": link})
}

// UpdateSocialLink 更新社交链接。
func (a *API) UpdateSocialLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	linkID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req socialLinkRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	link, err := a.socialLinks.Update(profile.ID, linkID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrSocialLinkNotFound) {
			respondError(c, http.StatusNotFound, "社交链接不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "更新失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"social_link": link})
}

// DeleteSocialLink 删除社交链接。
func (a *API) DeleteSocialLink(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	linkID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.socialLinks.Delete(profile.ID, linkID); err != nil {
		if errors.Is(err, service.ErrSocialLinkNotFound) {
			respondError(c, http.StatusNotFound, "社交链接不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type widgetRequest struct {
	WidgetType string            `json:"widget_type"`
	Config     map[string]string `json:"config"`
	Width      string            `json:"width"`
	Height     string            `json:"height"`
	SortOrder  *int              `json:"sort_order"`
	IsVisible  *bool             `json:"is_visible"`
}

func (r widgetRequest) toInput() service.WidgetInput {
	return service.WidgetInput{
		WidgetType: r.WidgetType,
		Config:     r.Config,
		Width:      r.Width,
		Height:     r.Height,
		SortOrder:  r.SortOrder,
		IsVisible:  r.IsVisible,
	}
}

// GetMyWidgets 返回当前主页的全部 widget（含隐藏项）。
func (a *API) GetMyWidgets(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	widgets, err := a.widgets.List(profile.ID, true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "查询失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgets": widgets})
}

// CreateWidget 新增 widget。
func (a *API) CreateWidget(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	var req widgetRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	widget, err := a.widgets.Create(profile.ID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrWidgetInvalidInput) {
			respondError(c, http.StatusBadRequest, "widget 类型不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"widget": widget})
}

// UpdateWidget 更新 widget。
func (a *API) UpdateWidget(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	widgetID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var req widgetRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	widget, err := a.widgets.Update(profile.ID, widgetID, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrWidgetNotFound) {
			respondError(c, http.StatusNotFound, "widget 不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "更新失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"widget": widget})
}

// DeleteWidget 删除 widget。
func (a *API) DeleteWidget(c *gin.Context) {
	profile, ok := a.currentProfile(c)
	if !ok {
		return
	}

	widgetID, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.widgets.Delete(profile.ID, widgetID); err != nil {
		if errors.Is(err, service.ErrWidgetNotFound) {
			respondError(c, http.StatusNotFound, "widget 不存在")
			return
		}
		respondError(c, http.StatusInternalServerError, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
