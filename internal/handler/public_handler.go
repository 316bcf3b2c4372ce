package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sinswtf/internal/db"
	"github.com/sinswtf/internal/render"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

const (
	visitorCookieName   = "sw_visitor_id"
	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// linkViewModel 是模板消费的单条链接。
// Style 是完整的内联样式声明，在这里拼好以绕过模板对
// style 属性整体插值的 CSS 过滤。
type linkViewModel struct {
	ID        uint
	Title     string
	URL       string
	Icon      string
	Class     string
	Animation string
	Style     template.CSS
}

// socialViewModel 是模板消费的单个社交图标。
// Username 非空时图标点击改为复制该值（Discord 的「复制 ID」交互）。
type socialViewModel struct {
	Platform string
	Username string
	URL      string
	IconSVG  template.HTML
	Glyph    string
}

// ShowProfile 渲染公开主页。
func (a *API) ShowProfile(c *gin.Context) {
	username := c.Param("username")

	public, err := a.profiles.GetByUsername(username)
	if err != nil {
		a.renderNotFound(c)
		return
	}

	visitorID := a.ensureVisitorID(c)
	views := public.Profile.Views
	if total, recordErr := a.analytics.RecordProfileView(public.Profile.ID, visitorID, time.Now().UTC()); recordErr == nil {
		views = total
	} else {
		c.Error(recordErr) // 不中断渲染，但记录错误
	}

	rc := render.Resolve(public.Customization)
	background := render.Compose(rc)

	bioHTML, err := renderMarkdown(public.Profile.Bio)
	if err != nil {
		bioHTML = template.HTML(template.HTMLEscapeString(public.Profile.Bio))
	}

	scope := render.NewStyleScope()
	release := scope.Acquire(rc.CustomCSS)
	defer release()

	phrasesJSON, _ := json.Marshal(rc.TypewriterPhrases)

	meta := buildPageMeta(public.Profile, public.Customization, a.siteBaseURL)

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"meta":         meta,
		"profile":      public.Profile,
		"views":        views,
		"bio":          bioHTML,
		"rc":           rc,
		"background":   background,
		"bgLayerStyle": backgroundLayerStyle(background),
		"overlayStyle": template.CSS("background-color: " + background.OverlayCSS + ";"),
		"cssVars":      template.CSS(render.CSSVariables(rc)),
		"avatarClass":  render.AvatarClass(rc),
		"cardClass":    render.CardClass(rc),
		"cardStyle":    template.CSS(render.CardStyleCSS(rc)),
		"layoutClass":  render.LayoutClass(rc),
		"nameClass":    render.NameClass(rc),
		"links":        buildLinkViews(rc, public.Links),
		"socials":      buildSocialViews(public.SocialLinks),
		"widgets":      buildWidgetViews(public.Widgets),
		"customCSS":    template.HTML(scope.Render()),
		"typewriter": gin.H{
			"enabled": rc.TypewriterEnabled && len(rc.TypewriterPhrases) > 0,
			"phrases": template.JS(phrasesJSON),
			"speed":   rc.TypewriterSpeed,
		},
		"presenceEnabled": rc.DiscordWidgetEnabled && rc.DiscordUserID != "",
		"discordUserID":   rc.DiscordUserID,
	})
}

// backgroundLayerStyle 把背景层的派生样式拼为完整内联声明。
// 媒体层（图片）把来源也并入样式；视频的来源走 src 属性。
func backgroundLayerStyle(bg render.Background) template.CSS {
	var sb strings.Builder
	switch bg.Kind {
	case render.BackgroundTypeImage:
		fmt.Fprintf(&sb, "background-image: url('%s'); ", bg.SourceURL)
	case render.BackgroundTypeColor:
		fmt.Fprintf(&sb, "background-color: %s; ", bg.Color)
	}
	fmt.Fprintf(&sb, "opacity: %g;", bg.Opacity)
	if bg.Filter != "" {
		fmt.Fprintf(&sb, " filter: %s;", bg.Filter)
	}
	return template.CSS(sb.String())
}

func buildLinkViews(rc render.ResolvedCustomization, links []db.Link) []linkViewModel {
	views := make([]linkViewModel, 0, len(links))
	for _, link := range links {
		appearance := render.ResolveLinkAppearance(rc, link.Style, link.BackgroundColor, link.TextColor, link.BorderColor)
		style := fmt.Sprintf(
			"background-color: %s; color: %s; border: %s solid %s;",
			appearance.BackgroundColor, appearance.TextColor, appearance.BorderWidth, appearance.BorderColor,
		)
		views = append(views, linkViewModel{
			ID:        link.ID,
			Title:     link.Title,
			URL:       link.URL,
			Icon:      link.Icon,
			Class:     appearance.Class,
			Animation: link.Animation,
			Style:     template.CSS(style),
		})
	}
	return views
}

func buildSocialViews(links []db.SocialLink) []socialViewModel {
	views := make([]socialViewModel, 0, len(links))
	for _, link := range links {
		view := socialViewModel{Platform: link.Platform, Username: link.Username, URL: link.URL}
		if svg, ok := render.SocialIconSVG(link.Platform); ok {
			view.IconSVG = template.HTML(svg)
		} else {
			view.Glyph = render.FallbackGlyph(link.Platform)
		}
		views = append(views, view)
	}
	return views
}

// buildWidgetViews 把 widget 记录映射为嵌入帧，未识别的类型静默跳过。
func buildWidgetViews(widgets []db.Widget) []template.HTML {
	views := make([]template.HTML, 0, len(widgets))
	for _, widget := range widgets {
		embed, ok := render.ResolveEmbed(widget.WidgetType, widget.Config)
		if !ok {
			continue
		}
		views = append(views, template.HTML(render.EmbedHTML(embed, widget.Width, widget.Height)))
	}
	return views
}

// ClickLink 记录链接点击并 302 跳转到目标地址。
func (a *API) ClickLink(c *gin.Context) {
	linkID, err := parseUintParam(c, "id")
	if err != nil {
		a.renderNotFound(c)
		return
	}

	visitorID := a.ensureVisitorID(c)
	url, err := a.links.RecordClick(linkID, visitorID, time.Now().UTC())
	if err != nil {
		a.renderNotFound(c)
		return
	}
	c.Redirect(http.StatusFound, url)
}

// GetPresence 代理一次 Discord 在线状态查询，返回前端可直接渲染的视图。
// 前端每 30 秒轮询一次，查询失败时保留上一次展示的状态。
func (a *API) GetPresence(c *gin.Context) {
	discordUserID := strings.TrimSpace(c.Param("id"))
	if discordUserID == "" {
		respondError(c, http.StatusBadRequest, "missing discord user id")
		return
	}

	presence, err := a.presence.Fetch(c.Request.Context(), discordUserID)
	if err != nil {
		respondError(c, http.StatusBadGateway, "presence lookup failed")
		return
	}

	activities := make([]gin.H, 0, len(presence.Activities))
	for _, activity := range presence.Activities {
		activities = append(activities, gin.H{
			"label":   render.ActivityLabel(activity.Type),
			"name":    activity.Name,
			"details": activity.Details,
			"state":   activity.State,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"username":      presence.Username,
		"avatar_url":    presence.ResolvedAvatarURL(),
		"status":        presence.Status,
		"status_color":  render.StatusColor(presence.Status),
		"status_label":  render.StatusLabel(presence.Status),
		"custom_status": presence.CustomStatus,
		"activities":    activities,
	})
}

// ShowHome 渲染落地页。
func (a *API) ShowHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "sins.wtf",
		"year":  time.Now().Year(),
	})
}

// ShowLogin 渲染登录页。
func (a *API) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"title": "登录"})
}

// ShowSignup 渲染注册页。
func (a *API) ShowSignup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"title": "注册"})
}

func (a *API) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{"title": "404"})
}

func (a *API) ensureVisitorID(c *gin.Context) string {
	if id, err := c.Cookie(visitorCookieName); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	visitorID := uuid.NewString()
	secure := c.Request.TLS != nil

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     visitorCookieName,
		Value:    visitorID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   visitorCookieMaxAge,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: http.SameSiteLaxMode,
	})

	return visitorID
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	safe := sanitizer.SanitizeBytes(buf.Bytes())
	return template.HTML(safe), nil
}
