package router

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sinswtf/internal/config"
	"github.com/sinswtf/internal/handler"
)

// 会话 cookie 有效期
const sessionMaxAge = 30 * 24 * 60 * 60

// SetupRouter 配置 Gin 引擎和路由。
// templateGlob 为空时跳过模板加载，供只测 JSON 接口的用例使用。
func SetupRouter(api *handler.API, cfg config.AppConfig, templateGlob string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件。gorilla/sessions 的默认选项是 Secure+SameSite=None，
	// 明文 HTTP 下浏览器不会回传 cookie，必须显式覆盖。
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("sinswtf_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	})
	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}

	// 静态文件服务
	r.Static("/static", "./web/static")

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowHome)
	r.GET("/login", api.ShowLogin)
	r.GET("/signup", api.ShowSignup)
	r.GET("/logout", api.Logout)

	// Discord OAuth
	r.GET("/auth/discord", api.BeginDiscordAuth)
	r.GET("/auth/discord/callback", api.DiscordCallback)

	// 链接点击跳转
	r.GET("/l/:id", api.ClickLink)

	// 公开 JSON 接口
	publicAPI := r.Group("/api")
	{
		publicAPI.POST("/auth/signup", api.Signup)
		publicAPI.POST("/auth/login", api.Login)
		publicAPI.GET("/presence/:id", api.GetPresence)
		publicAPI.GET("/username/check", api.CheckUsername)
	}

	// 仪表盘页面
	dashboard := r.Group("/dashboard")
	dashboard.Use(handler.AuthRequired())
	{
		dashboard.GET("", api.ShowDashboard)
	}

	// 需要登录的 JSON 接口
	me := r.Group("/api/me")
	me.Use(handler.APIAuthRequired())
	{
		me.GET("/profile", api.GetMyProfile)
		me.PUT("/profile", api.UpdateMyProfile)

		me.GET("/customization", api.GetMyCustomization)
		me.PUT("/customization", api.UpdateMyCustomization)

		me.GET("/links", api.GetMyLinks)
		me.POST("/links", api.CreateLink)
		me.PUT("/links/:id", api.UpdateLink)
		me.DELETE("/links/:id", api.DeleteLink)

		me.GET("/social-links", api.GetMySocialLinks)
		me.POST("/social-links", api.CreateSocialLink)
		me.PUT("/social-links/:id", api.UpdateSocialLink)
		me.DELETE("/social-links/:id", api.DeleteSocialLink)

		me.GET("/widgets", api.GetMyWidgets)
		me.POST("/widgets", api.CreateWidget)
		me.PUT("/widgets/:id", api.UpdateWidget)
		me.DELETE("/widgets/:id", api.DeleteWidget)

		me.POST("/upload", api.UploadImage)
	}

	// 公开主页放在最后，根路径下的用户名路由
	r.GET("/:username", api.ShowProfile)

	return r
}
