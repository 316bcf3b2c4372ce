package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/discord"
	"github.com/sinswtf/internal/db"
	"gorm.io/gorm"
)

const sessionUserIDKey = "user_id"

// SetupDiscordOAuth 注册 Discord OAuth 提供方。
// 未配置 client id 时跳过，此时只保留邮箱密码登录。
func SetupDiscordOAuth(clientID, clientSecret, callbackURL string) {
	if strings.TrimSpace(clientID) == "" {
		return
	}
	goth.UseProviders(discord.New(clientID, clientSecret, callbackURL, discord.ScopeIdentify))
}

// BeginDiscordAuth 跳转到 Discord 授权页。
func (a *API) BeginDiscordAuth(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("provider", "discord")
	c.Request.URL.RawQuery = query.Encode()
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// DiscordCallback 处理 Discord 回调：按 Discord ID 找账号，
// 首次登录自动建账号与主页，然后写入会话。
func (a *API) DiscordCallback(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set("provider", "discord")
	c.Request.URL.RawQuery = query.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=discord")
		return
	}

	user, err := a.findOrCreateDiscordUser(gothUser)
	if err != nil {
		c.Redirect(http.StatusFound, "/login?error=discord")
		return
	}

	if err := a.saveSession(c, user.ID); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (a *API) findOrCreateDiscordUser(gothUser goth.User) (*db.User, error) {
	var user db.User
	err := a.db.Where("discord_id = ?", gothUser.UserID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	email := strings.TrimSpace(gothUser.Email)
	if email == "" {
		// Discord 可能不返回邮箱，用占位邮箱保证唯一索引可用
		email = gothUser.UserID + "@discord.local"
	}

	err = a.db.Transaction(func(tx *gorm.DB) error {
		user = db.User{
			Email:           email,
			DiscordID:       gothUser.UserID,
			DiscordUsername: gothUser.NickName,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	displayName := gothUser.NickName
	if displayName == "" {
		displayName = gothUser.Name
	}
	if _, err := a.profiles.CreateForUser(user.ID, gothUser.NickName, displayName, gothUser.AvatarURL); err != nil {
		return nil, err
	}
	return &user, nil
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// Signup 处理邮箱密码注册，成功后直接登录。
func (a *API) Signup(c *gin.Context) {
	var req signupRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		respondError(c, http.StatusBadRequest, "邮箱格式不正确")
		return
	}
	if len(strings.TrimSpace(req.Password)) < 8 {
		respondError(c, http.StatusBadRequest, "密码至少 8 位")
		return
	}

	var count int64
	if err := a.db.Model(&db.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "注册失败")
		return
	}
	if count > 0 {
		respondError(c, http.StatusBadRequest, "邮箱已被注册")
		return
	}

	user := db.User{Email: email}
	if err := user.SetPassword(req.Password); err != nil {
		respondError(c, http.StatusBadRequest, "密码不合法")
		return
	}
	if err := a.db.Create(&user).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "注册失败")
		return
	}

	username := req.Username
	if strings.TrimSpace(username) == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	profile, err := a.profiles.CreateForUser(user.ID, username, "", "")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "创建主页失败")
		return
	}

	if err := a.saveSession(c, user.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": profile.Username})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 处理邮箱密码登录。
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "请求数据格式错误") {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user db.User
	if err := a.db.Where("email = ?", email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}
	if !user.CheckPassword(req.Password) {
		respondError(c, http.StatusUnauthorized, "邮箱或密码错误")
		return
	}

	if err := a.saveSession(c, user.ID); err != nil {
		respondError(c, http.StatusInternalServerError, "会话保存失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Logout 清除会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

func (a *API) saveSession(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(sessionUserIDKey, userID)
	return session.Save()
}

// AuthRequired 保护仪表盘页面，未登录时重定向到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired 保护 JSON 接口，未登录时返回 401。
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserIDKey) == nil {
			respondError(c, http.StatusUnauthorized, "未登录")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUserID 从会话取当前登录账号，未登录返回 0。
func currentUserID(c *gin.Context) uint {
	session := sessions.Default(c)
	value := session.Get(sessionUserIDKey)
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}

// currentProfile 取当前登录账号的主页。
func (a *API) currentProfile(c *gin.Context) (*db.Profile, bool) {
	userID := currentUserID(c)
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, "未登录")
		return nil, false
	}
	profile, err := a.profiles.GetByUserID(userID)
	if err != nil {
		respondError(c, http.StatusNotFound, "主页不存在")
		return nil, false
	}
	return profile, true
}
