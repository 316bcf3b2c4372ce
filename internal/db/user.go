package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 定义了登录账号模型。
// 账号既可以通过邮箱密码注册，也可以由 Discord OAuth 首次登录时自动创建，
// 两种来源共用同一张表，DiscordID 为空表示纯本地账号。
type User struct {
	gorm.Model
	Email           string `gorm:"uniqueIndex;size:255;not null"`
	Password        string `gorm:"size:255"`
	DiscordID       string `gorm:"index;size:32"`
	DiscordUsername string `gorm:"size:64"`
}

// SetPassword 以 bcrypt 哈希保存明文密码。
func (u *User) SetPassword(plain string) error {
	trimmed := strings.TrimSpace(plain)
	if trimmed == "" {
		return errors.New("password must not be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(trimmed), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword 校验明文密码与存储的哈希是否匹配。
func (u *User) CheckPassword(plain string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
