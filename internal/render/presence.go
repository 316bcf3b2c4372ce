package render

import (
	"fmt"
	"strings"
)

// Discord 在线状态的四种固定取值。
const (
	StatusOnline  = "online"
	StatusIdle    = "idle"
	StatusDnd     = "dnd"
	StatusOffline = "offline"
)

// statusBadge 是状态指示点的颜色与标签。
type statusBadge struct {
	Color string
	Label string
}

var statusBadges = map[string]statusBadge{
	StatusOnline:  {Color: "#43b581", Label: "Online"},
	StatusIdle:    {Color: "#faa61a", Label: "Idle"},
	StatusDnd:     {Color: "#f04747", Label: "Do Not Disturb"},
	StatusOffline: {Color: "#747f8d", Label: "Offline"},
}

// StatusColor 返回状态指示点颜色，未知或缺失状态按离线处理。
func StatusColor(status string) string {
	return statusBadgeFor(status).Color
}

// StatusLabel 返回状态文案，未知或缺失状态按离线处理。
func StatusLabel(status string) string {
	return statusBadgeFor(status).Label
}

func statusBadgeFor(status string) statusBadge {
	if badge, ok := statusBadges[strings.ToLower(strings.TrimSpace(status))]; ok {
		return badge
	}
	return statusBadges[StatusOffline]
}

// ActivityLabel 返回活动条目的前缀文案：
// 类型 0 为 Playing，类型 2 为 Listening to，其余统一为 Activity。
func ActivityLabel(activityType int) string {
	switch activityType {
	case 0:
		return "Playing"
	case 2:
		return "Listening to"
	default:
		return "Activity"
	}
}

// DiscordAvatarURL 在接口未直接给出头像地址时，按 CDN 约定拼接回退 URL。
func DiscordAvatarURL(userID, avatarID string) string {
	if userID == "" || avatarID == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", userID, avatarID)
}
