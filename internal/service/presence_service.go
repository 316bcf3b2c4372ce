package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sinswtf/internal/render"
)

// presencePollInterval 是在线状态的固定刷新周期。
const presencePollInterval = 30 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DiscordActivity 是在线状态中的单个活动条目。
type DiscordActivity struct {
	Type       int    `json:"type"`
	Name       string `json:"name"`
	Details    string `json:"details"`
	State      string `json:"state"`
	LargeImage string `json:"large_image"`
}

// DiscordPresence 是从第三方查询服务取回的临时视图模型，不落库。
type DiscordPresence struct {
	UserID       string            `json:"user_id"`
	Username     string            `json:"username"`
	Avatar       string            `json:"avatar"`
	AvatarURL    string            `json:"avatar_url"`
	Status       string            `json:"status"`
	CustomStatus string            `json:"custom_status"`
	Activities   []DiscordActivity `json:"activities"`
}

// ResolvedAvatarURL 返回头像地址；接口未直接给出时按 CDN 约定拼接。
func (p *DiscordPresence) ResolvedAvatarURL() string {
	if p.AvatarURL != "" {
		return p.AvatarURL
	}
	return render.DiscordAvatarURL(p.UserID, p.Avatar)
}

// PresenceService 负责查询与轮询 Discord 在线状态。
// 查询接口是公开服务，无需令牌；网络失败只记日志并保留上一次状态。
type PresenceService struct {
	http         httpDoer
	baseURL      string
	pollInterval time.Duration
}

// NewPresenceService 构造 PresenceService。
func NewPresenceService(baseURL string) *PresenceService {
	return &PresenceService{
		http:         &http.Client{Timeout: 10 * time.Second},
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		pollInterval: presencePollInterval,
	}
}

// SetHTTPClient 允许在测试中注入自定义 HTTP 客户端。
func (s *PresenceService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	s.http = client
}

// WithPollInterval 允许在测试或特定场景下调整轮询周期。
func (s *PresenceService) WithPollInterval(d time.Duration) *PresenceService {
	if d <= 0 {
		return s
	}
	s.pollInterval = d
	return s
}

// Fetch 向查询服务发起一次在线状态请求。
func (s *PresenceService) Fetch(ctx context.Context, discordUserID string) (*DiscordPresence, error) {
	trimmed := strings.TrimSpace(discordUserID)
	if trimmed == "" {
		return nil, fmt.Errorf("empty discord user id")
	}

	url := fmt.Sprintf("%s/profile/%s", s.baseURL, trimmed)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("presence endpoint returned status %d", resp.StatusCode)
	}

	var presence DiscordPresence
	if err := json.NewDecoder(resp.Body).Decode(&presence); err != nil {
		return nil, err
	}
	if presence.UserID == "" {
		presence.UserID = trimmed
	}
	return &presence, nil
}

// PresencePoller 持有一条轮询循环的取消句柄与最近一次成功取回的状态。
type PresencePoller struct {
	mu     sync.Mutex
	latest *DiscordPresence
	cancel context.CancelFunc
	done   chan struct{}
}

// Latest 返回最近一次成功取回的在线状态，可能为 nil。
func (p *PresencePoller) Latest() *DiscordPresence {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Stop 终止轮询循环并等待其退出。幂等。
func (p *PresencePoller) Stop() {
	p.cancel()
	<-p.done
}

// StartPolling 启动在线状态轮询：启用时立即发起一次请求，
// 之后按固定周期刷新，直到 Stop 被调用。失败不提前重试，等下一个周期。
// onUpdate 可以为 nil；非 nil 时每次成功取回都会被调用。
func (s *PresenceService) StartPolling(discordUserID string, onUpdate func(*DiscordPresence)) *PresencePoller {
	ctx, cancel := context.WithCancel(context.Background())
	poller := &PresencePoller{cancel: cancel, done: make(chan struct{})}

	fetch := func() {
		presence, err := s.Fetch(ctx, discordUserID)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("presence fetch for %s failed: %v", discordUserID, err)
			}
			return
		}
		poller.mu.Lock()
		poller.latest = presence
		poller.mu.Unlock()
		if onUpdate != nil {
			onUpdate(presence)
		}
	}

	go func() {
		defer close(poller.done)

		fetch()

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fetch()
			}
		}
	}()

	return poller
}
