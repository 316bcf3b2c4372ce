package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// StyleScope 管理自定义 CSS 的文档级样式作用域。
// 每次页面挂载通过 Acquire 登记一段样式并拿到释放函数，卸载时调用释放，
// 避免单页应用导航后样式泄漏到其他主页视图。
// CSS 内容按约定原样注入（信任边界），仅剥离能够提前闭合 style 标签的序列。
type StyleScope struct {
	mu     sync.Mutex
	nextID uint64
	blocks map[uint64]string
}

// NewStyleScope 构造空的样式作用域。
func NewStyleScope() *StyleScope {
	return &StyleScope{blocks: make(map[uint64]string)}
}

// Acquire 登记一段自定义 CSS，返回对应的释放函数。释放函数幂等。
// 空白内容同样登记（渲染为空块），保持「挂载即持有」的对称性。
func (s *StyleScope) Acquire(css string) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.blocks[id] = sanitizeCSS(css)

	released := false
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if released {
			return
		}
		released = true
		delete(s.blocks, id)
	}
}

// Render 按登记顺序拼接当前持有的全部样式块。
func (s *StyleScope) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uint64, 0, len(s.blocks))
	for id := range s.blocks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sb strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&sb, "<style data-profile-css=\"%d\">\n%s\n</style>\n", id, s.blocks[id])
	}
	return sb.String()
}

// Len 返回当前持有的样式块数量。
func (s *StyleScope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blocks)
}

// sanitizeCSS 剥离闭合标签序列，防止自定义 CSS 逃逸出自身的 style 标签。
func sanitizeCSS(css string) string {
	replaced := css
	for {
		lowered := strings.ToLower(replaced)
		idx := strings.Index(lowered, "</style")
		if idx < 0 {
			return replaced
		}
		replaced = replaced[:idx] + replaced[idx+len("</style"):]
	}
}
