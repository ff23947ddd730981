package models

// 页面标识
const (
	PageWelcome   = "Welcome"
	PageHome      = "Home"
	PageLogin     = "Login"
	PageAboutUs   = "About Us"
	PageYourTools = "Your Tools"
	PageProfile   = "Profile"
)

// 对话双方
const (
	SpeakerUser = "You"
	SpeakerBot  = "Bot"
)

// ChatMessage 会话内一条聊天消息
type ChatMessage struct {
	Speaker string `json:"speaker"`
	Message string `json:"message"`
}

// SessionState 单个会话的全部状态，以JSON存在Redis中
// 会话过期即整体丢失，聊天记录不做持久化
type SessionState struct {
	ID          string        `json:"id"`
	Username    string        `json:"username"` // 未登录时为空
	Page        string        `json:"page"`
	ChatHistory []ChatMessage `json:"chat_history"`
}

// LoggedIn 会话是否已绑定登录用户
func (s *SessionState) LoggedIn() bool {
	return s.Username != ""
}

// AllowedPages 根据登录状态返回可访问的页面集合
func AllowedPages(loggedIn bool) []string {
	if loggedIn {
		return []string{PageHome, PageAboutUs, PageYourTools, PageProfile}
	}
	return []string{PageWelcome, PageAboutUs, PageLogin}
}

// IsKnownPage 页面名是否合法
func IsKnownPage(page string) bool {
	switch page {
	case PageWelcome, PageHome, PageLogin, PageAboutUs, PageYourTools, PageProfile:
		return true
	}
	return false
}
