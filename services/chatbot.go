package services

import "strings"

// chatRule 一条关键词应答规则
type chatRule struct {
	Keywords []string
	Reply    string
}

// chatRules 按优先级排列的规则表，自上而下第一条命中即返回
// 规则以数据形式维护，便于单独测试
var chatRules = []chatRule{
	{
		Keywords: []string{"happy", "excited", "joy"},
		Reply:    "That's wonderful to hear! How does your body feel when you're happy?",
	},
	{
		Keywords: []string{"sad", "tired", "down"},
		Reply:    "I'm really sorry you're feeling that way. What do you think triggered it today?",
	},
	{
		Keywords: []string{"angry", "mad", "upset"},
		Reply:    "It sounds like something's bothering you. Want to talk about it?",
	},
	{
		Keywords: []string{"coping", "strategy", "breathe"},
		Reply:    "Which one would you like to try: breathwork, journaling, or talking to someone you trust?",
	},
	{
		Keywords: []string{"breathwork", "breathing"},
		Reply:    "Try a simple breathing exercise: Inhale for 4, hold for 4, exhale for 4. 💨",
	},
	{
		Keywords: []string{"journal"},
		Reply:    "Open up your notes or journal and just let the thoughts flow. ✍️",
	},
	{
		Keywords: []string{"talk", "friend"},
		Reply:    "Consider calling a friend or someone you trust. You're not alone. 📞",
	},
}

// chatFallback 没有任何关键词命中时的固定回复
const chatFallback = "Thanks for sharing. Would you like to explore coping strategies or keep talking?"

// ChatbotService 纯查表的聊天应答，无状态、无外部调用、完全确定
type ChatbotService struct{}

func NewChatbotService() *ChatbotService {
	return &ChatbotService{}
}

// Respond 对用户输入做大小写不敏感的子串匹配，返回对应回复
func (s *ChatbotService) Respond(utterance string) string {
	lowered := strings.ToLower(utterance)
	for _, rule := range chatRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Reply
			}
		}
	}
	return chatFallback
}
