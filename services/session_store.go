package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"InnerVoiceGo/models"
	"InnerVoiceGo/utils"
	"github.com/go-redis/redis/v8"
)

// 会话在Redis中的过期时间，每次访问会刷新
const sessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionStore 基于Redis的会话状态存储
// 每个会话一条JSON记录：当前用户、当前页面、聊天记录
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Create 新建会话，初始页面为 Welcome
func (s *SessionStore) Create(ctx context.Context) (*models.SessionState, error) {
	session := &models.SessionState{
		ID:          utils.GenerateID(),
		Page:        models.PageWelcome,
		ChatHistory: []models.ChatMessage{},
	}
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get 读取会话并刷新过期时间
func (s *SessionStore) Get(ctx context.Context, id string) (*models.SessionState, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session models.SessionState
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}

	s.client.Expire(ctx, sessionKey(id), sessionTTL)
	return &session, nil
}

// Save 写回会话状态
func (s *SessionStore) Save(ctx context.Context, session *models.SessionState) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err()
}

// BindUser 登录成功后把会话绑定到用户，并跳到 Home
func (s *SessionStore) BindUser(ctx context.Context, id, username string) error {
	session, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	session.Username = username
	session.Page = models.PageHome
	return s.Save(ctx, session)
}

// Navigate 切换当前页面
// 按登录状态校验目标页面，未授权的直接跳转会被拒绝
func (s *SessionStore) Navigate(ctx context.Context, id, page string) (*models.SessionState, error) {
	if !models.IsKnownPage(page) {
		return nil, ErrInvalidPage
	}

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, p := range models.AllowedPages(session.LoggedIn()) {
		if p == page {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrPageForbidden
	}

	session.Page = page
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AppendChat 往会话追加一轮对话：先用户发言，后机器人回复
func (s *SessionStore) AppendChat(ctx context.Context, id, utterance, reply string) (*models.SessionState, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.ChatHistory = append(session.ChatHistory,
		models.ChatMessage{Speaker: models.SpeakerUser, Message: utterance},
		models.ChatMessage{Speaker: models.SpeakerBot, Message: reply},
	)
	if err := s.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
