package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"eaglehub/internal/domain"
	"eaglehub/internal/events"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
)

var chatFallbacks = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "eaglehub_chat_local_fallbacks_total",
	Help: "Chat operations that fell back to the local store",
})

func init() {
	prometheus.MustRegister(chatFallbacks)
}

// RemoteChatStore is the remote side of the chat sync. *RealtimeService
// implements it; tests substitute fakes.
type RemoteChatStore interface {
	PushMessage(ctx context.Context, page string, m *models.ChatMessage) (string, error)
	MessagesForPage(ctx context.Context, page string) ([]models.ChatMessage, error)
}

// ChatService owns the remote-or-local policy for chat: the remote store
// wins when reachable, otherwise the local table serves. Exactly one of the
// two holds any given message; the stores are never reconciled.
type ChatService struct {
	local  *repository.ChatRepository
	remote RemoteChatStore // nil in local-only mode
	bus    *events.Bus
}

func NewChatService(local *repository.ChatRepository, remote RemoteChatStore, bus *events.Bus) *ChatService {
	return &ChatService{local: local, remote: remote, bus: bus}
}

// History returns the page's full chat history ordered by creation time
// ascending. Remote absence or failure falls through to the local store.
func (s *ChatService) History(ctx context.Context, page string) ([]models.ChatMessage, error) {
	if s.remote != nil {
		list, err := s.remote.MessagesForPage(ctx, page)
		if err == nil {
			return list, nil
		}
		log.Printf("[chat] remote fetch failed for page %s, falling back to local: %v", page, err)
		chatFallbacks.Inc()
	}
	return s.local.ListByPage(page)
}

// SendUserMessage appends a user-authored message to the page's room.
func (s *ChatService) SendUserMessage(ctx context.Context, page, username, phone, text string) (*models.ChatMessage, error) {
	return s.send(ctx, &models.ChatMessage{
		Page:      page,
		UserType:  domain.UserTypeUser,
		Username:  username,
		Phone:     phone,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

// SendAdminReply appends an admin message. Phone is the addressed user's
// phone when replying inside a conversation; it stays empty for broadcasts.
func (s *ChatService) SendAdminReply(ctx context.Context, page, text, phone string) (*models.ChatMessage, error) {
	return s.send(ctx, &models.ChatMessage{
		Page:      page,
		UserType:  domain.UserTypeAdmin,
		Username:  domain.AdminDisplayName,
		Phone:     phone,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

func (s *ChatService) send(ctx context.Context, m *models.ChatMessage) (*models.ChatMessage, error) {
	if s.remote != nil {
		key, err := s.remote.PushMessage(ctx, m.Page, m)
		if err == nil {
			m.ID = key
			s.bus.Publish(events.TopicChatUpdated, nil)
			return m, nil
		}
		log.Printf("[chat] remote push failed, saving locally: %v", err)
		chatFallbacks.Inc()
	}
	m.ID = uuid.NewString()
	if err := s.local.Append(m); err != nil {
		return nil, err
	}
	s.bus.Publish(events.TopicChatUpdated, nil)
	return m, nil
}

// Conversation is one admin-console row: the latest user message per
// (page, phone) pair.
type Conversation struct {
	Page     string    `json:"page"`
	Phone    string    `json:"phone"`
	Username string    `json:"username"`
	LastMsg  string    `json:"last_msg"`
	Time     time.Time `json:"time"`
}

// Conversations lists every (page, phone) thread across the four fixed
// pages, most recent activity first. Admin messages never form a thread.
func (s *ChatService) Conversations(ctx context.Context) ([]Conversation, error) {
	var all []models.ChatMessage
	for _, page := range domain.Pages() {
		list, err := s.History(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
	}

	latest := make(map[string]Conversation)
	for _, m := range all {
		if m.UserType != domain.UserTypeUser {
			continue
		}
		key := m.Page + "_" + m.Phone
		if existing, ok := latest[key]; ok && !m.CreatedAt.After(existing.Time) {
			continue
		}
		latest[key] = Conversation{
			Page:     m.Page,
			Phone:    m.Phone,
			Username: m.Username,
			LastMsg:  m.Text,
			Time:     m.CreatedAt,
		}
	}

	out := make([]Conversation, 0, len(latest))
	for _, c := range latest {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.After(out[j].Time) })
	return out, nil
}

// ConversationMessages returns one user's thread on a page: their own
// messages plus every admin message on that page. Two users on the same
// page never see each other's messages.
func (s *ChatService) ConversationMessages(ctx context.Context, page, phone string) ([]models.ChatMessage, error) {
	history, err := s.History(ctx, page)
	if err != nil {
		return nil, err
	}
	out := make([]models.ChatMessage, 0, len(history))
	for _, m := range history {
		if m.Phone == phone || m.UserType == domain.UserTypeAdmin {
			out = append(out, m)
		}
	}
	return out, nil
}
