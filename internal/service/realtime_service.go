package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"eaglehub/internal/models"
)

// RealtimeService syncs chat through the Firebase Realtime Database.
// Every call is best-effort: the chat service falls back to the local
// store whenever a method errors.
type RealtimeService struct {
	client *db.Client
}

// NewRealtimeService creates the Realtime Database client. Returns nil if
// Firebase is not configured, which runs the hub in local-only mode.
func NewRealtimeService(databaseURL, credentialsFile string) *RealtimeService {
	if databaseURL == "" || credentialsFile == "" {
		return nil
	}
	ctx := context.Background()
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opt)
	if err != nil {
		log.Printf("[firebase] failed to init app: %v", err)
		return nil
	}
	client, err := app.Database(ctx)
	if err != nil {
		log.Printf("[firebase] failed to get database client: %v", err)
		return nil
	}
	return &RealtimeService{client: client}
}

// remoteMessage is the record shape under chats/<page>; the push key is the
// message id, so the id field itself is never stored.
type remoteMessage struct {
	Page      string    `json:"page"`
	UserType  string    `json:"user_type"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PushMessage appends the message under chats/<page> and returns the
// server-assigned key.
func (s *RealtimeService) PushMessage(ctx context.Context, page string, m *models.ChatMessage) (string, error) {
	ref := s.client.NewRef("chats/" + page)
	child, err := ref.Push(ctx, remoteMessage{
		Page:      m.Page,
		UserType:  m.UserType,
		Username:  m.Username,
		Phone:     m.Phone,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return "", err
	}
	return child.Key, nil
}

// MessagesForPage reads the page's full remote history, oldest first.
func (s *RealtimeService) MessagesForPage(ctx context.Context, page string) ([]models.ChatMessage, error) {
	var raw map[string]remoteMessage
	if err := s.client.NewRef("chats/"+page).Get(ctx, &raw); err != nil {
		return nil, err
	}
	list := make([]models.ChatMessage, 0, len(raw))
	for key, m := range raw {
		list = append(list, models.ChatMessage{
			ID:        key,
			Page:      m.Page,
			UserType:  m.UserType,
			Username:  m.Username,
			Phone:     m.Phone,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// Ping writes a heartbeat record to connection_test/ping and reports the
// outcome in a human-readable form. Operational utility for the console.
func (s *RealtimeService) Ping(ctx context.Context) (bool, string) {
	if s == nil {
		return false, "Firebase is not initialized (missing configuration)."
	}
	host, _ := os.Hostname()
	err := s.client.NewRef("connection_test/ping").Set(ctx, map[string]interface{}{
		"timestamp":   time.Now().UnixMilli(),
		"status":      "online",
		"environment": host,
	})
	if err != nil {
		return false, fmt.Sprintf("Write failed: %v. Check your Firebase security rules.", err)
	}
	return true, "Successfully wrote to Firebase. Check the connection_test node."
}
