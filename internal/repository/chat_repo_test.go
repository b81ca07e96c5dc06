package repository

import (
	"testing"
	"time"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
)

func TestListByPageOrdersAscending(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// insert out of order across two pages
	msgs := []models.ChatMessage{
		{ID: "m3", Page: domain.PageHome, UserType: domain.UserTypeUser, Username: "a", Phone: "1", Text: "third", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m1", Page: domain.PageHome, UserType: domain.UserTypeUser, Username: "a", Phone: "1", Text: "first", CreatedAt: base},
		{ID: "m2", Page: domain.PageHome, UserType: domain.UserTypeAdmin, Username: domain.AdminDisplayName, Text: "second", CreatedAt: base.Add(time.Minute)},
		{ID: "x1", Page: domain.PageSeller, UserType: domain.UserTypeUser, Username: "b", Phone: "2", Text: "other page", CreatedAt: base},
	}
	for i := range msgs {
		if err := repo.Append(&msgs[i]); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.ListByPage(domain.PageHome)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 home messages, got %d", len(list))
	}
	for i, want := range []string{"m1", "m2", "m3"} {
		if list[i].ID != want {
			t.Errorf("position %d: got %s want %s", i, list[i].ID, want)
		}
	}
}
