package repository

import (
	"testing"
	"time"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
)

func TestUpdateCardsPersistsFullSet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	u := &models.User{Phone: "0711", Username: "amina", Role: domain.RoleCustomer, CreatedAt: time.Now()}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateCards("0711", models.Cards{Premium: true, Gold: true}); err != nil {
		t.Fatalf("update cards: %v", err)
	}
	got, err := repo.GetByPhone("0711")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Cards.Premium || got.Cards.Platinum || !got.Cards.Gold {
		t.Fatalf("cards not persisted: %+v", got.Cards)
	}
}

func TestUpdateCardsUnknownPhoneIsNoop(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	u := &models.User{Phone: "0711", Username: "amina", Role: domain.RoleCustomer, CreatedAt: time.Now()}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.UpdateCards("0999", models.Cards{Premium: true}); err != nil {
		t.Fatalf("no-op toggle must not error: %v", err)
	}
	list, _ := repo.List()
	if len(list) != 1 || list[0].Cards.Premium {
		t.Fatalf("user list changed by unknown-phone toggle: %+v", list)
	}
}

func TestSpinLastNByPhone(t *testing.T) {
	db := newTestDB(t)
	spins := NewSpinRepository(db)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	labels := []string{"bad", "try", "gold", "bad", "mystery", "premium", "3more"}
	for i, label := range labels {
		err := spins.Create(&models.SpinResult{
			ID:        label + "-" + string(rune('a'+i)),
			Phone:     "0711",
			Result:    label,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := spins.LastNByPhone("0711", 5)
	if err != nil {
		t.Fatalf("last n: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 spins, got %d", len(got))
	}
	// chronological order, the two oldest dropped
	want := []string{"gold", "bad", "mystery", "premium", "3more"}
	for i, s := range got {
		if s.Result != want[i] {
			t.Errorf("position %d: got %s want %s", i, s.Result, want[i])
		}
	}
}
