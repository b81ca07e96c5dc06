package repository

import (
	"testing"
	"time"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
)

func TestLatestForPagePicksNewest(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	inserts := []struct {
		id   string
		page string
		off  time.Duration
	}{
		{"v1", domain.PageHome, 0},
		{"v2", domain.PageCustomer, time.Minute},
		{"v3", domain.PageHome, 2 * time.Minute},
	}
	for _, in := range inserts {
		err := repo.Create(&models.Video{
			ID:             in.id,
			Title:          in.id,
			RoleVisibility: domain.RoleAll,
			TargetPage:     in.page,
			CreatedAt:      base.Add(in.off),
		})
		if err != nil {
			t.Fatalf("create %s: %v", in.id, err)
		}
	}

	got, err := repo.LatestForPage(domain.PageHome)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.ID != "v3" {
		t.Fatalf("expected most recent home video v3, got %+v", got)
	}

	none, err := repo.LatestForPage(domain.PageSeller)
	if err != nil {
		t.Fatalf("latest empty page: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil for page with no videos, got %+v", none)
	}
}

func TestListVisibleToRole(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	videos := []models.Video{
		{ID: "a", Title: "all", RoleVisibility: domain.RoleAll, TargetPage: domain.PageHome, CreatedAt: base},
		{ID: "b", Title: "sellers", RoleVisibility: domain.RoleSeller, TargetPage: domain.PageSeller, CreatedAt: base.Add(time.Minute)},
		{ID: "c", Title: "customers", RoleVisibility: domain.RoleCustomer, TargetPage: domain.PageCustomer, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range videos {
		if err := repo.Create(&videos[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.ListVisibleToRole(domain.RoleSeller)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("seller should see 2 videos, got %d", len(list))
	}
	// newest first
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("wrong order: %s, %s", list[0].ID, list[1].ID)
	}
}

func TestDeleteRemovesVideo(t *testing.T) {
	repo := NewVideoRepository(newTestDB(t))
	v := &models.Video{ID: "x", Title: "t", RoleVisibility: domain.RoleAll, TargetPage: domain.PageHome, CreatedAt: time.Now()}
	if err := repo.Create(v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete("x"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := repo.List()
	if len(list) != 0 {
		t.Fatalf("expected empty catalog, got %d", len(list))
	}
}
