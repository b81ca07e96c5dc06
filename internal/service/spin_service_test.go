package service

import (
	"testing"
	"time"

	"eaglehub/internal/domain"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
	"eaglehub/internal/wheel"
)

func fixedSpin(label, card string) func() wheel.Result {
	return func() wheel.Result {
		return wheel.Result{Segment: wheel.Segment{ID: 1, Label: label, Card: card}, Angle: 1800}
	}
}

func newSpinFixture(t *testing.T) (*SpinService, *repository.UserRepository, *repository.SpinRepository) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewUserRepository(db)
	spins := repository.NewSpinRepository(db)
	return NewSpinService(users, spins), users, spins
}

func TestSpinAwardsTierFlag(t *testing.T) {
	svc, users, _ := newSpinFixture(t)
	if err := users.Create(&models.User{Phone: "0711", Username: "amina", Role: domain.RoleCustomer, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	svc.spin = fixedSpin("gold", domain.CardGold)

	outcome, err := svc.SpinForUser("0711")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if outcome.Result != "gold" || !outcome.Cards.Gold {
		t.Fatalf("gold spin must set the gold flag: %+v", outcome)
	}
	stored, _ := users.GetByPhone("0711")
	if !stored.Cards.Gold {
		t.Fatal("gold flag not persisted")
	}
}

func TestBadSpinNeverFlipsFlags(t *testing.T) {
	svc, users, spins := newSpinFixture(t)
	if err := users.Create(&models.User{
		Phone: "0711", Username: "amina", Role: domain.RoleCustomer,
		Cards: models.Cards{Premium: true}, CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	svc.spin = fixedSpin("bad", "")

	outcome, err := svc.SpinForUser("0711")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if outcome.Result != "bad" {
		t.Fatalf("unexpected outcome %q", outcome.Result)
	}
	stored, _ := users.GetByPhone("0711")
	if !stored.Cards.Premium || stored.Cards.Platinum || stored.Cards.Gold {
		t.Fatalf("bad spin changed flags: %+v", stored.Cards)
	}
	got, _ := spins.LastNByPhone("0711", 5)
	if len(got) != 1 || got[0].Result != "bad" {
		t.Fatalf("spin not recorded: %+v", got)
	}
}

func TestSpinSurfacesUserLookupFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewSpinService(repository.NewUserRepository(db), repository.NewSpinRepository(db))
	svc.spin = fixedSpin("gold", domain.CardGold)

	// break the users table so the lookup fails with a real database error
	if err := db.Migrator().DropTable(&models.User{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	if _, err := svc.SpinForUser("0711"); err == nil {
		t.Fatal("a failing user lookup must not be treated as an unknown phone")
	}
}

func TestSpinUnknownPhoneStillRecorded(t *testing.T) {
	svc, users, spins := newSpinFixture(t)
	svc.spin = fixedSpin("premium", domain.CardPremium)

	outcome, err := svc.SpinForUser("0999")
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if outcome.Cards != (models.Cards{}) {
		t.Fatalf("unknown phone must get empty flags: %+v", outcome.Cards)
	}
	got, _ := spins.LastNByPhone("0999", 5)
	if len(got) != 1 {
		t.Fatalf("spin for unknown phone must still be recorded, got %d", len(got))
	}
	list, _ := users.List()
	if len(list) != 0 {
		t.Fatalf("no user should be created by a spin, got %d", len(list))
	}
}
