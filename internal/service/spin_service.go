package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eaglehub/internal/models"
	"eaglehub/internal/repository"
	"eaglehub/internal/wheel"
)

// SpinService records wheel spins and awards tier flags.
type SpinService struct {
	users *repository.UserRepository
	spins *repository.SpinRepository
	spin  func() wheel.Result
}

func NewSpinService(users *repository.UserRepository, spins *repository.SpinRepository) *SpinService {
	return &SpinService{users: users, spins: spins, spin: wheel.Spin}
}

// SpinOutcome is what the frontend animates and displays.
type SpinOutcome struct {
	Result string       `json:"result"`
	Angle  float64      `json:"angle"`
	Cards  models.Cards `json:"cards"`
}

// SpinForUser spins the wheel for a phone, records the result, and sets the
// winning tier flag when the outcome names one. Flags are never cleared by
// a spin. A spin for an unknown phone is still recorded; no flag is set.
func (s *SpinService) SpinForUser(phone string) (SpinOutcome, error) {
	res := s.spin()

	record := &models.SpinResult{
		ID:        uuid.NewString(),
		Phone:     phone,
		Result:    res.Segment.Label,
		CreatedAt: time.Now(),
	}
	if err := s.spins.Create(record); err != nil {
		return SpinOutcome{}, err
	}

	outcome := SpinOutcome{Result: res.Segment.Label, Angle: res.Angle}
	user, err := s.users.GetByPhone(phone)
	if err == gorm.ErrRecordNotFound {
		// unknown phone: record the spin, award nothing
		return outcome, nil
	}
	if err != nil {
		return SpinOutcome{}, err
	}
	if res.Segment.Card != "" {
		user.Cards.Set(res.Segment.Card, true)
		if err := s.users.UpdateCards(phone, user.Cards); err != nil {
			log.Printf("[spin] card update failed for %s: %v", phone, err)
		}
	}
	outcome.Cards = user.Cards
	return outcome, nil
}
