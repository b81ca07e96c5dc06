package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eaglehub/config"
	"eaglehub/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues console tokens. Password login and the Google OAuth
// callback both end here.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// LoginWithPassword checks the console password and returns an access
// token. Disabled (always rejected) when no hash is configured.
func (s *AuthService) LoginWithPassword(password string) (string, error) {
	hash := s.cfg.Admin.PasswordHash
	if hash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, "admin@eaglehub")
}

// IsAdminEmail reports whether the Google account is on the console
// allowlist. Comparison is case-insensitive.
func (s *AuthService) IsAdminEmail(email string) bool {
	for _, allowed := range s.cfg.Admin.Emails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// TokenForAdminEmail issues an access token for an allowlisted account.
func (s *AuthService) TokenForAdminEmail(email string) (string, error) {
	if !s.IsAdminEmail(email) {
		return "", ErrInvalidCredentials
	}
	return auth.GenerateAccessToken(&s.cfg.JWT, email)
}
