package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"eaglehub/internal/domain"
	"eaglehub/internal/events"
	"eaglehub/internal/models"
	"eaglehub/internal/repository"
	"eaglehub/pkg/cloudinary"
)

// BrandingService owns the singleton branding settings and the logo upload
// with its placeholder fallback.
type BrandingService struct {
	settings *repository.SettingRepository
	cloud    cloudinary.Client // nil when blob storage is unconfigured
	bus      *events.Bus
}

func NewBrandingService(settings *repository.SettingRepository, cloud cloudinary.Client, bus *events.Bus) *BrandingService {
	return &BrandingService{settings: settings, cloud: cloud, bus: bus}
}

// Get returns the current branding payload, defaulting the logo when the
// setting was never written.
func (s *BrandingService) Get() models.AppSettings {
	logo, err := s.settings.Get(repository.SettingLogoURL)
	if err != nil || logo == "" {
		logo = domain.DefaultLogoURL
	}
	return models.AppSettings{LogoURL: logo}
}

// UpdateLogo uploads the image and persists the resulting URL. Any upload
// failure, including no blob store at all, substitutes the fixed
// placeholder so the stored URL never dangles.
func (s *BrandingService) UpdateLogo(ctx context.Context, file io.Reader) (models.AppSettings, error) {
	var logoURL string
	if s.cloud != nil {
		publicID := fmt.Sprintf("logo_%d", time.Now().UnixMilli())
		url, err := s.cloud.UploadImage(ctx, file, "eagle/branding", publicID)
		if err != nil {
			log.Printf("[branding] logo upload failed, using placeholder: %v", err)
		} else {
			logoURL = url
		}
	}
	if logoURL == "" {
		logoURL = domain.PlaceholderLogoURL
	}
	if err := s.settings.Set(repository.SettingLogoURL, logoURL); err != nil {
		return models.AppSettings{}, err
	}
	settings := models.AppSettings{LogoURL: logoURL}
	s.bus.Publish(events.TopicSettingsUpdated, settings)
	return settings, nil
}
