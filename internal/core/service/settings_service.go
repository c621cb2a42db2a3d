package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// SettingsService reads and updates user preferences.
type SettingsService struct {
	settings ports.SettingsRepository
	log      zerolog.Logger
}

func NewSettingsService(settings ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{settings: settings, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

// UpdateTheme rejects values outside the theme enum.
func (s *SettingsService) UpdateTheme(ctx context.Context, theme string) (domain.Settings, error) {
	t := domain.Theme(theme)
	if !domain.ValidTheme(t) {
		return domain.Settings{}, fmt.Errorf("update theme %q: %w", theme, domain.ErrInvalidTheme)
	}

	settings := domain.Settings{Theme: t}
	if err := s.settings.Put(ctx, settings); err != nil {
		s.log.Error().Err(err).Msg("failed to save settings")
		return domain.Settings{}, err
	}

	s.log.Info().Str("theme", theme).Msg("settings saved")
	return settings, nil
}
