package service

import (
	"context"
	"errors"
	"testing"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

func TestSettingsService_Get_DefaultsToLight(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, discardLogger)

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Theme != domain.ThemeLight {
		t.Errorf("expected light default, got %q", settings.Theme)
	}
}

func TestSettingsService_UpdateTheme(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, discardLogger)

	settings, err := svc.UpdateTheme(context.Background(), "dark")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Theme != domain.ThemeDark {
		t.Errorf("expected dark, got %q", settings.Theme)
	}
	if repo.stored == nil || repo.stored.Theme != domain.ThemeDark {
		t.Error("theme not persisted")
	}
}

func TestSettingsService_UpdateTheme_RejectsUnknown(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, discardLogger)

	if _, err := svc.UpdateTheme(context.Background(), "neon"); !errors.Is(err, domain.ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}
