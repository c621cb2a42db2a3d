package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// SessionStatus is the session view the popup renders on open.
type SessionStatus struct {
	LoggedIn bool
	// LastSync is epoch milliseconds, 0 when never synced.
	LastSync int64
}

// SyncService implements the mocked backend operations: login and connection
// sync. Both are stand-ins for a future real integration.
type SyncService interface {
	// Login always succeeds after a fixed delay and returns a signed
	// session token.
	Login(ctx context.Context) (string, error)
	// Sync merges a small fixed set of synthetic connections into storage
	// when the existing collection is small; idempotent on id. Returns the
	// combined collection and refreshes the lastSync flag.
	Sync(ctx context.Context) ([]domain.Connection, error)
	Status(ctx context.Context) (*SessionStatus, error)
}

// SettingsService reads and updates user preferences.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	// UpdateTheme rejects values outside the theme enum with ErrInvalidTheme.
	UpdateTheme(ctx context.Context, theme string) (domain.Settings, error)
}
