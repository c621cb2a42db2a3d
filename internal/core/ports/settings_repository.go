package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// SettingsRepository persists the single settings record.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when nothing has
	// been written yet.
	Get(ctx context.Context) (domain.Settings, error)
	Put(ctx context.Context, s domain.Settings) error
}

// SessionStore holds the transient session flags shared across contexts.
type SessionStore interface {
	SetLoggedIn(ctx context.Context, v bool) error
	LoggedIn(ctx context.Context) (bool, error)
	// SetLastSync records the most recent sync, epoch milliseconds.
	SetLastSync(ctx context.Context, ms int64) error
	// LastSync returns 0 when no sync has happened.
	LastSync(ctx context.Context) (int64, error)
}

// HandoffStore holds the one-shot category modal request. The record is
// advisory: two readers can race, only one acts, both clear it.
type HandoffStore interface {
	Put(ctx context.Context, req domain.HandoffRequest) error
	// Consume atomically reads and deletes the pending request. Returns
	// domain.ErrNoHandoffRequest when nothing is pending or the record
	// aged past its validity window.
	Consume(ctx context.Context) (*domain.HandoffRequest, error)
}
