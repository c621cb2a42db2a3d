package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// UpsertConnectionInput carries a full connection record as saved from the
// tagging panel. AddedAt/UpdatedAt are owned by the service.
type UpsertConnectionInput struct {
	ID         string
	Name       string
	Title      string
	Avatar     string
	ProfileURL string
	Categories []string
	Notes      string
}

// ListConnectionsInput carries the popup's filter and sort state.
type ListConnectionsInput struct {
	// Category is a single category id or the "all" sentinel (empty means all).
	Category string
	Search   string
	Sort     domain.SortKey
}

// ConnectionService defines use-case operations for connections.
type ConnectionService interface {
	// Upsert creates or replaces the record keyed by ID, preserving the
	// original addedAt and refreshing updatedAt.
	Upsert(ctx context.Context, in UpsertConnectionInput) (*domain.Connection, error)
	List(ctx context.Context, in ListConnectionsInput) ([]domain.Connection, error)
}
