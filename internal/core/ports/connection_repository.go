package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// ConnectionRepository defines persistence operations for tagged connections.
type ConnectionRepository interface {
	List(ctx context.Context) ([]domain.Connection, error)
	// FindByID returns domain.ErrConnectionNotFound when the profile id is unknown.
	FindByID(ctx context.Context, id string) (*domain.Connection, error)
	// Upsert replaces the record keyed by c.ID, inserting when absent.
	Upsert(ctx context.Context, c *domain.Connection) error
	// RemoveCategoryFromAll strips the category id from every connection's
	// membership set (delete-category cascade).
	RemoveCategoryFromAll(ctx context.Context, categoryID string) error
	// ReplaceAll swaps the whole collection for the given set.
	ReplaceAll(ctx context.Context, connections []domain.Connection) error
}
