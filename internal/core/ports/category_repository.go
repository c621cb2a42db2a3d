package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	// List returns all categories in insertion order.
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) error
	// Replace overwrites the category matching c.ID.
	// Returns domain.ErrCategoryNotFound when no such id exists.
	Replace(ctx context.Context, c *domain.Category) error
	// Delete removes the category by id. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id string) error
	// ReplaceAll swaps the whole collection for the given set (import,
	// clear-all). Not transactional with any connection write.
	ReplaceAll(ctx context.Context, categories []domain.Category) error
}
