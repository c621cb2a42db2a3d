package ports

import (
	"context"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// CategoryInput carries the editable fields of a category.
type CategoryInput struct {
	Name  string
	Color string
	Icon  string
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	// Create validates the name, generates a fresh unique id, and persists
	// the category. Empty (post-trim) names fail with ErrCategoryNameRequired.
	Create(ctx context.Context, in CategoryInput) (*domain.Category, error)
	// Update replaces the entry matching id. Missing ids fail with
	// ErrCategoryNotFound rather than being silently dropped.
	Update(ctx context.Context, id string, in CategoryInput) (*domain.Category, error)
	// Delete removes the category and strips its id from every connection.
	// Idempotent: deleting an absent id succeeds.
	Delete(ctx context.Context, id string) error
}
