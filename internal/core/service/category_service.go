package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// Broadcaster publishes fire-and-forget notifications to other open contexts.
// There is no delivery guarantee; see the bus package.
type Broadcaster interface {
	Publish(b domain.Broadcast)
}

// CategoryService implements category CRUD with the delete cascade.
type CategoryService struct {
	categories  ports.CategoryRepository
	connections ports.ConnectionRepository
	bus         Broadcaster
	log         zerolog.Logger
	now         func() time.Time
}

func NewCategoryService(
	categories ports.CategoryRepository,
	connections ports.ConnectionRepository,
	bus Broadcaster,
	log zerolog.Logger,
) *CategoryService {
	return &CategoryService{
		categories:  categories,
		connections: connections,
		bus:         bus,
		log:         log,
		now:         time.Now,
	}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// Create validates the name, generates a fresh unique id, and persists the
// category.
func (s *CategoryService) Create(ctx context.Context, in ports.CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrCategoryNameRequired
	}

	id, err := s.freshID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	cat := &domain.Category{
		ID:    id,
		Name:  name,
		Color: in.Color,
		Icon:  domain.NormalizeIcon(domain.Icon(in.Icon)),
	}

	if err := s.categories.Insert(ctx, cat); err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("failed to create category")
		return nil, err
	}

	metrics.CategoriesCreatedTotal.Inc()
	s.log.Info().Str("category_id", cat.ID).Str("name", cat.Name).Msg("category created")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastCategoriesUpdated})

	return cat, nil
}

// Update replaces the entry matching id in place. A missing id fails with
// ErrCategoryNotFound instead of being silently dropped.
func (s *CategoryService) Update(ctx context.Context, id string, in ports.CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrCategoryNameRequired
	}

	if _, err := s.categories.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}

	cat := &domain.Category{
		ID:    id,
		Name:  name,
		Color: in.Color,
		Icon:  domain.NormalizeIcon(domain.Icon(in.Icon)),
	}

	if err := s.categories.Replace(ctx, cat); err != nil {
		s.log.Error().Err(err).Str("category_id", id).Msg("failed to update category")
		return nil, err
	}

	s.log.Info().Str("category_id", id).Msg("category updated")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastCategoriesUpdated})

	return cat, nil
}

// Delete removes the category and strips its id from every connection's
// membership set. The two writes are not atomic; last-writer-wins is accepted.
// Deleting an already-absent id is a no-op.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Str("category_id", id).Msg("failed to delete category")
		return err
	}

	if err := s.connections.RemoveCategoryFromAll(ctx, id); err != nil {
		s.log.Error().Err(err).Str("category_id", id).Msg("cascade failed, category already removed")
		return fmt.Errorf("delete category cascade: %w", err)
	}

	s.log.Info().Str("category_id", id).Msg("category deleted")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastCategoriesUpdated})
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastConnectionsUpdated})

	return nil
}

// freshID derives a timestamp id and bumps it until it does not collide with
// an existing category.
func (s *CategoryService) freshID(ctx context.Context) (string, error) {
	now := s.now()
	for i := 0; ; i++ {
		id := domain.NewCategoryID(now.Add(time.Duration(i) * time.Millisecond))
		_, err := s.categories.FindByID(ctx, id)
		if err == nil {
			continue
		}
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return id, nil
		}
		return "", err
	}
}
