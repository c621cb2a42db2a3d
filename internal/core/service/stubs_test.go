package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubCategoryRepo struct {
	items []domain.Category
	err   error // if set, every method returns this error
}

func newStubCategoryRepo(items ...domain.Category) *stubCategoryRepo {
	return &stubCategoryRepo{items: items}
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Category, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Insert(_ context.Context, c *domain.Category) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *stubCategoryRepo) Replace(_ context.Context, c *domain.Category) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = *c
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubCategoryRepo) ReplaceAll(_ context.Context, categories []domain.Category) error {
	if r.err != nil {
		return r.err
	}
	r.items = append([]domain.Category(nil), categories...)
	return nil
}

type stubConnectionRepo struct {
	items []domain.Connection
	err   error
}

func newStubConnectionRepo(items ...domain.Connection) *stubConnectionRepo {
	return &stubConnectionRepo{items: items}
}

func (r *stubConnectionRepo) List(_ context.Context) ([]domain.Connection, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Connection, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *stubConnectionRepo) FindByID(_ context.Context, id string) (*domain.Connection, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.items {
		if r.items[i].ID == id {
			clone := r.items[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrConnectionNotFound
}

func (r *stubConnectionRepo) Upsert(_ context.Context, c *domain.Connection) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = *c
			return nil
		}
	}
	r.items = append(r.items, *c)
	return nil
}

func (r *stubConnectionRepo) RemoveCategoryFromAll(_ context.Context, categoryID string) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.items {
		kept := r.items[i].Categories[:0]
		for _, id := range r.items[i].Categories {
			if id != categoryID {
				kept = append(kept, id)
			}
		}
		r.items[i].Categories = kept
	}
	return nil
}

func (r *stubConnectionRepo) ReplaceAll(_ context.Context, connections []domain.Connection) error {
	if r.err != nil {
		return r.err
	}
	r.items = append([]domain.Connection(nil), connections...)
	return nil
}

type stubSettingsRepo struct {
	stored *domain.Settings
	err    error
}

func (r *stubSettingsRepo) Get(_ context.Context) (domain.Settings, error) {
	if r.err != nil {
		return domain.Settings{}, r.err
	}
	if r.stored == nil {
		return domain.DefaultSettings(), nil
	}
	return *r.stored, nil
}

func (r *stubSettingsRepo) Put(_ context.Context, s domain.Settings) error {
	if r.err != nil {
		return r.err
	}
	r.stored = &s
	return nil
}

type stubSessionStore struct {
	loggedIn bool
	lastSync int64
	err      error
}

func (s *stubSessionStore) SetLoggedIn(_ context.Context, v bool) error {
	if s.err != nil {
		return s.err
	}
	s.loggedIn = v
	return nil
}

func (s *stubSessionStore) LoggedIn(_ context.Context) (bool, error) {
	return s.loggedIn, s.err
}

func (s *stubSessionStore) SetLastSync(_ context.Context, ms int64) error {
	if s.err != nil {
		return s.err
	}
	s.lastSync = ms
	return nil
}

func (s *stubSessionStore) LastSync(_ context.Context) (int64, error) {
	return s.lastSync, s.err
}

// stubBus records every published broadcast in order.
type stubBus struct {
	published []domain.Broadcast
}

func (b *stubBus) Publish(bc domain.Broadcast) {
	b.published = append(b.published, bc)
}

func (b *stubBus) actions() []domain.BroadcastAction {
	out := make([]domain.BroadcastAction, len(b.published))
	for i, bc := range b.published {
		out[i] = bc.Action
	}
	return out
}
