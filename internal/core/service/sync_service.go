package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

const defaultLoginDelay = 500 * time.Millisecond

// syncThreshold: the mock sync only fabricates entries while the collection
// is smaller than this, so repeated syncs stay quiet once real data exists.
const syncThreshold = 3

// SyncService implements the mocked login and connection sync. Both stand in
// for a future real backend integration.
type SyncService struct {
	connections ports.ConnectionRepository
	session     ports.SessionStore
	bus         Broadcaster
	jwtSecret   string
	tokenTTL    time.Duration
	loginDelay  time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

func NewSyncService(
	connections ports.ConnectionRepository,
	session ports.SessionStore,
	bus Broadcaster,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *SyncService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SyncService{
		connections: connections,
		session:     session,
		bus:         bus,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		loginDelay:  defaultLoginDelay,
		log:         log,
		now:         time.Now,
	}
}

// Login always succeeds after a fixed delay and returns a signed session
// token. No credential is involved; real OAuth is out of scope.
func (s *SyncService) Login(ctx context.Context) (string, error) {
	select {
	case <-time.After(s.loginDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	token, err := s.generateToken()
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	if err := s.session.SetLoggedIn(ctx, true); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	s.log.Info().Msg("mock login succeeded")
	return token, nil
}

// Sync merges the fixture connections into storage when the existing
// collection holds fewer than syncThreshold entries. Idempotent on id: a
// fixture whose id already exists is skipped. Always refreshes lastSync.
func (s *SyncService) Sync(ctx context.Context) ([]domain.Connection, error) {
	existing, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync: %w", err)
	}

	added := 0
	if len(existing) < syncThreshold {
		for _, mock := range s.mockConnections() {
			if _, err := s.connections.FindByID(ctx, mock.ID); err == nil {
				continue
			} else if !errors.Is(err, domain.ErrConnectionNotFound) {
				return nil, fmt.Errorf("sync: %w", err)
			}
			m := mock
			if err := s.connections.Upsert(ctx, &m); err != nil {
				return nil, fmt.Errorf("sync: %w", err)
			}
			existing = append(existing, m)
			added++
		}
	}

	if err := s.session.SetLastSync(ctx, s.now().UnixMilli()); err != nil {
		s.log.Warn().Err(err).Msg("failed to record lastSync")
	}

	metrics.SyncsTotal.Inc()
	s.log.Info().Int("added", added).Int("total", len(existing)).Msg("mock sync completed")
	if added > 0 {
		s.bus.Publish(domain.Broadcast{Action: domain.BroadcastConnectionsUpdated})
	}

	return existing, nil
}

// Status returns the session flags the popup renders on open.
func (s *SyncService) Status(ctx context.Context) (*ports.SessionStatus, error) {
	loggedIn, err := s.session.LoggedIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("session status: %w", err)
	}
	lastSync, err := s.session.LastSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("session status: %w", err)
	}
	return &ports.SessionStatus{LoggedIn: loggedIn, LastSync: lastSync}, nil
}

func (s *SyncService) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": "local",
		"exp": s.now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// mockConnections returns the synthetic entries merged by Sync.
func (s *SyncService) mockConnections() []domain.Connection {
	now := s.now().UnixMilli()
	return []domain.Connection{
		{
			ID:         "mock1",
			Name:       "Demo User One",
			Title:      "Software Engineer",
			ProfileURL: "#",
			Categories: []string{"cat_dev"},
			AddedAt:    now - 24*time.Hour.Milliseconds(),
			UpdatedAt:  now,
		},
		{
			ID:         "mock2",
			Name:       "Demo User Two",
			Title:      "Product Manager",
			ProfileURL: "#",
			Categories: []string{"cat_biz"},
			AddedAt:    now - 48*time.Hour.Milliseconds(),
			UpdatedAt:  now,
		},
	}
}
