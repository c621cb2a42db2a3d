package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// ConnectionService implements connection upsert and the filtered/sorted list.
type ConnectionService struct {
	connections ports.ConnectionRepository
	bus         Broadcaster
	log         zerolog.Logger
	now         func() time.Time
}

func NewConnectionService(connections ports.ConnectionRepository, bus Broadcaster, log zerolog.Logger) *ConnectionService {
	return &ConnectionService{
		connections: connections,
		bus:         bus,
		log:         log,
		now:         time.Now,
	}
}

// Upsert creates or replaces the record keyed by ID. The original addedAt is
// carried over from the existing record; updatedAt is always refreshed.
func (s *ConnectionService) Upsert(ctx context.Context, in ports.UpsertConnectionInput) (*domain.Connection, error) {
	if in.ID == "" {
		return nil, domain.ErrConnectionIDRequired
	}

	now := s.now().UnixMilli()
	result := "created"

	addedAt := now
	existing, err := s.connections.FindByID(ctx, in.ID)
	if err == nil {
		addedAt = existing.AddedAt
		result = "updated"
	} else if !errors.Is(err, domain.ErrConnectionNotFound) {
		return nil, fmt.Errorf("upsert connection %s: %w", in.ID, err)
	}

	categories := in.Categories
	if categories == nil {
		categories = []string{}
	}

	conn := &domain.Connection{
		ID:         in.ID,
		Name:       in.Name,
		Title:      in.Title,
		Avatar:     in.Avatar,
		ProfileURL: in.ProfileURL,
		Categories: categories,
		Notes:      in.Notes,
		AddedAt:    addedAt,
		UpdatedAt:  now,
	}

	if err := s.connections.Upsert(ctx, conn); err != nil {
		s.log.Error().Err(err).Str("connection_id", in.ID).Msg("failed to upsert connection")
		return nil, err
	}

	metrics.ConnectionsUpsertedTotal.WithLabelValues(result).Inc()
	s.log.Info().Str("connection_id", conn.ID).Str("result", result).Msg("connection saved")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastConnectionsUpdated})

	return conn, nil
}

// List returns the stored connections with the category filter, search term,
// and sort key applied. Category filtering is single-select with the "all"
// sentinel.
func (s *ConnectionService) List(ctx context.Context, in ports.ListConnectionsInput) ([]domain.Connection, error) {
	conns, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}

	filtered := domain.FilterConnections(conns, in.Category, in.Search)
	domain.SortConnections(filtered, in.Sort)
	return filtered, nil
}
