package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/talha-mahmood/Linkedin-list/internal/api/metrics"
	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

// exportFormatVersion is carried in every export payload so importers can
// tell formats apart later.
const exportFormatVersion = "1.0"

const allCategoriesLabel = "All Categories"

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// TransferService synthesizes export payloads, validates imports, and wipes
// data. It is the only component that writes both collections wholesale.
type TransferService struct {
	categories  ports.CategoryRepository
	connections ports.ConnectionRepository
	settings    ports.SettingsRepository
	bus         Broadcaster
	log         zerolog.Logger
	now         func() time.Time
}

func NewTransferService(
	categories ports.CategoryRepository,
	connections ports.ConnectionRepository,
	settings ports.SettingsRepository,
	bus Broadcaster,
	log zerolog.Logger,
) *TransferService {
	return &TransferService{
		categories:  categories,
		connections: connections,
		settings:    settings,
		bus:         bus,
		log:         log,
		now:         time.Now,
	}
}

// urlExport is the canonical full URL-only export shape: a mapping from
// category display name to the profile URLs tagged with it. A connection
// tagged with N categories contributes its URL to N buckets. Notes and
// personal name fields never appear here.
type urlExport struct {
	Version    string              `json:"version"`
	Timestamp  string              `json:"timestamp"`
	Categories map[string][]string `json:"categories"`
}

// singleCategoryExport lists only the URLs of one category.
type singleCategoryExport struct {
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Category  string   `json:"category"`
	URLs      []string `json:"urls"`
}

// backupPayload is the full-fidelity shape, the round-trip partner of Import.
type backupPayload struct {
	Version     string              `json:"version"`
	ExportDate  string              `json:"exportDate"`
	Categories  []domain.Category   `json:"categories"`
	Connections []domain.Connection `json:"connections"`
	Settings    domain.Settings     `json:"settings"`
}

// ExportURLs builds the URL-only export for one category or for all of them.
func (s *TransferService) ExportURLs(ctx context.Context, categoryID string) (*ports.ExportResult, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	connections, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	now := s.now().UTC()

	if categoryID == "" || categoryID == domain.CategoryFilterAll {
		return s.exportAll(categories, connections, now)
	}
	return s.exportSingle(categories, connections, categoryID, now)
}

func (s *TransferService) exportAll(categories []domain.Category, connections []domain.Connection, now time.Time) (*ports.ExportResult, error) {
	if len(connections) == 0 {
		return nil, domain.ErrNothingToExport
	}

	buckets := make(map[string][]string, len(categories))
	for _, cat := range categories {
		for _, conn := range connections {
			if conn.ProfileURL == "" || !conn.HasCategory(cat.ID) {
				continue
			}
			buckets[cat.Name] = append(buckets[cat.Name], conn.ProfileURL)
		}
	}

	data, err := json.MarshalIndent(urlExport{
		Version:    exportFormatVersion,
		Timestamp:  now.Format(time.RFC3339),
		Categories: buckets,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("all").Inc()
	s.log.Info().Int("connections", len(connections)).Msg("full url export generated")

	return &ports.ExportResult{
		Data:     data,
		Filename: exportFilename("all-categories", now),
		Count:    len(connections),
		Category: allCategoriesLabel,
	}, nil
}

func (s *TransferService) exportSingle(categories []domain.Category, connections []domain.Connection, categoryID string, now time.Time) (*ports.ExportResult, error) {
	var category *domain.Category
	for i := range categories {
		if categories[i].ID == categoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return nil, fmt.Errorf("export category %s: %w", categoryID, domain.ErrCategoryNotFound)
	}

	urls := make([]string, 0)
	for _, conn := range connections {
		if conn.ProfileURL != "" && conn.HasCategory(categoryID) {
			urls = append(urls, conn.ProfileURL)
		}
	}
	if len(urls) == 0 {
		return nil, domain.ErrNothingToExport
	}

	data, err := json.MarshalIndent(singleCategoryExport{
		Version:   exportFormatVersion,
		Timestamp: now.Format(time.RFC3339),
		Category:  category.Name,
		URLs:      urls,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("single").Inc()
	s.log.Info().Str("category_id", categoryID).Int("urls", len(urls)).Msg("category url export generated")

	return &ports.ExportResult{
		Data:     data,
		Filename: exportFilename(slugify(category.Name), now),
		Count:    len(urls),
		Category: category.Name,
	}, nil
}

// ExportBackup builds the full-fidelity backup of all persisted data.
func (s *TransferService) ExportBackup(ctx context.Context) (*ports.ExportResult, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}
	connections, err := s.connections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}

	now := s.now().UTC()
	data, err := json.MarshalIndent(backupPayload{
		Version:     exportFormatVersion,
		ExportDate:  now.Format(time.RFC3339),
		Categories:  categories,
		Connections: connections,
		Settings:    settings,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("backup: %w", err)
	}

	metrics.ExportsTotal.WithLabelValues("backup").Inc()

	return &ports.ExportResult{
		Data:     data,
		Filename: fmt.Sprintf("linkedin-network-backup-%s.json", now.Format("2006-01-02")),
		Count:    len(connections),
		Category: allCategoriesLabel,
	}, nil
}

// importPayload defers array decoding so that malformed shapes (e.g. a string
// where an array belongs) are reported as the single "invalid data format"
// condition rather than a raw decoder error.
type importPayload struct {
	Categories  json.RawMessage  `json:"categories"`
	Connections json.RawMessage  `json:"connections"`
	Settings    *domain.Settings `json:"settings"`
}

// Import validates the payload and wholesale-overwrites both collections.
// Settings are replaced only when present. Nothing is written on failure.
func (s *TransferService) Import(ctx context.Context, data []byte) error {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.ErrInvalidImport
	}
	// An absent key leaves the RawMessage nil; a present `null` carries the
	// literal bytes. Both fail here: only real arrays may replace storage.
	if !isJSONArray(payload.Categories) || !isJSONArray(payload.Connections) {
		return domain.ErrInvalidImport
	}

	var categories []domain.Category
	if err := json.Unmarshal(payload.Categories, &categories); err != nil {
		return domain.ErrInvalidImport
	}
	var connections []domain.Connection
	if err := json.Unmarshal(payload.Connections, &connections); err != nil {
		return domain.ErrInvalidImport
	}

	if err := validateImportEntities(categories, connections); err != nil {
		return err
	}

	if err := s.categories.ReplaceAll(ctx, categories); err != nil {
		metrics.ImportsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("import failed writing categories")
		return err
	}
	if err := s.connections.ReplaceAll(ctx, connections); err != nil {
		metrics.ImportsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Msg("import failed writing connections")
		return err
	}
	if payload.Settings != nil {
		settings := *payload.Settings
		if !domain.ValidTheme(settings.Theme) {
			settings.Theme = domain.ThemeLight
		}
		if err := s.settings.Put(ctx, settings); err != nil {
			s.log.Warn().Err(err).Msg("import failed writing settings, collections already replaced")
		}
	}

	metrics.ImportsTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Int("categories", len(categories)).
		Int("connections", len(connections)).
		Msg("data imported")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastDataImported})

	return nil
}

// isJSONArray reports whether raw's first non-space byte opens an array.
// json.Unmarshal would happily turn `null` into a nil slice, which is not an
// acceptable collection here.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}

// validateImportEntities applies the structural checks the reference behavior
// skipped: non-empty ids and names, no duplicate ids within the payload.
func validateImportEntities(categories []domain.Category, connections []domain.Connection) error {
	seenCats := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" || strings.TrimSpace(c.Name) == "" || seenCats[c.ID] {
			return domain.ErrInvalidImport
		}
		seenCats[c.ID] = true
	}
	seenConns := make(map[string]bool, len(connections))
	for _, c := range connections {
		if c.ID == "" || seenConns[c.ID] {
			return domain.ErrInvalidImport
		}
		seenConns[c.ID] = true
	}
	return nil
}

// ClearAll wipes categories and connections. Settings survive.
func (s *TransferService) ClearAll(ctx context.Context) error {
	if err := s.categories.ReplaceAll(ctx, []domain.Category{}); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}
	if err := s.connections.ReplaceAll(ctx, []domain.Connection{}); err != nil {
		return fmt.Errorf("clear data: %w", err)
	}

	s.log.Info().Msg("all data cleared")
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastCategoriesUpdated})
	s.bus.Publish(domain.Broadcast{Action: domain.BroadcastConnectionsUpdated})

	return nil
}

func exportFilename(slug string, now time.Time) string {
	return fmt.Sprintf("linkedin-%s-urls-%s.json", slug, now.Format("2006-01-02"))
}

// slugify lowercases the name and collapses non-alphanumeric runs to "-".
func slugify(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
