package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

func newTransferService(cats *stubCategoryRepo, conns *stubConnectionRepo, settings *stubSettingsRepo, bus *stubBus) *TransferService {
	svc := NewTransferService(cats, conns, settings, bus, discardLogger)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return svc
}

// ---------------------------------------------------------------------------
// URL export
// ---------------------------------------------------------------------------

func TestTransferService_ExportSingleCategory(t *testing.T) {
	cats := newStubCategoryRepo(domain.Category{ID: "cat_dev", Name: "Developers"})
	conns := newStubConnectionRepo(
		domain.Connection{ID: "a", ProfileURL: "https://www.linkedin.com/in/a", Categories: []string{"cat_dev"}},
		domain.Connection{ID: "b", ProfileURL: "https://www.linkedin.com/in/b", Categories: []string{"cat_biz"}},
	)
	svc := newTransferService(cats, conns, &stubSettingsRepo{}, &stubBus{})

	result, err := svc.ExportURLs(context.Background(), "cat_dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Count != 1 {
		t.Errorf("expected count 1, got %d", result.Count)
	}
	if result.Category != "Developers" {
		t.Errorf("expected category name Developers, got %q", result.Category)
	}
	if result.Filename != "linkedin-developers-urls-2026-03-14.json" {
		t.Errorf("unexpected filename: %s", result.Filename)
	}

	var payload struct {
		Version  string   `json:"version"`
		Category string   `json:"category"`
		URLs     []string `json:"urls"`
	}
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		t.Fatalf("export not valid json: %v", err)
	}
	if payload.Version != "1.0" {
		t.Errorf("expected version 1.0, got %q", payload.Version)
	}
	if len(payload.URLs) != 1 || payload.URLs[0] != "https://www.linkedin.com/in/a" {
		t.Errorf("unexpected urls: %v", payload.URLs)
	}
}

func TestTransferService_ExportAll_BucketsPerCategory(t *testing.T) {
	cats := newStubCategoryRepo(
		domain.Category{ID: "cat_dev", Name: "Developers"},
		domain.Category{ID: "cat_biz", Name: "Business Contacts"},
	)
	// one connection in both categories: its url appears in both buckets
	conns := newStubConnectionRepo(
		domain.Connection{ID: "a", Name: "Alice", Notes: "secret", ProfileURL: "https://www.linkedin.com/in/a", Categories: []string{"cat_dev", "cat_biz"}},
		domain.Connection{ID: "b", ProfileURL: "https://www.linkedin.com/in/b", Categories: []string{"cat_dev"}},
	)
	svc := newTransferService(cats, conns, &stubSettingsRepo{}, &stubBus{})

	result, err := svc.ExportURLs(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Count != 2 {
		t.Errorf("expected count 2, got %d", result.Count)
	}
	if result.Category != "All Categories" {
		t.Errorf("expected All Categories, got %q", result.Category)
	}
	if result.Filename != "linkedin-all-categories-urls-2026-03-14.json" {
		t.Errorf("unexpected filename: %s", result.Filename)
	}

	var payload struct {
		Categories map[string][]string `json:"categories"`
	}
	if err := json.Unmarshal(result.Data, &payload); err != nil {
		t.Fatalf("export not valid json: %v", err)
	}
	if len(payload.Categories["Developers"]) != 2 {
		t.Errorf("expected 2 urls under Developers, got %v", payload.Categories["Developers"])
	}
	if len(payload.Categories["Business Contacts"]) != 1 {
		t.Errorf("expected 1 url under Business Contacts, got %v", payload.Categories["Business Contacts"])
	}
	if strings.Contains(string(result.Data), "secret") || strings.Contains(string(result.Data), "Alice") {
		t.Error("url export must never include notes or names")
	}
}

func TestTransferService_ExportSingle_EmptyCategorySignalsNothing(t *testing.T) {
	cats := newStubCategoryRepo(domain.Category{ID: "cat_ai", Name: "AI Specialists"})
	conns := newStubConnectionRepo(
		domain.Connection{ID: "a", ProfileURL: "https://www.linkedin.com/in/a", Categories: []string{"cat_dev"}},
	)
	svc := newTransferService(cats, conns, &stubSettingsRepo{}, &stubBus{})

	_, err := svc.ExportURLs(context.Background(), "cat_ai")
	if !errors.Is(err, domain.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

func TestTransferService_ExportSingle_UnknownCategory(t *testing.T) {
	svc := newTransferService(newStubCategoryRepo(), newStubConnectionRepo(), &stubSettingsRepo{}, &stubBus{})

	_, err := svc.ExportURLs(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestTransferService_ExportAll_NoConnections(t *testing.T) {
	svc := newTransferService(newStubCategoryRepo(domain.Category{ID: "cat_dev", Name: "Developers"}), newStubConnectionRepo(), &stubSettingsRepo{}, &stubBus{})

	_, err := svc.ExportURLs(context.Background(), "")
	if !errors.Is(err, domain.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Backup / Import round trip
// ---------------------------------------------------------------------------

func TestTransferService_BackupImportRoundTrip(t *testing.T) {
	cats := newStubCategoryRepo(
		domain.Category{ID: "cat_dev", Name: "Developers", Color: "#0077B5", Icon: domain.IconCode},
	)
	conns := newStubConnectionRepo(
		domain.Connection{ID: "a", Name: "Alice", ProfileURL: "https://www.linkedin.com/in/a", Categories: []string{"cat_dev"}, Notes: "n", AddedAt: 1, UpdatedAt: 2},
	)
	settings := &stubSettingsRepo{}
	svc := newTransferService(cats, conns, settings, &stubBus{})

	backup, err := svc.ExportBackup(context.Background())
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if backup.Filename != "linkedin-network-backup-2026-03-14.json" {
		t.Errorf("unexpected filename: %s", backup.Filename)
	}

	// import into a fresh store and compare
	cats2 := newStubCategoryRepo()
	conns2 := newStubConnectionRepo()
	settings2 := &stubSettingsRepo{}
	svc2 := newTransferService(cats2, conns2, settings2, &stubBus{})

	if err := svc2.Import(context.Background(), backup.Data); err != nil {
		t.Fatalf("import of own backup failed: %v", err)
	}

	if len(cats2.items) != 1 || cats2.items[0] != cats.items[0] {
		t.Errorf("categories did not round-trip: %+v", cats2.items)
	}
	if len(conns2.items) != 1 || conns2.items[0].ID != "a" || conns2.items[0].Notes != "n" {
		t.Errorf("connections did not round-trip: %+v", conns2.items)
	}
}

// ---------------------------------------------------------------------------
// Import validation
// ---------------------------------------------------------------------------

func TestTransferService_Import_RejectsNonArrays(t *testing.T) {
	cases := map[string]string{
		"not json":                 `{{{`,
		"null payload":             `null`,
		"missing keys":             `{"version":"1.0"}`,
		"null collections":         `{"categories":null,"connections":null}`,
		"null categories only":     `{"categories":null,"connections":[]}`,
		"categories not an array":  `{"categories":"nope","connections":[]}`,
		"connections not an array": `{"categories":[],"connections":42}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			cats := newStubCategoryRepo(domain.Category{ID: "keep", Name: "Keep"})
			conns := newStubConnectionRepo(domain.Connection{ID: "keep"})
			svc := newTransferService(cats, conns, &stubSettingsRepo{}, &stubBus{})

			err := svc.Import(context.Background(), []byte(payload))
			if !errors.Is(err, domain.ErrInvalidImport) {
				t.Fatalf("expected ErrInvalidImport, got %v", err)
			}
			// nothing written on failure
			if len(cats.items) != 1 || cats.items[0].ID != "keep" {
				t.Error("failed import must not touch categories")
			}
			if len(conns.items) != 1 || conns.items[0].ID != "keep" {
				t.Error("failed import must not touch connections")
			}
		})
	}
}

func TestTransferService_Import_RejectsDuplicateIDs(t *testing.T) {
	svc := newTransferService(newStubCategoryRepo(), newStubConnectionRepo(), &stubSettingsRepo{}, &stubBus{})

	payload := `{"categories":[{"id":"c1","name":"A"},{"id":"c1","name":"B"}],"connections":[]}`
	if err := svc.Import(context.Background(), []byte(payload)); !errors.Is(err, domain.ErrInvalidImport) {
		t.Fatalf("expected ErrInvalidImport, got %v", err)
	}
}

func TestTransferService_Import_OverwritesAndBroadcasts(t *testing.T) {
	cats := newStubCategoryRepo(domain.Category{ID: "old", Name: "Old"})
	conns := newStubConnectionRepo(domain.Connection{ID: "old"})
	bus := &stubBus{}
	svc := newTransferService(cats, conns, &stubSettingsRepo{}, bus)

	payload := `{"categories":[{"id":"new","name":"New"}],"connections":[{"id":"p1","profileUrl":"https://www.linkedin.com/in/p1","categories":["new"]}]}`
	if err := svc.Import(context.Background(), []byte(payload)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cats.items) != 1 || cats.items[0].ID != "new" {
		t.Errorf("categories not overwritten: %+v", cats.items)
	}
	if len(conns.items) != 1 || conns.items[0].ID != "p1" {
		t.Errorf("connections not overwritten: %+v", conns.items)
	}
	actions := bus.actions()
	if len(actions) != 1 || actions[0] != domain.BroadcastDataImported {
		t.Errorf("expected dataImported broadcast, got %v", actions)
	}
}

func TestTransferService_Import_InvalidThemeFallsBackToLight(t *testing.T) {
	settings := &stubSettingsRepo{}
	svc := newTransferService(newStubCategoryRepo(), newStubConnectionRepo(), settings, &stubBus{})

	payload := `{"categories":[],"connections":[],"settings":{"theme":"neon"}}`
	if err := svc.Import(context.Background(), []byte(payload)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.stored == nil || settings.stored.Theme != domain.ThemeLight {
		t.Errorf("expected theme light, got %+v", settings.stored)
	}
}

// ---------------------------------------------------------------------------
// ClearAll
// ---------------------------------------------------------------------------

func TestTransferService_ClearAll(t *testing.T) {
	cats := newStubCategoryRepo(domain.Category{ID: "c", Name: "C"})
	conns := newStubConnectionRepo(domain.Connection{ID: "p"})
	settings := &stubSettingsRepo{stored: &domain.Settings{Theme: domain.ThemeDark}}
	bus := &stubBus{}
	svc := newTransferService(cats, conns, settings, bus)

	if err := svc.ClearAll(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cats.items) != 0 || len(conns.items) != 0 {
		t.Error("collections not wiped")
	}
	if settings.stored.Theme != domain.ThemeDark {
		t.Error("settings must survive a clear")
	}
	if len(bus.published) != 2 {
		t.Errorf("expected 2 broadcasts, got %v", bus.actions())
	}
}
