package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
	"github.com/talha-mahmood/Linkedin-list/internal/core/ports"
)

func fullInput(id string) ports.UpsertConnectionInput {
	return ports.UpsertConnectionInput{
		ID:         id,
		Name:       "Jane Doe",
		Title:      "Staff Engineer",
		ProfileURL: "https://www.linkedin.com/in/" + id,
		Categories: []string{"cat_dev"},
		Notes:      "met at conf",
	}
}

// ---------------------------------------------------------------------------
// Upsert
// ---------------------------------------------------------------------------

func TestConnectionService_Upsert_CreatesNew(t *testing.T) {
	repo := newStubConnectionRepo()
	bus := &stubBus{}
	svc := NewConnectionService(repo, bus, discardLogger)

	conn, err := svc.Upsert(context.Background(), fullInput("jane-doe"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conn.AddedAt == 0 || conn.UpdatedAt == 0 {
		t.Error("timestamps must be set")
	}
	if conn.AddedAt != conn.UpdatedAt {
		t.Error("first save must set addedAt == updatedAt")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored connection, got %d", len(repo.items))
	}
	if len(bus.published) != 1 || bus.published[0].Action != domain.BroadcastConnectionsUpdated {
		t.Errorf("expected one connectionsUpdated broadcast, got %v", bus.actions())
	}
}

func TestConnectionService_Upsert_PreservesAddedAt(t *testing.T) {
	repo := newStubConnectionRepo()
	svc := NewConnectionService(repo, &stubBus{}, discardLogger)

	first := time.UnixMilli(1700000000000)
	svc.now = func() time.Time { return first }
	created, err := svc.Upsert(context.Background(), fullInput("jane-doe"))
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	later := first.Add(time.Hour)
	svc.now = func() time.Time { return later }
	in := fullInput("jane-doe")
	in.Notes = "updated notes"
	updated, err := svc.Upsert(context.Background(), in)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if updated.AddedAt != created.AddedAt {
		t.Errorf("addedAt changed across update: %d -> %d", created.AddedAt, updated.AddedAt)
	}
	if updated.UpdatedAt != later.UnixMilli() {
		t.Errorf("updatedAt not refreshed: %d", updated.UpdatedAt)
	}
	if updated.Notes != "updated notes" {
		t.Errorf("record not replaced: %q", updated.Notes)
	}
	if len(repo.items) != 1 {
		t.Errorf("upsert must keep one record per id, got %d", len(repo.items))
	}
}

func TestConnectionService_Upsert_EmptyIDRejected(t *testing.T) {
	svc := NewConnectionService(newStubConnectionRepo(), &stubBus{}, discardLogger)

	_, err := svc.Upsert(context.Background(), ports.UpsertConnectionInput{})
	if !errors.Is(err, domain.ErrConnectionIDRequired) {
		t.Fatalf("expected ErrConnectionIDRequired, got %v", err)
	}
}

func TestConnectionService_Upsert_NilCategoriesBecomesEmpty(t *testing.T) {
	svc := NewConnectionService(newStubConnectionRepo(), &stubBus{}, discardLogger)

	in := fullInput("jane-doe")
	in.Categories = nil
	conn, err := svc.Upsert(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.Categories == nil {
		t.Error("categories must serialize as [], not null")
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestConnectionService_List_AppliesFilterAndSort(t *testing.T) {
	repo := newStubConnectionRepo(
		domain.Connection{ID: "b", Name: "Bob", Categories: []string{"cat_dev"}, AddedAt: 100},
		domain.Connection{ID: "a", Name: "Alice", Categories: []string{"cat_dev"}, AddedAt: 200},
		domain.Connection{ID: "c", Name: "Carol", Categories: []string{"cat_biz"}, AddedAt: 300},
	)
	svc := NewConnectionService(repo, &stubBus{}, discardLogger)

	got, err := svc.List(context.Background(), ports.ListConnectionsInput{
		Category: "cat_dev",
		Sort:     domain.SortByName,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(got))
	}
	if got[0].Name != "Alice" || got[1].Name != "Bob" {
		t.Errorf("wrong order: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestConnectionService_List_NeutralFilterIsIdentity(t *testing.T) {
	repo := newStubConnectionRepo(
		domain.Connection{ID: "a", Name: "Alice"},
		domain.Connection{ID: "b", Name: "Bob"},
	)
	svc := NewConnectionService(repo, &stubBus{}, discardLogger)

	got, err := svc.List(context.Background(), ports.ListConnectionsInput{Category: domain.CategoryFilterAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("neutral filter must keep every record, got %d", len(got))
	}
}
