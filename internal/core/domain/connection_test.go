package domain

import "testing"

func sampleConnections() []Connection {
	return []Connection{
		{ID: "p1", Name: "Alice Ray", Title: "Engineer", ProfileURL: "https://x/in/p1", Categories: []string{"cat_dev"}, AddedAt: 500},
		{ID: "p2", Name: "Bob Lee", Title: "PM", ProfileURL: "https://x/in/p2", Categories: []string{"cat_biz", "cat_dev"}, AddedAt: 2000},
		{ID: "p3", ProfileURL: "https://x/in/p3", Categories: []string{}},
	}
}

func TestFilterConnections_AllAndEmptySearchIsIdentity(t *testing.T) {
	conns := sampleConnections()
	got := FilterConnections(conns, CategoryFilterAll, "")
	if len(got) != len(conns) {
		t.Fatalf("expected %d connections, got %d", len(conns), len(got))
	}
}

func TestFilterConnections_ByCategory(t *testing.T) {
	got := FilterConnections(sampleConnections(), "cat_biz", "")
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("expected [p2], got %v", got)
	}
}

func TestFilterConnections_SearchIsCaseInsensitive(t *testing.T) {
	got := FilterConnections(sampleConnections(), CategoryFilterAll, "ALICE")
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("expected [p1], got %v", got)
	}
}

func TestFilterConnections_CategoryAndSearchCombine(t *testing.T) {
	// p1 and p2 are both cat_dev; only p2 matches the search.
	got := FilterConnections(sampleConnections(), "cat_dev", "bob")
	if len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("expected [p2], got %v", got)
	}
}

func TestSortConnections_Recent(t *testing.T) {
	conns := sampleConnections() // addedAt 500, 2000, missing
	SortConnections(conns, SortByRecent)
	want := []string{"p2", "p1", "p3"}
	for i, id := range want {
		if conns[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, conns[i].ID)
		}
	}
}

func TestSortConnections_CategoryCountDescending(t *testing.T) {
	conns := sampleConnections()
	SortConnections(conns, SortByCategory)
	if conns[0].ID != "p2" {
		t.Fatalf("expected p2 (two categories) first, got %s", conns[0].ID)
	}
	if conns[2].ID != "p3" {
		t.Fatalf("expected p3 (no categories) last, got %s", conns[2].ID)
	}
}

func TestSortConnections_NameFallsBackToProfileURL(t *testing.T) {
	conns := []Connection{
		{ID: "b", ProfileURL: "https://x/in/zzz"},
		{ID: "a", Name: "Aaron"},
	}
	SortConnections(conns, SortByName)
	if conns[0].ID != "a" {
		t.Fatalf("expected named connection first, got %s", conns[0].ID)
	}
}

func TestNormalizeIcon_FallsBackToDefault(t *testing.T) {
	if got := NormalizeIcon("sparkles"); got != IconUsers {
		t.Fatalf("expected %q, got %q", IconUsers, got)
	}
	if got := NormalizeIcon(IconBrain); got != IconBrain {
		t.Fatalf("expected %q preserved, got %q", IconBrain, got)
	}
}
