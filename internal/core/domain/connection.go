package domain

import (
	"sort"
	"strings"
)

// Connection is a tagged profile record keyed by the host site's profile
// identifier (the /in/<segment> part of the profile URL).
type Connection struct {
	ID         string   `json:"id" bson:"_id"`
	Name       string   `json:"name,omitempty" bson:"name,omitempty"`
	Title      string   `json:"title,omitempty" bson:"title,omitempty"`
	Avatar     string   `json:"avatar,omitempty" bson:"avatar,omitempty"`
	ProfileURL string   `json:"profileUrl" bson:"profile_url"`
	Categories []string `json:"categories" bson:"categories"`
	Notes      string   `json:"notes,omitempty" bson:"notes,omitempty"`
	// AddedAt is fixed at first creation and preserved across updates.
	// UpdatedAt is refreshed on every save. Both are epoch milliseconds.
	AddedAt   int64 `json:"addedAt" bson:"added_at"`
	UpdatedAt int64 `json:"updatedAt" bson:"updated_at"`
}

// HasCategory reports whether the connection is tagged with the category id.
func (c Connection) HasCategory(id string) bool {
	for _, cid := range c.Categories {
		if cid == id {
			return true
		}
	}
	return false
}

// DisplayName returns the scraped name, falling back to the profile URL for
// records saved before name extraction existed.
func (c Connection) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ProfileURL
}

// CategoryFilterAll is the sentinel meaning "no category filter".
const CategoryFilterAll = "all"

// SortKey selects the ordering applied to connection lists.
type SortKey string

const (
	SortByName   SortKey = "name"   // display name ascending
	SortByRecent SortKey = "recent" // addedAt descending, missing last
	// SortByCategory orders by the count of assigned categories, descending.
	// Coarse grouping, not alphabetic by category name.
	SortByCategory SortKey = "category"
)

// FilterConnections keeps connections matching the category filter and the
// case-insensitive search term. The category check runs first; both are
// AND-combined. An empty search and the "all" sentinel are identity filters.
func FilterConnections(conns []Connection, category, search string) []Connection {
	out := make([]Connection, 0, len(conns))
	term := strings.ToLower(search)
	for _, c := range conns {
		if category != "" && category != CategoryFilterAll && !c.HasCategory(category) {
			continue
		}
		if term != "" {
			if !strings.Contains(strings.ToLower(c.ProfileURL), term) &&
				!strings.Contains(strings.ToLower(c.Name), term) &&
				!strings.Contains(strings.ToLower(c.Title), term) {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// SortConnections orders the slice in place according to key. Unknown keys
// fall back to name ordering.
func SortConnections(conns []Connection, key SortKey) {
	switch key {
	case SortByRecent:
		sort.SliceStable(conns, func(i, j int) bool {
			return conns[i].AddedAt > conns[j].AddedAt
		})
	case SortByCategory:
		sort.SliceStable(conns, func(i, j int) bool {
			return len(conns[i].Categories) > len(conns[j].Categories)
		})
	default:
		sort.SliceStable(conns, func(i, j int) bool {
			return strings.ToLower(conns[i].DisplayName()) < strings.ToLower(conns[j].DisplayName())
		})
	}
}
