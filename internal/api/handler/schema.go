package handler

import (
	"encoding/json"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Category requests ---

type categoryRequest struct {
	Name  string `json:"name"  validate:"required"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon"`
}

type listCategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// --- Connection requests ---

// saveConnectionRequest is the full record as assembled by the tagging panel.
// The path id wins over any id in the body.
type saveConnectionRequest struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Avatar     string   `json:"avatar"`
	ProfileURL string   `json:"profileUrl" validate:"omitempty,url"`
	Categories []string `json:"categories"`
	Notes      string   `json:"notes"`
}

type listConnectionsResponse struct {
	Connections []domain.Connection `json:"connections"`
	Total       int                 `json:"total"`
}

// --- Settings requests ---

type settingsRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// --- Message protocol ---

// messageRequest is the cross-context message envelope: a discriminating
// action plus action-specific fields. Unknown fields for a given action are
// ignored, matching a loosely-typed message bus.
type messageRequest struct {
	Action string `json:"action" validate:"required"`

	// exportData
	CategoryID string `json:"categoryId,omitempty"`

	// importData: raw payload, revalidated by the transfer service.
	Data json.RawMessage `json:"data,omitempty"`

	// openCategoryModal
	FromProfileID string              `json:"fromProfileId,omitempty"`
	ProfileData   *domain.ProfileData `json:"profileData,omitempty"`
	Source        string              `json:"source,omitempty"`
}

// messageResponse is the loosely-typed reply envelope. Only the fields
// relevant to the action are populated; Success is always present.
type messageResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	// login
	Token string `json:"token,omitempty"`

	// syncConnections
	Connections []domain.Connection `json:"connections,omitempty"`

	// exportData
	Data     json.RawMessage `json:"data,omitempty"`
	Filename string          `json:"filename,omitempty"`
	Count    int             `json:"count,omitempty"`
	Category string          `json:"category,omitempty"`

	// consumeCategoryModalRequest
	Request *domain.HandoffRequest `json:"request,omitempty"`
}

// --- Session ---

type sessionResponse struct {
	LoggedIn bool  `json:"isLoggedIn"`
	LastSync int64 `json:"lastSync,omitempty"`
}

// --- Extraction ---

type extractRequest struct {
	URL  string `json:"url"  validate:"required"`
	HTML string `json:"html" validate:"required"`
}

type extractResponse struct {
	ProfileID string             `json:"profileId"`
	Profile   domain.ProfileData `json:"profile"`
}
