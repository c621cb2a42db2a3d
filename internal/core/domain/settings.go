package domain

import "time"

// Theme selects the popup color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme reports whether t is one of the allowed themes.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}

// Settings holds user preferences.
type Settings struct {
	Theme Theme `json:"theme" bson:"theme"`
}

// DefaultSettings returns the settings written at install time.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight}
}

// ProfileData carries the attributes scraped from a profile page.
type ProfileData struct {
	Name   string `json:"name,omitempty"`
	Title  string `json:"title,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// HandoffTTL bounds how long a category modal request stays actionable.
const HandoffTTL = 30 * time.Second

// HandoffRequest is the short-lived record the page adapter writes when it
// wants the popup to open the category modal. It is consumed at most once
// and cleared regardless of whether it was acted upon.
type HandoffRequest struct {
	Timestamp     int64        `json:"timestamp"`
	FromProfileID string       `json:"fromProfileId,omitempty"`
	ProfileData   *ProfileData `json:"profileData,omitempty"`
	Source        string       `json:"source,omitempty"`
}

// Expired reports whether the request fell outside its validity window.
func (h HandoffRequest) Expired(now time.Time) bool {
	return now.UnixMilli()-h.Timestamp > HandoffTTL.Milliseconds()
}
