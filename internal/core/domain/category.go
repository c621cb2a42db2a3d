package domain

import (
	"errors"
	"strconv"
	"time"
)

// Icon names the glyph rendered next to a category.
type Icon string

const (
	IconCode      Icon = "code"
	IconBriefcase Icon = "briefcase"
	IconUsers     Icon = "users"
	IconBrain     Icon = "brain"
	IconChart     Icon = "chart"
	IconDatabase  Icon = "database"
	IconGlobe     Icon = "globe"
	IconMessage   Icon = "message"
	IconPhone     Icon = "phone"
	IconStar      Icon = "star"
	IconHeart     Icon = "heart"
	IconFlag      Icon = "flag"
)

// validIcons is the closed set of selectable glyphs.
var validIcons = map[Icon]bool{
	IconCode: true, IconBriefcase: true, IconUsers: true, IconBrain: true,
	IconChart: true, IconDatabase: true, IconGlobe: true, IconMessage: true,
	IconPhone: true, IconStar: true, IconHeart: true, IconFlag: true,
}

var ErrCategoryNameRequired = errors.New("category name is required")
var ErrCategoryNotFound = errors.New("category not found")
var ErrConnectionIDRequired = errors.New("connection id is required")
var ErrConnectionNotFound = errors.New("connection not found")
var ErrNothingToExport = errors.New("nothing to export")
var ErrInvalidImport = errors.New("invalid data format")
var ErrInvalidTheme = errors.New("unknown theme")
var ErrNoHandoffRequest = errors.New("no pending category modal request")

// NormalizeIcon maps any unrecognized icon name to the default glyph.
func NormalizeIcon(icon Icon) Icon {
	if validIcons[icon] {
		return icon
	}
	return IconUsers
}

// Category is a user-defined tag applied to connections.
type Category struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
	Icon  Icon   `json:"icon" bson:"icon"`
}

// NewCategoryID derives a fresh category id from the given instant. Seeded
// categories use fixed slugs; everything user-created gets one of these.
func NewCategoryID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// DefaultCategories returns the seed set installed on first run.
func DefaultCategories() []Category {
	return []Category{
		{ID: "cat_dev", Name: "Developers", Color: "#0077B5", Icon: IconCode},
		{ID: "cat_biz", Name: "Business Contacts", Color: "#2ECC71", Icon: IconBriefcase},
		{ID: "cat_ai", Name: "AI Specialists", Color: "#9B59B6", Icon: IconBrain},
	}
}
