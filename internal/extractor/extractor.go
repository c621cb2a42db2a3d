// Package extractor pulls profile identity out of host-page HTML.
//
// The host site's markup changes without notice, so extraction runs an
// ordered list of selector strategies and returns the first hit. The list is
// data, not code: callers can supply their own strategies when the defaults
// go stale, without touching the core.
package extractor

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

var ErrNoProfileID = errors.New("url does not contain a profile id")
var ErrNoProfileData = errors.New("no strategy matched the document")

var profileIDPattern = regexp.MustCompile(`linkedin\.com/in/([^/?#]+)`)

// ProfileID extracts the profile identifier from the host page URL
// (the /in/<segment> path segment).
func ProfileID(rawURL string) (string, error) {
	m := profileIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrNoProfileID
	}
	return m[1], nil
}

// Strategy is one named set of CSS selectors. Selectors within a field are
// themselves ordered fallbacks; the first element that yields text wins.
type Strategy struct {
	Name            string
	NameSelectors   []string
	TitleSelectors  []string
	AvatarSelectors []string
}

// DefaultStrategies returns the built-in selector sets, newest markup first.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:            "top-card-modern",
			NameSelectors:   []string{"h1.text-heading-xlarge"},
			TitleSelectors:  []string{"div.text-body-medium.break-words"},
			AvatarSelectors: []string{".pv-top-card-profile-picture__image", ".profile-photo-edit__preview"},
		},
		{
			Name:            "top-card-legacy",
			NameSelectors:   []string{".pv-top-card--list li:first-child", ".pv-text-details__left-panel h1"},
			TitleSelectors:  []string{".pv-top-card--list-bullet + .pv-top-card--list", "h2.mt1"},
			AvatarSelectors: []string{".pv-top-card__photo img", ".presence-entity__image"},
		},
		{
			Name:            "generic-heading",
			NameSelectors:   []string{"main h1", "h1"},
			TitleSelectors:  []string{"main h2"},
			AvatarSelectors: []string{"main img[alt]"},
		},
	}
}

// Extractor tries strategies in sequence against a parsed document.
type Extractor struct {
	strategies []Strategy
}

// New builds an Extractor. With no arguments the default strategies apply.
func New(strategies ...Strategy) *Extractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &Extractor{strategies: strategies}
}

// Extract parses the HTML once and returns the data of the first strategy
// that yields a name. Title and avatar are best-effort within that strategy.
func (e *Extractor) Extract(r io.Reader) (domain.ProfileData, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.ProfileData{}, err
	}

	for _, strat := range e.strategies {
		name := firstText(doc, strat.NameSelectors)
		if name == "" {
			continue
		}
		return domain.ProfileData{
			Name:   name,
			Title:  firstText(doc, strat.TitleSelectors),
			Avatar: firstAttr(doc, strat.AvatarSelectors, "src"),
		}, nil
	}
	return domain.ProfileData{}, ErrNoProfileData
}

// firstText returns the trimmed text of the first selector that matches a
// non-empty node.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func firstAttr(doc *goquery.Document, selectors []string, attr string) string {
	for _, sel := range selectors {
		if val, ok := doc.Find(sel).First().Attr(attr); ok && val != "" {
			return val
		}
	}
	return ""
}
