package domain

import "strings"

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Arcana classifies a card as one of the 22 named cards or a suited card.
type Arcana string

const (
	Major Arcana = "Major"
	Minor Arcana = "Minor"
)

// Suit is the Minor Arcana category of a card. Major cards carry SuitNone.
type Suit string

const (
	Wands     Suit = "Wands"
	Cups      Suit = "Cups"
	Swords    Suit = "Swords"
	Pentacles Suit = "Pentacles"
	SuitNone  Suit = "None"
)

// Suits lists the four Minor Arcana suits in catalog order.
var Suits = []Suit{Wands, Cups, Swords, Pentacles}

// Card represents a single tarot card in the catalog.
type Card struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Number      string   `json:"number"`
	Arcana      Arcana   `json:"arcana"`
	Suit        Suit     `json:"suit"`
	Upright     string   `json:"upright"`
	Reversed    string   `json:"reversed"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Image       string   `json:"image"`
}

// DrawnCard is a catalog card placed in a spread position during a session.
// Card points into the catalog, which stays the sole owner of card content.
type DrawnCard struct {
	Card     *Card  `json:"card"`
	Reversed bool   `json:"reversed"`
	Position string `json:"position"`
}

// Meaning returns the meaning text that applies to the card's orientation.
func (d DrawnCard) Meaning() string {
	if d.Reversed {
		return d.Card.Reversed
	}
	return d.Card.Upright
}

// SpreadType identifies a spread by the number of cards it needs.
type SpreadType int

const (
	SpreadOneCard   SpreadType = 1
	SpreadThreeCard SpreadType = 3
	SpreadFiveCard  SpreadType = 5
)

// SpreadTypes lists the supported spread types in ascending order.
var SpreadTypes = []SpreadType{SpreadOneCard, SpreadThreeCard, SpreadFiveCard}

// Valid reports whether t is one of the supported cardinalities.
func (t SpreadType) Valid() bool {
	switch t {
	case SpreadOneCard, SpreadThreeCard, SpreadFiveCard:
		return true
	}
	return false
}

// SpreadDefinition describes a layout: how many cards and what each position means.
type SpreadDefinition struct {
	Type        SpreadType `json:"type" yaml:"type"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Positions   []string   `json:"positions" yaml:"positions"`
}

// Phase is the state of a reading session.
type Phase string

const (
	PhaseSelecting Phase = "selecting"
	PhaseRevealed  Phase = "revealed"
)

// GalleryFilter narrows the catalog for browsing.
type GalleryFilter string

const (
	FilterAll       GalleryFilter = "all"
	FilterMajor     GalleryFilter = "major"
	FilterWands     GalleryFilter = "wands"
	FilterCups      GalleryFilter = "cups"
	FilterSwords    GalleryFilter = "swords"
	FilterPentacles GalleryFilter = "pentacles"
)

// GalleryFilters lists the filters in the order a browser cycles through them.
var GalleryFilters = []GalleryFilter{FilterAll, FilterMajor, FilterWands, FilterCups, FilterSwords, FilterPentacles}

// ParseGalleryFilter parses a filter name case-insensitively. An empty string means FilterAll.
func ParseGalleryFilter(s string) (GalleryFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := GalleryFilter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range GalleryFilters {
		if f == known {
			return f, nil
		}
	}
	return "", ErrInvalidFilter
}

// Matches reports whether c passes the filter.
func (f GalleryFilter) Matches(c Card) bool {
	switch f {
	case FilterAll:
		return true
	case FilterMajor:
		return c.Arcana == Major
	default:
		return strings.EqualFold(string(c.Suit), string(f))
	}
}
