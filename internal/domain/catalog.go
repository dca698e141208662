package domain

import (
	"fmt"
	"slices"
)

const (
	majorCount   = 22
	ranksPerSuit = 14
	catalogSize  = majorCount + ranksPerSuit*4
)

// Catalog is the immutable set of cards and spread definitions for the process lifetime.
type Catalog struct {
	cards   []Card
	byID    map[int]*Card
	spreads map[SpreadType]SpreadDefinition
}

// NewCatalog validates cards and spreads and takes ownership of both.
// Callers must not modify the slices afterwards.
func NewCatalog(cards []Card, spreads []SpreadDefinition) (*Catalog, error) {
	if err := validateCards(cards); err != nil {
		return nil, err
	}

	c := &Catalog{
		cards:   cards,
		byID:    make(map[int]*Card, len(cards)),
		spreads: make(map[SpreadType]SpreadDefinition, len(spreads)),
	}
	for i := range c.cards {
		c.byID[c.cards[i].ID] = &c.cards[i]
	}

	for _, s := range spreads {
		if !s.Type.Valid() {
			return nil, fmt.Errorf("%w: spread %q: %w", ErrInvalidCatalog, s.Name, ErrInvalidSpreadType)
		}
		if len(s.Positions) != int(s.Type) {
			return nil, fmt.Errorf("%w: spread %q has %d positions, want %d", ErrInvalidCatalog, s.Name, len(s.Positions), s.Type)
		}
		if _, dup := c.spreads[s.Type]; dup {
			return nil, fmt.Errorf("%w: duplicate spread type %d", ErrInvalidCatalog, s.Type)
		}
		c.spreads[s.Type] = s
	}
	for _, t := range SpreadTypes {
		if _, ok := c.spreads[t]; !ok {
			return nil, fmt.Errorf("%w: missing spread type %d", ErrInvalidCatalog, t)
		}
	}

	return c, nil
}

func validateCards(cards []Card) error {
	if len(cards) != catalogSize {
		return fmt.Errorf("%w: %d cards, want %d", ErrInvalidCatalog, len(cards), catalogSize)
	}

	seen := make(map[int]bool, len(cards))
	majors := 0
	perSuit := make(map[Suit]int, len(Suits))
	for _, c := range cards {
		if seen[c.ID] {
			return fmt.Errorf("%w: duplicate card id %d", ErrInvalidCatalog, c.ID)
		}
		seen[c.ID] = true

		if len(c.Keywords) == 0 {
			return fmt.Errorf("%w: card %q has no keywords", ErrInvalidCatalog, c.Name)
		}

		switch c.Arcana {
		case Major:
			if c.Suit != SuitNone {
				return fmt.Errorf("%w: major card %q has suit %s", ErrInvalidCatalog, c.Name, c.Suit)
			}
			majors++
		case Minor:
			if !slices.Contains(Suits, c.Suit) {
				return fmt.Errorf("%w: minor card %q has suit %q", ErrInvalidCatalog, c.Name, c.Suit)
			}
			perSuit[c.Suit]++
		default:
			return fmt.Errorf("%w: card %q has arcana %q", ErrInvalidCatalog, c.Name, c.Arcana)
		}
	}

	if majors != majorCount {
		return fmt.Errorf("%w: %d major cards, want %d", ErrInvalidCatalog, majors, majorCount)
	}
	for _, s := range Suits {
		if perSuit[s] != ranksPerSuit {
			return fmt.Errorf("%w: %d %s cards, want %d", ErrInvalidCatalog, perSuit[s], s, ranksPerSuit)
		}
	}
	return nil
}

// Cards returns the catalog cards in catalog order.
func (c *Catalog) Cards() []Card {
	return slices.Clone(c.cards)
}

// Len returns the number of cards in the catalog.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Card returns the catalog card with the given id.
func (c *Catalog) Card(id int) (*Card, error) {
	card, ok := c.byID[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// Spread returns the definition for t.
func (c *Catalog) Spread(t SpreadType) (SpreadDefinition, error) {
	s, ok := c.spreads[t]
	if !ok {
		return SpreadDefinition{}, ErrInvalidSpreadType
	}
	return s, nil
}

// Spreads returns all spread definitions ordered by type.
func (c *Catalog) Spreads() []SpreadDefinition {
	out := make([]SpreadDefinition, 0, len(SpreadTypes))
	for _, t := range SpreadTypes {
		out = append(out, c.spreads[t])
	}
	return out
}

// Filter returns the cards matching f, in catalog order.
func (c *Catalog) Filter(f GalleryFilter) []Card {
	var out []Card
	for _, card := range c.cards {
		if f.Matches(card) {
			out = append(out, card)
		}
	}
	return out
}

// refs returns a pointer to every catalog card, in catalog order.
func (c *Catalog) refs() []*Card {
	out := make([]*Card, len(c.cards))
	for i := range c.cards {
		out[i] = &c.cards[i]
	}
	return out
}
