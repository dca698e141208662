package domain

import (
	"fmt"
	"slices"
)

// reversalOdds is the one-in-N chance that a drawn card lands reversed (20%).
const reversalOdds = 5

// Session is one reading: the active spread, the remaining shuffled deck and
// the cards drawn so far. A Session is owned by a single controller and is
// not safe for concurrent use.
type Session struct {
	catalog *Catalog
	rng     RNG

	spread SpreadDefinition
	deck   []*Card
	drawn  []DrawnCard
	phase  Phase
}

// NewSession starts a reading for spread type t with a freshly shuffled deck.
func NewSession(catalog *Catalog, t SpreadType, rng RNG) (*Session, error) {
	s := &Session{catalog: catalog, rng: rng}
	if err := s.SelectSpread(t); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectSpread switches to spread type t, reshuffles and clears the draws.
// It is legal in any phase and always returns the session to PhaseSelecting.
func (s *Session) SelectSpread(t SpreadType) error {
	if !t.Valid() {
		return ErrInvalidSpreadType
	}
	spread, err := s.catalog.Spread(t)
	if err != nil {
		return err
	}

	s.spread = spread
	s.deck = Shuffle(s.catalog.refs(), s.rng)
	s.drawn = nil
	s.phase = PhaseSelecting
	return nil
}

// Reset starts a new reading with the active spread.
func (s *Session) Reset() {
	s.deck = Shuffle(s.catalog.refs(), s.rng)
	s.drawn = nil
	s.phase = PhaseSelecting
}

// Draw takes the card with the given id out of the remaining deck and places
// it in the next spread position. On error the session is unchanged.
func (s *Session) Draw(cardID int) (DrawnCard, error) {
	if s.full() {
		return DrawnCard{}, ErrSpreadAlreadyFull
	}
	idx := slices.IndexFunc(s.deck, func(c *Card) bool { return c.ID == cardID })
	if idx < 0 {
		return DrawnCard{}, fmt.Errorf("%w: id %d", ErrCardNotInDeck, cardID)
	}
	return s.take(idx), nil
}

// DrawAt draws the card at position idx of the remaining deck.
func (s *Session) DrawAt(idx int) (DrawnCard, error) {
	if s.full() {
		return DrawnCard{}, ErrSpreadAlreadyFull
	}
	if idx < 0 || idx >= len(s.deck) {
		return DrawnCard{}, fmt.Errorf("%w: index %d of %d", ErrCardNotInDeck, idx, len(s.deck))
	}
	return s.take(idx), nil
}

func (s *Session) full() bool {
	return s.phase == PhaseRevealed || len(s.drawn) >= len(s.spread.Positions)
}

func (s *Session) take(idx int) DrawnCard {
	dc := DrawnCard{
		Card:     s.deck[idx],
		Reversed: s.rng.Intn(reversalOdds) == 0,
		Position: s.spread.Positions[len(s.drawn)],
	}

	s.drawn = append(s.drawn, dc)
	s.deck = slices.Delete(s.deck, idx, idx+1)
	if len(s.drawn) == len(s.spread.Positions) {
		s.phase = PhaseRevealed
	}
	return dc
}

// RemainingToDraw is the number of positions still empty; 0 once revealed.
func (s *Session) RemainingToDraw() int {
	return len(s.spread.Positions) - len(s.drawn)
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Spread() SpreadDefinition { return s.spread }

// Drawn returns the drawn cards in draw order.
func (s *Session) Drawn() []DrawnCard { return slices.Clone(s.drawn) }

// Deck returns the remaining deck in its shuffled order.
func (s *Session) Deck() []*Card { return slices.Clone(s.deck) }

// Reading is a snapshot of a revealed session, safe to hand to another goroutine.
type Reading struct {
	Spread SpreadDefinition
	Cards  []DrawnCard
}

// Reading snapshots the session once every position is filled.
func (s *Session) Reading() (Reading, error) {
	if s.phase != PhaseRevealed {
		return Reading{}, ErrReadingIncomplete
	}
	return Reading{Spread: s.spread, Cards: slices.Clone(s.drawn)}, nil
}
