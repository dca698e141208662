package domain_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lighty7/taro/internal/domain"
)

// rngFunc adapts a function to domain.RNG.
type rngFunc func(n int) int

func (f rngFunc) Intn(n int) int { return f(n) }

// identityRNG leaves Fisher-Yates a no-op and never reverses a card.
var identityRNG = rngFunc(func(n int) int { return n - 1 })

// flipRNG behaves like identityRNG until reversed is set, after which every
// orientation coin flip comes up reversed.
type flipRNG struct{ reversed bool }

func (r *flipRNG) Intn(n int) int {
	if r.reversed && n == 5 {
		return 0
	}
	return n - 1
}

// seededRNG is a reproducible uniform source.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) seededRNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

var testSpreads = []domain.SpreadDefinition{
	{Type: domain.SpreadOneCard, Name: "Single Card Draw", Positions: []string{"The Answer"}},
	{Type: domain.SpreadThreeCard, Name: "Past, Present, Future", Positions: []string{"The Past", "The Present", "The Future"}},
	{Type: domain.SpreadFiveCard, Name: "The Horseshoe", Positions: []string{"The Past", "The Present", "Hidden Influences", "Obstacles", "The Future"}},
}

var testRanks = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Page", "Knight", "Queen", "King"}

func testCards() []domain.Card {
	cards := make([]domain.Card, 0, 78)
	for i := range 22 {
		cards = append(cards, domain.Card{
			ID:       i,
			Name:     fmt.Sprintf("Major %d", i),
			Number:   fmt.Sprint(i),
			Arcana:   domain.Major,
			Suit:     domain.SuitNone,
			Upright:  "up",
			Reversed: "down",
			Keywords: []string{"Alpha", "Omega"},
		})
	}
	id := 22
	for _, suit := range domain.Suits {
		for _, rank := range testRanks {
			cards = append(cards, domain.Card{
				ID:       id,
				Name:     rank + " of " + string(suit),
				Number:   rank,
				Arcana:   domain.Minor,
				Suit:     suit,
				Upright:  "up",
				Reversed: "down",
				Keywords: []string{string(suit), rank},
			})
			id++
		}
	}
	return cards
}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	c, err := domain.NewCatalog(testCards(), testSpreads)
	require.NoError(t, err)
	return c
}
