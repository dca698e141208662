package catalog

import (
	"fmt"
	"strconv"

	"github.com/lighty7/taro/internal/domain"
)

const imageBaseURL = "https://www.sacred-texts.com/tarot/pkt/img"

var ranks = []string{"Ace", "2", "3", "4", "5", "6", "7", "8", "9", "10", "Page", "Knight", "Queen", "King"}

// suitTraits carries what every card of a suit shares.
type suitTraits struct {
	element string
	themes  [2]string
	meaning string
	prefix  string
}

var traits = map[domain.Suit]suitTraits{
	domain.Wands: {
		element: "Fire",
		themes:  [2]string{"Action", "Creativity"},
		meaning: "Energy, passion, and the drive to make things happen.",
		prefix:  "wa",
	},
	domain.Cups: {
		element: "Water",
		themes:  [2]string{"Emotion", "Relationships"},
		meaning: "Emotional connection, intuition, and feelings.",
		prefix:  "cu",
	},
	domain.Swords: {
		element: "Air",
		themes:  [2]string{"Intellect", "Conflict"},
		meaning: "Logic, ideas, and the double-edged nature of power.",
		prefix:  "sw",
	},
	domain.Pentacles: {
		element: "Earth",
		themes:  [2]string{"Material", "Career"},
		meaning: "Material aspects of life, work, and practical matters.",
		prefix:  "pe",
	},
}

var courtSuffix = map[string]string{
	"Ace":    "ac",
	"Page":   "pa",
	"Knight": "kn",
	"Queen":  "qu",
	"King":   "ki",
}

// minorArcana generates the 56 suited cards, numbering ids from firstID.
func minorArcana(firstID int) []domain.Card {
	cards := make([]domain.Card, 0, len(domain.Suits)*len(ranks))
	id := firstID
	for _, suit := range domain.Suits {
		tr := traits[suit]
		for _, rank := range ranks {
			name := rank + " of " + string(suit)
			cards = append(cards, domain.Card{
				ID:          id,
				Name:        name,
				Number:      rank,
				Arcana:      domain.Minor,
				Suit:        suit,
				Upright:     fmt.Sprintf("%s Positive manifestation of %s.", tr.meaning, rank),
				Reversed:    fmt.Sprintf("%s Delays or blocks regarding %s.", tr.meaning, rank),
				Description: fmt.Sprintf("The %s represents the essence of %s in the realm of %s.", name, suit, rank),
				Keywords:    []string{string(suit), rank, tr.element, tr.themes[0], tr.themes[1]},
				Image:       minorImage(suit, rank),
			})
			id++
		}
	}
	return cards
}

func majorImage(id int) string {
	return fmt.Sprintf("%s/ar%02d.jpg", imageBaseURL, id)
}

func minorImage(suit domain.Suit, rank string) string {
	suffix, ok := courtSuffix[rank]
	if !ok {
		n, _ := strconv.Atoi(rank)
		suffix = fmt.Sprintf("%02d", n)
	}
	return fmt.Sprintf("%s/%s%s.jpg", imageBaseURL, traits[suit].prefix, suffix)
}
