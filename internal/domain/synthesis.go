package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fallbackLesson closes the journey when the last card has a single keyword.
const fallbackLesson = "growth"

const closing = " Trust your intuition as you integrate these messages."

var suitThemes = map[Suit]string{
	Wands:     " The strong presence of Wands suggests this is a time of action, creativity, and burning passion.",
	Cups:      " With many Cups appearing, emotions, relationships, and intuition are guiding your current journey.",
	Swords:    " The Swords indicate that clarity of thought, truth, and perhaps some mental conflict are central themes.",
	Pentacles: " Pentacles ground this reading in reality, focusing on career, home, and material stability.",
}

// Synthesize builds the interpretation paragraph for a completed spread.
// The result depends only on the cards, their order and orientation, and spreadName.
func Synthesize(drawn []DrawnCard, spreadName string) (string, error) {
	if len(drawn) == 0 {
		return "", ErrEmptyReading
	}

	path := "practical daily evolution"
	if majorHeavy(drawn) {
		path = "significant soul-level transformation"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The \"%s\" spread has revealed a path of %s.", spreadName, path)
	if suit, ok := dominantSuit(drawn); ok {
		b.WriteString(suitThemes[suit])
	}
	b.WriteString(" ")
	b.WriteString(journey(drawn[0], drawn[len(drawn)-1]))
	b.WriteString(closing)
	return b.String(), nil
}

// dominantSuit returns the suit that first reached the highest count.
// A later suit must exceed the running maximum to take over.
func dominantSuit(drawn []DrawnCard) (Suit, bool) {
	counts := make(map[Suit]int, len(Suits))
	var dominant Suit
	best := 0
	for _, dc := range drawn {
		if dc.Card.Suit == SuitNone {
			continue
		}
		counts[dc.Card.Suit]++
		if counts[dc.Card.Suit] > best {
			best = counts[dc.Card.Suit]
			dominant = dc.Card.Suit
		}
	}
	return dominant, best > 0
}

// majorHeavy reports whether at least half the cards (rounded up) are Major Arcana.
func majorHeavy(drawn []DrawnCard) bool {
	majors := 0
	for _, dc := range drawn {
		if dc.Card.Arcana == Major {
			majors++
		}
	}
	return majors >= (len(drawn)+1)/2
}

func journey(first, last DrawnCard) string {
	lower := cases.Lower(language.English)

	opening := "a clear expression of"
	if first.Reversed {
		opening = "an internal block or delay regarding"
	}
	lesson := "an opportunity for"
	if last.Reversed {
		lesson = "a need to revisit"
	}

	return fmt.Sprintf("You begin with the energy of the %s, indicating %s %s. Ultimately, this path leads towards the lesson of the %s: %s %s.",
		first.Card.Name, opening, lower.String(keyword(first.Card, 0, fallbackLesson)),
		last.Card.Name, lesson, lower.String(keyword(last.Card, 1, fallbackLesson)),
	)
}

func keyword(c *Card, i int, fallback string) string {
	if i < len(c.Keywords) && c.Keywords[i] != "" {
		return c.Keywords[i]
	}
	return fallback
}
