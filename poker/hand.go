package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// Hand is five cards held in ascending rank order. Cards of equal rank are
// ordered by suit so that the same five cards always produce the same Hand.
// Hand is an array value, so copies never share state.
type Hand [HandSize]Card

// NewHand builds a Hand from five cards in any order.
func NewHand(cards [HandSize]Card) Hand {
	h := Hand(cards)
	slices.SortFunc(h[:], func(a, b Card) int {
		if a.Rank() != b.Rank() {
			return int(a.Rank()) - int(b.Rank())
		}
		return int(a.Suit()) - int(b.Suit())
	})
	return h
}

// ParseHand parses five space-separated cards, e.g. "2H 3D 5S 9C KD".
func ParseHand(s string) (Hand, error) {
	tokens := strings.Fields(s)
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(tokens), HandSize)
	}

	var cards [HandSize]Card
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, &ParseError{Token: token, Position: i, Err: err}
		}
		for j := 0; j < i; j++ {
			if cards[j] == card {
				return Hand{}, &ParseError{Token: token, Position: i, Err: ErrDuplicateCard}
			}
		}
		cards[i] = card
	}

	return NewHand(cards), nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Ranks returns the ranks of the hand in descending order.
func (h Hand) Ranks() [HandSize]Rank {
	var ranks [HandSize]Rank
	for i, c := range h {
		ranks[i] = c.Rank()
	}
	slices.SortFunc(ranks[:], func(a, b Rank) int { return int(b) - int(a) })
	return ranks
}

// String renders the hand in the notation accepted by ParseHand.
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
