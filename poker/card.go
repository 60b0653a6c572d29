package poker

import "fmt"

// Rank is a card rank. Values run from Two (2) to Ace (14), aces high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character notation for the rank ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return string(rune('0' + r))
	}
	return "?"
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Suit is a card suit. Suits are unordered; only equality matters.
type Suit uint8

const (
	Hearts Suit = iota
	Spades
	Clubs
	Diamonds
)

// String returns the single-character notation for the suit.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	default:
		return "?"
	}
}

// Card is an immutable (rank, suit) pair packed into a byte: rank<<2 | suit.
// The zero Card is not a valid card.
type Card uint8

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)<<2 | uint8(suit&3))
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(c >> 2)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c & 3)
}

// String returns the card in hand notation, e.g. "AS" or "TD".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// ParseCard parses a two-character token such as "AS" or "7D".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return 0, err
	}

	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, err
	}

	return NewCard(rank, suit), nil
}

func parseRank(c byte) (Rank, error) {
	switch c {
	case 'A':
		return Ace, nil
	case 'K':
		return King, nil
	case 'Q':
		return Queen, nil
	case 'J':
		return Jack, nil
	case 'T':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c - '0'), nil
	default:
		return 0, fmt.Errorf("%w: '%c'", ErrInvalidRank, c)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	case 'C':
		return Clubs, nil
	case 'D':
		return Diamonds, nil
	default:
		return 0, fmt.Errorf("%w: '%c'", ErrInvalidSuit, c)
	}
}
