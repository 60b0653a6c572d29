package poker

import (
	"fmt"
	"strings"
)

// Result is the outcome of a comparison from the first hand's point of view.
type Result uint8

const (
	Win Result = iota + 1
	Loss
	Tie
)

func (r Result) String() string {
	switch r {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Tie:
		return "Tie"
	default:
		return "Unknown"
	}
}

// ParseResult parses "win", "loss" or "tie" in any letter case.
func ParseResult(s string) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "win":
		return Win, nil
	case "loss":
		return Loss, nil
	case "tie":
		return Tie, nil
	default:
		return 0, fmt.Errorf("unknown result %q", s)
	}
}

// Invert returns the result as seen by the other hand.
func (r Result) Invert() Result {
	switch r {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return r
	}
}

func resultOf(cmp int) Result {
	switch {
	case cmp > 0:
		return Win
	case cmp < 0:
		return Loss
	default:
		return Tie
	}
}

// Compare parses both hands and reports whether hand wins, loses or ties
// against opponent.
func Compare(hand, opponent string) (Result, error) {
	a, err := ParseHand(hand)
	if err != nil {
		return 0, fmt.Errorf("hand: %w", err)
	}
	b, err := ParseHand(opponent)
	if err != nil {
		return 0, fmt.Errorf("opponent: %w", err)
	}
	return CompareHands(a, b), nil
}

// CompareHands reports the result for a against b. Categories are compared
// first, then the category's tie-break keys, and finally all five ranks from
// the top down.
func CompareHands(a, b Hand) Result {
	return resultOf(compareHands(a, b))
}

func compareHands(a, b Hand) int {
	if cmp := Classify(a).Compare(Classify(b)); cmp != 0 {
		return cmp
	}
	ra, rb := a.Ranks(), b.Ranks()
	return compareRanks(ra[:], rb[:])
}

// Explain compares a against b and describes the deciding difference, e.g.
// "Full House [2S 2H AH AS AC] beats Flush [2H 3H 5H 6H 7H]".
func Explain(a, b Hand) (Result, string) {
	ca, cb := Classify(a), Classify(b)
	result := resultOf(compareHands(a, b))
	if result == Tie {
		return result, "hands tie"
	}

	winner, loser := a, b
	cw, cl := ca, cb
	if result == Loss {
		winner, loser = b, a
		cw, cl = cb, ca
	}

	explanation := fmt.Sprintf("%s [%s] beats %s [%s]", cw.Category, winner, cl.Category, loser)
	if cw.Category != cl.Category {
		return result, explanation
	}

	for i := 0; i < len(cw.Keys) && i < len(cl.Keys); i++ {
		if cw.Keys[i] != cl.Keys[i] {
			return result, fmt.Sprintf("%s with %s (%s vs %s)",
				explanation, keyName(cw.Category, i), cw.Keys[i], cl.Keys[i])
		}
	}
	return result, explanation
}

// keyName describes the i-th tie-break key of a category.
func keyName(c Category, i int) string {
	switch c {
	case StraightFlush, Straight:
		return "higher straight"
	case FourOfAKind:
		if i == 0 {
			return "higher quads"
		}
	case FullHouse:
		if i == 0 {
			return "higher trips"
		}
		return "higher pair"
	case Flush:
		return "higher flush card"
	case ThreeOfAKind:
		if i == 0 {
			return "higher trips"
		}
	case TwoPair:
		switch i {
		case 0:
			return "higher top pair"
		case 1:
			return "higher bottom pair"
		}
	case Pair:
		if i == 0 {
			return "higher pair"
		}
	case HighCard:
		return "higher card"
	}
	return "higher kicker"
}
