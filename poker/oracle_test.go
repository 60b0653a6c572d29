package poker

import (
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toReference converts a hand into the reference evaluator's card encoding,
// where aces are rank 1 and kings rank 13.
func toReference(t *testing.T, h Hand) [5]ref.Card {
	t.Helper()
	suits := map[Suit]ref.Suit{
		Hearts:   ref.Heart,
		Spades:   ref.Spade,
		Clubs:    ref.Club,
		Diamonds: ref.Diamond,
	}
	var out [5]ref.Card
	for i, c := range h {
		rank := ref.Rank(c.Rank())
		if c.Rank() == Ace {
			rank = 1
		}
		card, err := ref.MakeCard(suits[c.Suit()], rank)
		require.NoError(t, err)
		out[i] = card
	}
	return out
}

func TestCompareAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()
	for _, p := range randomHands(t, 2024, 20000) {
		a, b := toReference(t, p[0]), toReference(t, p[1])
		sa, sb := ref.Eval5(&a), ref.Eval5(&b)

		want := Tie
		switch {
		case sa > sb:
			want = Win
		case sa < sb:
			want = Loss
		}
		require.Equal(t, want, CompareHands(p[0], p[1]), "%s vs %s", p[0], p[1])
	}
}
