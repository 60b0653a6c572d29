package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand     string
		category Category
		keys     []Rank
	}{
		{"KS AS TS QS JS", StraightFlush, []Rank{Ace}},
		{"2H 3H 4H 5H 6H", StraightFlush, []Rank{Six}},
		{"AD 2D 3D 4D 5D", StraightFlush, []Rank{Five}},
		{"AS AH 2H AD AC", FourOfAKind, []Rank{Ace, Two}},
		{"JC KH JS JD JH", FourOfAKind, []Rank{Jack, King}},
		{"2S AH 2H AS AC", FullHouse, []Rank{Ace, Two}},
		{"2S 2H 2D AS AC", FullHouse, []Rank{Two, Ace}},
		{"2H 3H 5H 6H 7H", Flush, []Rank{Seven, Six, Five, Three, Two}},
		{"AS 3S 4S 8S 2S", Flush, []Rank{Ace, Eight, Four, Three, Two}},
		{"2S 3H 4H 5S 6C", Straight, []Rank{Six}},
		{"TD JH QC KS AH", Straight, []Rank{Ace}},
		{"AH 2C 3D 4S 5H", Straight, []Rank{Five}},
		{"AH AC 5H 6H AS", ThreeOfAKind, []Rank{Ace, Six, Five}},
		{"7H 7C 2H KH 7S", ThreeOfAKind, []Rank{Seven, King, Two}},
		{"2S 2H 4H 5S 4C", TwoPair, []Rank{Four, Two, Five}},
		{"KS KH 4H AS 4C", TwoPair, []Rank{King, Four, Ace}},
		{"AH AC 5H 6H 7S", Pair, []Rank{Ace, Seven, Six, Five}},
		{"6S AD 7H 4S AS", Pair, []Rank{Ace, Seven, Six, Four}},
		{"2S 3H 6H 7S 9C", HighCard, []Rank{Nine, Seven, Six, Three, Two}},
		{"2S AH 4H 5S KC", HighCard, []Rank{Ace, King, Five, Four, Two}},
		{"KH AC 2D 3S 4H", HighCard, []Rank{Ace, King, Four, Three, Two}},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			c := Classify(MustParseHand(tt.hand))
			assert.Equal(t, tt.category, c.Category)
			assert.Equal(t, tt.keys, c.Keys)
		})
	}
}

func TestClassifyIgnoresTokenOrder(t *testing.T) {
	t.Parallel()
	want := Classify(MustParseHand("6S AD 7H 4S AS"))
	for _, s := range []string{
		"AD 6S 7H 4S AS",
		"AS 4S 7H AD 6S",
		"4S 6S 7H AD AS",
	} {
		assert.Equal(t, want, Classify(MustParseHand(s)), s)
	}
}

func TestClassifyDoesNotMutateHand(t *testing.T) {
	t.Parallel()
	h := MustParseHand("2S AH 2H AS AC")
	before := h
	_ = Classify(h)
	assert.Equal(t, before, h)
}

func TestCategoryString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Straight Flush", StraightFlush.String())
	assert.Equal(t, "Three of a Kind", ThreeOfAKind.String())
	assert.Equal(t, "High Card", HighCard.String())
	assert.Equal(t, "Unknown", Category(42).String())
}

func TestClassificationString(t *testing.T) {
	t.Parallel()
	c := Classify(MustParseHand("2S AH 2H AS AC"))
	assert.Equal(t, "Full House (A, 2)", c.String())
}

func TestRankCounts(t *testing.T) {
	t.Parallel()
	counts := countRanks(MustParseHand("2S AH 2H AS AC"))
	assert.Equal(t, uint8(3), counts[Ace])
	assert.Equal(t, uint8(2), counts[Two])
	assert.Equal(t, []Rank{Ace}, counts.ranksWith(3))
	assert.Equal(t, []Rank{Two}, counts.ranksWith(2))
	assert.Empty(t, counts.ranksWith(1))
}

func TestDetectorsAreOrderedByStrength(t *testing.T) {
	t.Parallel()
	for i := 1; i < len(detectors); i++ {
		assert.Greater(t, detectors[i-1].category, detectors[i].category)
	}
	assert.Len(t, detectors, int(StraightFlush)+1)
}

func TestNoMatchIsDistinctFromEmptyMatch(t *testing.T) {
	t.Parallel()
	assert.False(t, noMatch.matched)
	assert.True(t, matched().matched)
	assert.Empty(t, matched().keys)
}

func BenchmarkClassify(b *testing.B) {
	h := MustParseHand("6S AD 7H 4S AS")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Classify(h)
	}
}
