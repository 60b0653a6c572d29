package poker

import (
	"fmt"
	"slices"
	"strings"
)

// Classification is the category a hand falls into together with the ranks
// that break ties inside that category, most significant first.
type Classification struct {
	Category Category
	Keys     []Rank
}

// Compare returns 1 if c is stronger, -1 if other is stronger, 0 if equal.
func (c Classification) Compare(other Classification) int {
	if c.Category != other.Category {
		if c.Category > other.Category {
			return 1
		}
		return -1
	}
	return compareRanks(c.Keys, other.Keys)
}

// String returns the category followed by its tie-break keys, e.g. "Full House (A, 2)".
func (c Classification) String() string {
	keys := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		keys[i] = k.String()
	}
	return fmt.Sprintf("%s (%s)", c.Category, strings.Join(keys, ", "))
}

func compareRanks(a, b []Rank) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Classify returns the highest category the hand satisfies and its tie-break keys.
func Classify(h Hand) Classification {
	f := examine(h)
	for _, d := range detectors {
		if m := d.detect(&f); m.matched {
			return Classification{Category: d.category, Keys: m.keys}
		}
	}
	panic("poker: no category matched " + h.String())
}

// detectors lists one test per category, strongest first. The first match wins.
var detectors = [...]struct {
	category Category
	detect   func(*handFacts) match
}{
	{StraightFlush, detectStraightFlush},
	{FourOfAKind, detectFourOfAKind},
	{FullHouse, detectFullHouse},
	{Flush, detectFlush},
	{Straight, detectStraight},
	{ThreeOfAKind, detectThreeOfAKind},
	{TwoPair, detectTwoPair},
	{Pair, detectPair},
	{HighCard, detectHighCard},
}

// match is the outcome of a single category test: either no match, or a
// match carrying the category's tie-break keys.
type match struct {
	keys    []Rank
	matched bool
}

var noMatch = match{}

func matched(keys ...Rank) match {
	return match{keys: keys, matched: true}
}

// rankCounts maps each rank to the number of cards of that rank.
type rankCounts [Ace + 1]uint8

func countRanks(h Hand) rankCounts {
	var counts rankCounts
	for _, c := range h {
		counts[c.Rank()]++
	}
	return counts
}

// ranksWith returns the ranks held exactly n times, highest first.
func (rc *rankCounts) ranksWith(n uint8) []Rank {
	var ranks []Rank
	for r := Ace; r >= Two; r-- {
		if rc[r] == n {
			ranks = append(ranks, r)
		}
	}
	return ranks
}

// handFacts is computed once per hand and shared by every detector.
type handFacts struct {
	ranks        [HandSize]Rank // descending
	counts       rankCounts
	flush        bool
	straightHigh Rank // zero when the ranks do not form a run
}

func examine(h Hand) handFacts {
	f := handFacts{
		ranks:  h.Ranks(),
		counts: countRanks(h),
		flush:  true,
	}
	for _, c := range h[1:] {
		if c.Suit() != h[0].Suit() {
			f.flush = false
			break
		}
	}
	f.straightHigh = straightHigh(f.ranks)
	return f
}

var wheel = [HandSize]Rank{Ace, Five, Four, Three, Two}

// straightHigh returns the top rank of a five-card run, or zero if there is
// none. A-2-3-4-5 is a run to the five.
func straightHigh(desc [HandSize]Rank) Rank {
	if desc == wheel {
		return Five
	}
	for i := 1; i < HandSize; i++ {
		if desc[i-1] != desc[i]+1 {
			return 0
		}
	}
	return desc[0]
}

func detectStraightFlush(f *handFacts) match {
	if !f.flush || f.straightHigh == 0 {
		return noMatch
	}
	return matched(f.straightHigh)
}

func detectFourOfAKind(f *handFacts) match {
	quads := f.counts.ranksWith(4)
	if len(quads) != 1 {
		return noMatch
	}
	return matched(quads[0], f.counts.ranksWith(1)[0])
}

func detectFullHouse(f *handFacts) match {
	trips := f.counts.ranksWith(3)
	pairs := f.counts.ranksWith(2)
	if len(trips) != 1 || len(pairs) != 1 {
		return noMatch
	}
	return matched(trips[0], pairs[0])
}

func detectFlush(f *handFacts) match {
	if !f.flush {
		return noMatch
	}
	return matched(slices.Clone(f.ranks[:])...)
}

func detectStraight(f *handFacts) match {
	if f.straightHigh == 0 {
		return noMatch
	}
	return matched(f.straightHigh)
}

func detectThreeOfAKind(f *handFacts) match {
	trips := f.counts.ranksWith(3)
	if len(trips) != 1 || len(f.counts.ranksWith(2)) != 0 {
		return noMatch
	}
	kickers := f.counts.ranksWith(1)
	return matched(trips[0], kickers[0], kickers[1])
}

func detectTwoPair(f *handFacts) match {
	pairs := f.counts.ranksWith(2)
	if len(pairs) != 2 {
		return noMatch
	}
	return matched(pairs[0], pairs[1], f.counts.ranksWith(1)[0])
}

func detectPair(f *handFacts) match {
	pairs := f.counts.ranksWith(2)
	if len(pairs) != 1 || len(f.counts.ranksWith(3)) != 0 || len(f.counts.ranksWith(4)) != 0 {
		return noMatch
	}
	return matched(append(pairs, f.counts.ranksWith(1)...)...)
}

func detectHighCard(f *handFacts) match {
	return matched(slices.Clone(f.ranks[:])...)
}
