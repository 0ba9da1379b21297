package validator

import (
	"fmt"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/seq"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Cards   seq.Indexable[card.Card]
	Results ValidationResults
}

func New(cards seq.Indexable[card.Card]) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() ValidationResults {
	v.Results = ValidationResults{}

	v.validateLength()
	v.validateMembership()
	v.validateOrder()
	v.validateRanking()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateLength checks the collection holds one card per rank and suit
func (v *Validator) validateLength() {
	want := len(card.Ranks) * len(card.Suits)
	if got := v.Cards.Len(); got != want {
		v.errorf("deck has %d cards, expected %d", got, want)
	}
}

// validateMembership checks every pair occurs exactly once and nothing else does
func (v *Validator) validateMembership() {
	counts := make(map[card.Card]int)
	for c := range seq.All(v.Cards) {
		if !c.Rank.Valid() {
			v.errorf("unknown rank %q in %v", c.Rank, c)
			continue
		}
		if !c.Suit.Valid() {
			v.errorf("unknown suit %q in %v", c.Suit, c)
			continue
		}
		counts[c]++
	}

	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			c := card.Card{Rank: rank, Suit: suit}
			switch n := counts[c]; {
			case n == 0:
				v.errorf("missing card: %s", c.Name())
			case n > 1:
				v.errorf("duplicate card: %s appears %d times", c.Name(), n)
			}
		}
	}
}

// validateOrder checks suits are contiguous and in construction order
func (v *Validator) validateOrder() {
	perSuit := len(card.Ranks)
	for i := 0; i < v.Cards.Len(); i++ {
		c := v.Cards.Index(i)
		suitIdx, rankIdx := i/perSuit, i%perSuit
		if suitIdx >= len(card.Suits) {
			return
		}
		want := card.Card{Rank: card.Ranks[rankIdx], Suit: card.Suits[suitIdx]}
		if c != want {
			v.warnf("position %d holds %s, natural order expects %s", i, c.Name(), want.Name())
			return
		}
	}
}

// validateRanking checks SpadesHigh gives every card its own key
func (v *Validator) validateRanking() {
	owners := make(map[int]card.Card)
	for c := range seq.All(v.Cards) {
		if !c.Rank.Valid() || !c.Suit.Valid() {
			continue
		}
		k := deck.SpadesHigh(c)
		if prev, ok := owners[k]; ok && prev != c {
			v.errorf("%s and %s share ranking key %d", prev.Name(), c.Name(), k)
		}
		owners[k] = c
	}

	sorted := deck.SortedSpadesHigh(v.Cards)
	for i := 1; i < len(sorted); i++ {
		if deck.SpadesHigh(sorted[i-1]) > deck.SpadesHigh(sorted[i]) {
			v.errorf("ranking sort out of order at position %d", i)
			return
		}
	}
}
