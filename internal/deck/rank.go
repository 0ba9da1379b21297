package deck

import (
	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/seq"
)

// SuitValues is the tie-break priority used by SpadesHigh
var SuitValues = map[card.Suit]int{
	card.Clubs:    0,
	card.Diamonds: 1,
	card.Hearts:   2,
	card.Spades:   3,
}

// SpadesHigh orders cards by rank first and suit second, with the 2 of clubs
// lowest and the ace of spades highest.
func SpadesHigh(c card.Card) int {
	return card.RankIndex(c.Rank)*len(SuitValues) + SuitValues[c.Suit]
}

// SortedSpadesHigh returns the cards of x sorted by SpadesHigh
func SortedSpadesHigh(x seq.Indexable[card.Card]) []card.Card {
	return seq.SortedBy(x, SpadesHigh)
}
