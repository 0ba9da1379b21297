package deck

import (
	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/seq"
)

var _ seq.Indexable[card.Card] = (*FrenchDeck)(nil)

// FrenchDeck is the standard 52-card deck. Its contents are fixed at construction.
type FrenchDeck struct {
	cards []card.Card
}

// New builds a deck with suits as the outer loop and ranks as the inner loop,
// so cards of the same suit are contiguous.
func New() *FrenchDeck {
	cards := make([]card.Card, 0, len(card.Ranks)*len(card.Suits))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return &FrenchDeck{cards: cards}
}

// Len returns the number of cards in the deck
func (d *FrenchDeck) Len() int {
	return len(d.cards)
}

// Index returns the card at position i, which must be in range
func (d *FrenchDeck) Index(i int) card.Card {
	return d.cards[i]
}

// Get returns the card at position i. Negative positions count from the end.
func (d *FrenchDeck) Get(i int) (card.Card, error) {
	return seq.Get[card.Card](d, i)
}

// Slice returns the cards selected by s, in selection order
func (d *FrenchDeck) Slice(s seq.Slice) ([]card.Card, error) {
	return seq.SliceOf[card.Card](d, s)
}

// Cards returns a copy of the deck contents
func (d *FrenchDeck) Cards() []card.Card {
	return seq.Collect[card.Card](d)
}
