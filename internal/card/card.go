package card

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Rank is a card's face value
type Rank string

// Suit is one of the four French suits
type Suit string

const (
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Hearts   Suit = "hearts"
)

// Ranks lists every rank from lowest (2) to highest (Ace)
var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Suits lists every suit in construction order
var Suits = []Suit{Spades, Diamonds, Clubs, Hearts}

var (
	ErrUnknownRank = errors.New("unknown rank")
	ErrUnknownSuit = errors.New("unknown suit")
)

// Card represents a single playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// String implements Stringer.
func (c Card) String() string {
	return fmt.Sprintf("Card(rank='%s', suit='%s')", c.Rank, c.Suit)
}

// Name returns the human readable name, e.g. "Seven of Diamonds"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", rankNames[c.Rank], capitalize(string(c.Suit)))
}

// RankIndex returns the position of r in Ranks, or -1 if r is not a rank
func RankIndex(r Rank) int {
	for i, rank := range Ranks {
		if rank == r {
			return i
		}
	}
	return -1
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Valid reports whether s is one of Suits
func (s Suit) Valid() bool {
	for _, suit := range Suits {
		if suit == s {
			return true
		}
	}
	return false
}

// Valid reports whether r is one of Ranks
func (r Rank) Valid() bool {
	return RankIndex(r) >= 0
}

// ParseRank accepts a rank as written on the card ("10", "q", "A")
func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", errors.Wrapf(ErrUnknownRank, "%q", s)
	}
	return r, nil
}

// ParseSuit accepts a suit name in any case
func ParseSuit(s string) (Suit, error) {
	suit := Suit(strings.ToLower(strings.TrimSpace(s)))
	if !suit.Valid() {
		return "", errors.Wrapf(ErrUnknownSuit, "%q", s)
	}
	return suit, nil
}

var rankNames = map[Rank]string{
	"2":  "Two",
	"3":  "Three",
	"4":  "Four",
	"5":  "Five",
	"6":  "Six",
	"7":  "Seven",
	"8":  "Eight",
	"9":  "Nine",
	"10": "Ten",
	"J":  "Jack",
	"Q":  "Queen",
	"K":  "King",
	"A":  "Ace",
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
