// Package cards provides the card model for spades: suits, ranks, a
// 52-card index mapping, and a bitset type for hands and plays.
package cards

import "fmt"

// Suit represents a card suit. Spade is the trump suit.
type Suit int

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// SuitFromIndex converts a value in [0, NumSuits) to a Suit.
func SuitFromIndex(index int) (Suit, error) {
	if index < 0 || index >= NumSuits {
		return 0, fmt.Errorf("invalid suit index: %d", index)
	}
	return Suit(index), nil
}

// Index returns the suit's position in [0, NumSuits).
func (s Suit) Index() int {
	return int(s)
}

// String returns the single-character representation of a suit.
func (s Suit) String() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Club:
		return "C"
	case Diamond:
		return "D"
	default:
		return "?"
	}
}

func suitFromByte(b byte) (Suit, error) {
	switch b {
	case 'S':
		return Spade, nil
	case 'H':
		return Heart, nil
	case 'C':
		return Club, nil
	case 'D':
		return Diamond, nil
	default:
		return 0, fmt.Errorf("invalid suit character: %q", b)
	}
}

// Rank represents a card rank, ordered Two < Three < ... < King < Ace.
type Rank int

const (
	Two Rank = iota
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

// NumRanks is the number of ranks in a suit.
const NumRanks = 13

// RankFromIndex converts a value in [0, NumRanks) to a Rank.
func RankFromIndex(index int) (Rank, error) {
	if index < 0 || index >= NumRanks {
		return 0, fmt.Errorf("invalid rank index: %d", index)
	}
	return Rank(index), nil
}

// Index returns the rank's position in [0, NumRanks).
func (r Rank) Index() int {
	return int(r)
}

// String returns the single-character representation of a rank.
// Ten is written as "X" to keep every card two characters wide.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('2' + r - Two))
	case r == Ten:
		return "X"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

func rankFromByte(b byte) (Rank, error) {
	switch {
	case b >= '2' && b <= '9':
		return Two + Rank(b-'2'), nil
	case b == 'X':
		return Ten, nil
	case b == 'J':
		return Jack, nil
	case b == 'Q':
		return Queen, nil
	case b == 'K':
		return King, nil
	case b == 'A':
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank character: %q", b)
	}
}

// NumCards is the number of cards in a deck.
const NumCards = NumSuits * NumRanks

// Card uniquely identifies a playing card within a deck.
type Card struct {
	Suit Suit
	Rank Rank
}

// New creates a card from its suit and rank.
func New(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// FromIndex converts a value in [0, NumCards) to a Card.
func FromIndex(index int) (Card, error) {
	if index < 0 || index >= NumCards {
		return Card{}, fmt.Errorf("invalid card index: %d", index)
	}
	return Card{Suit: Suit(index / NumRanks), Rank: Rank(index % NumRanks)}, nil
}

// Index returns the card's position in [0, NumCards). Cards of the same
// suit occupy a contiguous block ordered by rank.
func (c Card) Index() int {
	return c.Suit.Index()*NumRanks + c.Rank.Index()
}

// Parse converts a two-character string such as "SA" or "HX" to a Card.
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: must be two characters", s)
	}
	suit, err := suitFromByte(s[0])
	if err != nil {
		return Card{}, err
	}
	rank, err := rankFromByte(s[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// String returns the two-character representation of a card (e.g. "SA").
func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}
