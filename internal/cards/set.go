package cards

import (
	"math/bits"
	"strings"
)

// Set is a set of cards backed by a 52-bit mask. Bit i is set exactly
// when the card with index i is a member. Set is a value type; copies
// are independent and equality is ==.
type Set struct {
	mask uint64
}

const fullMask = (uint64(1) << NumCards) - 1

// Full returns the set containing every card.
func Full() Set {
	return Set{mask: fullMask}
}

// OfSuit returns the set of all thirteen cards of a suit.
func OfSuit(suit Suit) Set {
	// Relies on cards of a suit occupying a contiguous index block.
	return Set{mask: ((uint64(1) << NumRanks) - 1) << (suit.Index() * NumRanks)}
}

// NewSet builds a set from the given cards. Duplicates are allowed and
// inserted once.
func NewSet(cs ...Card) Set {
	var s Set
	for _, c := range cs {
		s.Insert(c)
	}
	return s
}

// Insert adds a card to the set. It reports whether the set changed,
// i.e. the card was not already a member.
func (s *Set) Insert(c Card) bool {
	m := uint64(1) << c.Index()
	present := s.mask&m != 0
	s.mask |= m
	return !present
}

// Remove takes a card out of the set. It reports whether the set
// changed, i.e. the card was a member.
func (s *Set) Remove(c Card) bool {
	m := uint64(1) << c.Index()
	present := s.mask&m != 0
	s.mask &^= m
	return present
}

// Clear removes every card from the set.
func (s *Set) Clear() {
	s.mask = 0
}

// Contains reports whether a card is in the set.
func (s Set) Contains(c Card) bool {
	return s.mask&(uint64(1)<<c.Index()) != 0
}

// IsEmpty reports whether the set has no cards.
func (s Set) IsEmpty() bool {
	return s.mask == 0
}

// Len returns the number of cards in the set.
func (s Set) Len() int {
	return bits.OnesCount64(s.mask)
}

// Cards returns the members of the set in ascending index order, which
// orders each suit's cards from lowest to highest rank.
func (s Set) Cards() []Card {
	out := make([]Card, 0, s.Len())
	for m := s.mask; m != 0; m &= m - 1 {
		c, _ := FromIndex(bits.TrailingZeros64(m))
		out = append(out, c)
	}
	return out
}

// Union returns the set of cards in either set.
func (s Set) Union(o Set) Set {
	return Set{mask: s.mask | o.mask}
}

// Intersect returns the set of cards in both sets.
func (s Set) Intersect(o Set) Set {
	return Set{mask: s.mask & o.mask}
}

// Subtract returns the set of cards in s but not in o.
func (s Set) Subtract(o Set) Set {
	return Set{mask: s.mask &^ o.mask}
}

// Complement returns the set of cards not in s.
func (s Set) Complement() Set {
	return Set{mask: fullMask &^ s.mask}
}

// String returns a space-separated listing of the set's cards.
func (s Set) String() string {
	var b strings.Builder
	for i, c := range s.Cards() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
