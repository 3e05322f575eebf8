// Package scoring implements bids and the round scoring rules for this
// spades variant: a minimum team bid of four tricks, a ten-point bonus
// for a team bid of ten or more, and nil bids that fail whenever the
// partnership comes up short, even if the nil bidder took nothing.
package scoring

import "fmt"

// Kind discriminates the three forms a bid can take.
type Kind int

const (
	// KindTake commits the bidder to a number of tricks.
	KindTake Kind = iota
	// KindNil commits the bidder to zero tricks, decided after seeing
	// their cards. Requires partner confirmation.
	KindNil
	// KindBlindNil commits the bidder to zero tricks, decided before
	// seeing their cards.
	KindBlindNil
)

// Bid is a player's pre-round commitment. Bids are comparable values;
// the Count field is meaningful only for KindTake.
type Bid struct {
	Kind  Kind
	Count int
}

// Take returns a bid to win exactly n tricks.
func Take(n int) Bid {
	return Bid{Kind: KindTake, Count: n}
}

// Nil is the regular nil bid.
var Nil = Bid{Kind: KindNil}

// BlindNil is the blind nil bid.
var BlindNil = Bid{Kind: KindBlindNil}

// IsNil reports whether the bid is any kind of nil.
func (b Bid) IsNil() bool {
	return b.Kind == KindNil || b.Kind == KindBlindNil
}

// NilBonus returns the bid's value bonus in tens: 20 for blind nil, 10
// for nil, 0 otherwise.
func (b Bid) NilBonus() int {
	switch b.Kind {
	case KindBlindNil:
		return 20
	case KindNil:
		return 10
	default:
		return 0
	}
}

// Tricks returns the number of tricks the bid commits to taking. Nil
// bids commit to zero.
func (b Bid) Tricks() int {
	if b.Kind == KindTake {
		return b.Count
	}
	return 0
}

// String returns a human-readable bid.
func (b Bid) String() string {
	switch b.Kind {
	case KindBlindNil:
		return "blind nil"
	case KindNil:
		return "nil"
	default:
		return fmt.Sprintf("take %d", b.Count)
	}
}

// CompatibilityError reports why b may not be bid alongside an existing
// partner bid, or nil if the pair is legal. Compatibility is symmetric:
// two bids conflict when both are a kind of nil, or when their combined
// trick counts exceed the thirteen tricks in a round.
func (b Bid) CompatibilityError(partner *Bid) error {
	if partner == nil {
		return nil
	}
	if b.IsNil() && partner.IsNil() {
		return fmt.Errorf("can not bid %s, your partner already bid %s", b, partner)
	}
	if b.Tricks()+partner.Tricks() > 13 {
		return fmt.Errorf("can not bid %s, the team total would exceed 13 tricks", b)
	}
	return nil
}

// AllBids returns every distinct bid a player could make: blind nil,
// nil, and take bids from zero through thirteen.
func AllBids() []Bid {
	bids := []Bid{BlindNil, Nil}
	for n := 0; n <= 13; n++ {
		bids = append(bids, Take(n))
	}
	return bids
}

// TeamTricks returns the number of tricks a partnership must take given
// its two bids, applying the four-trick minimum.
func TeamTricks(a, b Bid) int {
	return max(4, a.Tricks()+b.Tricks())
}

// HighBidBonus returns 10 when a partnership bid ten or more tricks,
// otherwise 0.
func HighBidBonus(a, b Bid) int {
	if a.Tricks()+b.Tricks() >= 10 {
		return 10
	}
	return 0
}

// BidValue returns the worth of a partnership's combined bid in tens:
// the required tricks plus any nil and high-bid bonuses.
func BidValue(a, b Bid) int {
	return TeamTricks(a, b) + a.NilBonus() + b.NilBonus() + HighBidBonus(a, b)
}
