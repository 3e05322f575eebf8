// Package game implements the spades state machines: the single trick,
// the authoritative game state, and the per-player view.
package game

import (
	"errors"
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/seat"
)

// Trick tracks the cards played into one trick, starting from a leader
// and filled strictly in rotation. Trick is a value type.
type Trick struct {
	leader seat.Seat
	played [seat.NumSeats]cards.Card
	filled [seat.NumSeats]bool
}

// NewTrick creates an empty trick led by the given seat.
func NewTrick(leader seat.Seat) Trick {
	return Trick{leader: leader}
}

// Leader returns the seat that leads this trick.
func (t Trick) Leader() seat.Seat {
	return t.leader
}

// Card returns the card a seat has played into this trick, if any.
func (t Trick) Card(s seat.Seat) (cards.Card, bool) {
	return t.played[s], t.filled[s]
}

// NextToPlay returns the seat the trick is waiting on. It reports false
// once all four cards are in.
func (t Trick) NextToPlay() (seat.Seat, bool) {
	for _, s := range t.leader.Order() {
		if !t.filled[s] {
			return s, true
		}
	}
	return 0, false
}

// Winner determines who has won a completed trick. A later play beats
// the running best when it follows the best's suit with a higher rank,
// or when it is trump and the best is not. It reports false while the
// trick is still waiting on a play.
func (t Trick) Winner() (seat.Seat, cards.Card, bool) {
	if _, waiting := t.NextToPlay(); waiting {
		return 0, cards.Card{}, false
	}
	order := t.leader.Order()
	best, bestCard := order[0], t.played[order[0]]
	for _, s := range order[1:] {
		c := t.played[s]
		if c.Suit == bestCard.Suit {
			if c.Rank > bestCard.Rank {
				best, bestCard = s, c
			}
		} else if c.Suit == cards.Spade {
			best, bestCard = s, c
		}
	}
	return best, bestCard, true
}

// LeadSuit returns the suit led into this trick. It reports false if no
// card has been played yet.
func (t Trick) LeadSuit() (cards.Suit, bool) {
	if !t.filled[t.leader] {
		return 0, false
	}
	return t.played[t.leader].Suit, true
}

// PlayCard records a card for a seat. It fails if the trick is already
// won or it is not the seat's turn. The card is not checked against any
// hand; that is the caller's responsibility.
func (t *Trick) PlayCard(s seat.Seat, c cards.Card) error {
	next, waiting := t.NextToPlay()
	if !waiting {
		return errors.New("can not play a card into a trick that is already won")
	}
	if next != s {
		return fmt.Errorf("can not play a card, waiting on %s", next)
	}
	t.played[s] = c
	t.filled[s] = true
	return nil
}

// PlayableCards returns the subset of a hand that may legally be played
// into this trick. Followers must follow the lead suit when they can.
// The leader may not lead trump until it is broken, unless the hand
// holds nothing else.
func (t Trick) PlayableCards(hand cards.Set, trumpBroken bool) cards.Set {
	if suit, led := t.LeadSuit(); led {
		sameSuit := hand.Intersect(cards.OfSuit(suit))
		if sameSuit.IsEmpty() {
			return hand
		}
		return sameSuit
	}
	nonTrump := hand.Subtract(cards.OfSuit(cards.Spade))
	if trumpBroken || nonTrump.IsEmpty() {
		return hand
	}
	return nonTrump
}
