package game

import (
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/scoring"
	"github.com/cardtable/spades/internal/seat"
)

// EventKind discriminates the player intents that mutate game state.
type EventKind int

const (
	// EventSeeCards asks to see the player's hand, forfeiting blind nil.
	EventSeeCards EventKind = iota
	// EventMakeBid makes a bid.
	EventMakeBid
	// EventConfirmNil approves or rejects a partner's pending nil bid.
	EventConfirmNil
	// EventPlayCard plays a card into the live trick.
	EventPlayCard
)

// Event is one player intent, as sent from a client to the server and
// rebroadcast to the other clients once confirmed. Events are
// comparable values; only the field matching Kind is meaningful.
type Event struct {
	Kind    EventKind
	Bid     scoring.Bid
	Card    cards.Card
	Approve bool
}

// SeeCardsEvent builds a see-cards event.
func SeeCardsEvent() Event {
	return Event{Kind: EventSeeCards}
}

// MakeBidEvent builds a bid event.
func MakeBidEvent(b scoring.Bid) Event {
	return Event{Kind: EventMakeBid, Bid: b}
}

// ConfirmNilEvent builds a nil-confirmation event.
func ConfirmNilEvent(approve bool) Event {
	return Event{Kind: EventConfirmNil, Approve: approve}
}

// PlayCardEvent builds a card-play event.
func PlayCardEvent(c cards.Card) Event {
	return Event{Kind: EventPlayCard, Card: c}
}

// String returns a human-readable event.
func (e Event) String() string {
	switch e.Kind {
	case EventSeeCards:
		return "see cards"
	case EventMakeBid:
		return fmt.Sprintf("bid %s", e.Bid)
	case EventConfirmNil:
		if e.Approve {
			return "approve nil"
		}
		return "reject nil"
	case EventPlayCard:
		return fmt.Sprintf("play %s", e.Card)
	default:
		return fmt.Sprintf("event(%d)", int(e.Kind))
	}
}

// Notification carries a confirmed event to the other players so they
// can update their views.
type Notification struct {
	Seat  seat.Seat
	Event Event
}

// Response acknowledges a successful event. The notification, when
// present, should be broadcast to every other player. The hand payload
// is set only in response to a see-cards event.
type Response struct {
	Notification *Notification
	Hand         *cards.Set
}
