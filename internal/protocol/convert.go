package protocol

import (
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/scoring"
)

// BidToWire converts a bid to its wire form.
func BidToWire(b scoring.Bid) BidData {
	switch b.Kind {
	case scoring.KindBlindNil:
		return BidData{Kind: "blind_nil"}
	case scoring.KindNil:
		return BidData{Kind: "nil"}
	default:
		return BidData{Kind: "take", Count: b.Count}
	}
}

// BidFromWire parses a wire bid.
func BidFromWire(d BidData) (scoring.Bid, error) {
	switch d.Kind {
	case "blind_nil":
		return scoring.BlindNil, nil
	case "nil":
		return scoring.Nil, nil
	case "take":
		if d.Count < 0 || d.Count > 13 {
			return scoring.Bid{}, fmt.Errorf("invalid bid count: %d", d.Count)
		}
		return scoring.Take(d.Count), nil
	default:
		return scoring.Bid{}, fmt.Errorf("invalid bid kind: %q", d.Kind)
	}
}

// SetToWire converts a card set to its wire form, in ascending order.
func SetToWire(s cards.Set) []string {
	members := s.Cards()
	out := make([]string, len(members))
	for i, c := range members {
		out[i] = c.String()
	}
	return out
}

// SetFromWire parses a list of wire cards into a set.
func SetFromWire(ss []string) (cards.Set, error) {
	var set cards.Set
	for _, s := range ss {
		c, err := cards.Parse(s)
		if err != nil {
			return cards.Set{}, err
		}
		set.Insert(c)
	}
	return set, nil
}

// EventToWire converts a game event to its wire form.
func EventToWire(ev game.Event) EventData {
	switch ev.Kind {
	case game.EventSeeCards:
		return EventData{Action: string(TypeSeeCards)}
	case game.EventMakeBid:
		bid := BidToWire(ev.Bid)
		return EventData{Action: string(TypeMakeBid), Bid: &bid}
	case game.EventConfirmNil:
		return EventData{Action: string(TypeConfirmNil), Approve: ev.Approve}
	default:
		return EventData{Action: string(TypePlayCard), Card: ev.Card.String()}
	}
}

// EventFromWire parses a wire event.
func EventFromWire(d EventData) (game.Event, error) {
	switch MessageType(d.Action) {
	case TypeSeeCards:
		return game.SeeCardsEvent(), nil
	case TypeMakeBid:
		if d.Bid == nil {
			return game.Event{}, fmt.Errorf("make_bid event has no bid")
		}
		bid, err := BidFromWire(*d.Bid)
		if err != nil {
			return game.Event{}, err
		}
		return game.MakeBidEvent(bid), nil
	case TypeConfirmNil:
		return game.ConfirmNilEvent(d.Approve), nil
	case TypePlayCard:
		c, err := cards.Parse(d.Card)
		if err != nil {
			return game.Event{}, err
		}
		return game.PlayCardEvent(c), nil
	default:
		return game.Event{}, fmt.Errorf("invalid event action: %q", d.Action)
	}
}
