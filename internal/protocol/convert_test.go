package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/scoring"
)

func TestBidWire(t *testing.T) {
	tests := []struct {
		name string
		bid  scoring.Bid
		wire BidData
	}{
		{name: "take", bid: scoring.Take(7), wire: BidData{Kind: "take", Count: 7}},
		{name: "take zero", bid: scoring.Take(0), wire: BidData{Kind: "take"}},
		{name: "nil", bid: scoring.Nil, wire: BidData{Kind: "nil"}},
		{name: "blind nil", bid: scoring.BlindNil, wire: BidData{Kind: "blind_nil"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wire, BidToWire(tt.bid))
			got, err := BidFromWire(tt.wire)
			require.NoError(t, err)
			assert.Equal(t, tt.bid, got)
		})
	}
}

func TestBidFromWireRejectsBadInput(t *testing.T) {
	_, err := BidFromWire(BidData{Kind: "take", Count: 14})
	assert.Error(t, err)
	_, err = BidFromWire(BidData{Kind: "take", Count: -1})
	assert.Error(t, err)
	_, err = BidFromWire(BidData{Kind: "double nil"})
	assert.Error(t, err)
}

func TestSetWire(t *testing.T) {
	set, err := SetFromWire([]string{"HK", "S2", "DA"})
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"S2", "HK", "DA"}, SetToWire(set),
		"wire cards come out in deck order")

	_, err = SetFromWire([]string{"S2", "banana"})
	assert.Error(t, err)
}

func TestEventWire(t *testing.T) {
	card, err := cards.Parse("CQ")
	require.NoError(t, err)

	events := []game.Event{
		game.SeeCardsEvent(),
		game.MakeBidEvent(scoring.Take(5)),
		game.MakeBidEvent(scoring.Nil),
		game.ConfirmNilEvent(true),
		game.ConfirmNilEvent(false),
		game.PlayCardEvent(card),
	}
	for _, ev := range events {
		t.Run(ev.String(), func(t *testing.T) {
			got, err := EventFromWire(EventToWire(ev))
			require.NoError(t, err)
			assert.Equal(t, ev, got)
		})
	}
}

func TestEventFromWireRejectsBadInput(t *testing.T) {
	_, err := EventFromWire(EventData{Action: "fold"})
	assert.Error(t, err)
	_, err = EventFromWire(EventData{Action: "make_bid"})
	assert.Error(t, err, "a bid event needs a bid")
	_, err = EventFromWire(EventData{Action: "play_card", Card: "??"})
	assert.Error(t, err)
}
