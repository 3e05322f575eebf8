package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/scoring"
	"github.com/cardtable/spades/internal/seat"
)

// suitHands deals each seat one entire suit: spades to seat one, hearts
// to seat two, clubs to seat three, diamonds to seat four. Seat one wins
// every trick because it can only ever play trump.
func suitHands() [seat.NumSeats]cards.Set {
	return [seat.NumSeats]cards.Set{
		seat.One:   cards.OfSuit(cards.Spade),
		seat.Two:   cards.OfSuit(cards.Heart),
		seat.Three: cards.OfSuit(cards.Club),
		seat.Four:  cards.OfSuit(cards.Diamond),
	}
}

// fixedDealer always deals the same hands.
type fixedDealer struct {
	hands [seat.NumSeats]cards.Set
}

func (d *fixedDealer) Deal() [seat.NumSeats]cards.Set {
	return d.hands
}

// bidAll settles plain take bids for all four seats in bidding order.
func bidAll(t *testing.T, p *PublicState, bids map[seat.Seat]scoring.Bid) {
	t.Helper()
	for _, s := range p.Dealer().Next().Order() {
		p.SeeCards(s)
		require.NoError(t, p.MakeBid(s, bids[s]))
	}
}

// playRound plays first-playable cards until the round ends.
func playRound(t *testing.T, p *PublicState, hands *[seat.NumSeats]cards.Set) {
	t.Helper()
	for i := 0; i < cards.NumCards; i++ {
		st := p.Status()
		if st.Phase != PhasePlaying {
			return
		}
		playable := p.Trick().PlayableCards(hands[st.Seat], p.TrumpBroken())
		require.False(t, playable.IsEmpty())
		require.NoError(t, p.PlayCard(st.Seat, playable.Cards()[0], &hands[st.Seat]))
	}
	if p.Status().Phase != PhasePlaying {
		return
	}
	t.Fatal("round did not end after a full deck of plays")
}

func TestBiddingOrder(t *testing.T) {
	p := NewPublicState()

	// Seat one deals, so seat two opens the bidding.
	assert.Equal(t, WaitingForBid(seat.Two), p.Status())
	assert.Error(t, p.MakeBid(seat.Three, scoring.Take(3)), "bidding out of turn")

	for _, s := range []seat.Seat{seat.Two, seat.Three, seat.Four, seat.One} {
		assert.Equal(t, WaitingForBid(s), p.Status())
		p.SeeCards(s)
		require.NoError(t, p.MakeBid(s, scoring.Take(3)))
	}

	// With all bids in, the seat after the dealer leads the first trick.
	assert.Equal(t, WaitingForPlay(seat.Two), p.Status())
}

func TestBlindNilRequiresUnseenCards(t *testing.T) {
	p := NewPublicState()

	t.Run("after seeing cards", func(t *testing.T) {
		q := p.Clone()
		q.SeeCards(seat.Two)
		assert.Error(t, q.MakeBid(seat.Two, scoring.BlindNil))
	})

	t.Run("before seeing cards", func(t *testing.T) {
		q := p.Clone()
		require.NoError(t, q.MakeBid(seat.Two, scoring.BlindNil))
		bid, ok := q.Bid(seat.Two)
		require.True(t, ok)
		assert.Equal(t, scoring.BlindNil, bid)
	})
}

func TestNilConfirmation(t *testing.T) {
	setup := func(t *testing.T) PublicState {
		p := NewPublicState()
		p.SeeCards(seat.Two)
		require.NoError(t, p.MakeBid(seat.Two, scoring.Nil))
		return p
	}

	t.Run("nil waits for the partner", func(t *testing.T) {
		p := setup(t)
		assert.Equal(t, WaitingForNilConfirmation(seat.Four), p.Status())
		_, ok := p.Bid(seat.Two)
		assert.False(t, ok, "a pending nil is not yet a settled bid")
		assert.Error(t, p.ConfirmNil(seat.Three, true), "only the partner may confirm")
	})

	t.Run("approval settles the bid", func(t *testing.T) {
		p := setup(t)
		require.NoError(t, p.ConfirmNil(seat.Four, true))
		bid, ok := p.Bid(seat.Two)
		require.True(t, ok)
		assert.Equal(t, scoring.Nil, bid)
		assert.Equal(t, WaitingForBid(seat.Three), p.Status())
	})

	t.Run("rejection sends the bidder back", func(t *testing.T) {
		p := setup(t)
		require.NoError(t, p.ConfirmNil(seat.Four, false))
		_, ok := p.Bid(seat.Two)
		assert.False(t, ok)
		assert.Equal(t, WaitingForBid(seat.Two), p.Status())
		assert.True(t, p.NilRejected(seat.Two))

		// Nil is off the table for the rest of the round.
		assert.Error(t, p.MakeBid(seat.Two, scoring.Nil))
		require.NoError(t, p.MakeBid(seat.Two, scoring.Take(2)))
	})

	t.Run("confirming without a pending nil fails", func(t *testing.T) {
		p := NewPublicState()
		assert.Error(t, p.ConfirmNil(seat.Four, true))
	})
}

func TestMakeBidDispatchesOnKindAlone(t *testing.T) {
	// A Bid built directly can carry a stray count next to a nil kind;
	// it must behave exactly like the canonical nil bids.
	t.Run("nil with a count still needs confirmation", func(t *testing.T) {
		p := NewPublicState()
		p.SeeCards(seat.Two)
		require.NoError(t, p.MakeBid(seat.Two, scoring.Bid{Kind: scoring.KindNil, Count: 5}))
		assert.Equal(t, WaitingForNilConfirmation(seat.Four), p.Status())
		_, ok := p.Bid(seat.Two)
		assert.False(t, ok, "an unconfirmed nil is not a settled bid")

		require.NoError(t, p.ConfirmNil(seat.Four, true))
		bid, ok := p.Bid(seat.Two)
		require.True(t, ok)
		assert.Equal(t, scoring.Nil, bid, "the settled bid is canonical")
	})

	t.Run("blind nil with a count still requires unseen cards", func(t *testing.T) {
		p := NewPublicState()
		p.SeeCards(seat.Two)
		assert.Error(t, p.MakeBid(seat.Two, scoring.Bid{Kind: scoring.KindBlindNil, Count: 5}))
	})

	t.Run("blind nil with a count settles canonically", func(t *testing.T) {
		p := NewPublicState()
		require.NoError(t, p.MakeBid(seat.Two, scoring.Bid{Kind: scoring.KindBlindNil, Count: 5}))
		bid, ok := p.Bid(seat.Two)
		require.True(t, ok)
		assert.Equal(t, scoring.BlindNil, bid)
	})
}

func TestPartnersCanNotBothBidNil(t *testing.T) {
	p := NewPublicState()
	p.SeeCards(seat.Two)
	require.NoError(t, p.MakeBid(seat.Two, scoring.Nil))
	require.NoError(t, p.ConfirmNil(seat.Four, true))
	require.NoError(t, p.MakeBid(seat.Three, scoring.Take(4)))

	p.SeeCards(seat.Four)
	assert.Error(t, p.MakeBid(seat.Four, scoring.Nil))
	assert.Error(t, p.MakeBid(seat.Four, scoring.BlindNil))
	require.NoError(t, p.MakeBid(seat.Four, scoring.Take(4)))
}

func TestTeamBidsCanNotExceedThirteen(t *testing.T) {
	p := NewPublicState()
	p.SeeCards(seat.Two)
	require.NoError(t, p.MakeBid(seat.Two, scoring.Take(7)))
	require.NoError(t, p.MakeBid(seat.Three, scoring.Take(6)))

	p.SeeCards(seat.Four)
	assert.Error(t, p.MakeBid(seat.Four, scoring.Take(7)))
	require.NoError(t, p.MakeBid(seat.Four, scoring.Take(6)))
}

func TestCanNotPlayDuringBidding(t *testing.T) {
	p := NewPublicState()
	hands := suitHands()
	err := p.PlayCard(seat.Two, card(t, "H2"), &hands[seat.Two])
	assert.Error(t, err)
}

func TestRoundCompletion(t *testing.T) {
	p := NewPublicState()
	hands := suitHands()
	bidAll(t, &p, map[seat.Seat]scoring.Bid{
		seat.One:   scoring.Take(10),
		seat.Two:   scoring.Take(0),
		seat.Three: scoring.Take(3),
		seat.Four:  scoring.Take(0),
	})
	playRound(t, &p, &hands)

	// Seat one trumped every trick.
	require.Len(t, p.RoundResults(), 1)
	results := p.RoundResults()[0]
	assert.Equal(t, [2]int{13, 0}, results[0].TricksTaken)
	assert.Equal(t, [2]int{0, 0}, results[1].TricksTaken)

	// Team zero made thirteen with the high-bid bonus; team one went set.
	scores := p.Scores()
	assert.Equal(t, 23, scores[0].Tens())
	assert.Equal(t, -4, scores[1].Tens())

	// The deal passes left and the round state resets.
	assert.Equal(t, seat.Two, p.Dealer())
	assert.Equal(t, WaitingForBid(seat.Three), p.Status())
	assert.False(t, p.TrumpBroken())
	for i := 0; i < seat.NumSeats; i++ {
		s := seat.Seat(i)
		assert.False(t, p.CanSeeCards(s))
		assert.Equal(t, 0, p.TricksTaken(s))
		_, ok := p.Bid(s)
		assert.False(t, ok)
	}
	for i := 0; i < seat.NumSeats; i++ {
		assert.True(t, hands[i].IsEmpty(), "hands should be played out")
	}
}

func TestMercyRuleEndsGame(t *testing.T) {
	p := NewPublicState()
	bids := map[seat.Seat]scoring.Bid{
		seat.One:   scoring.Take(10),
		seat.Two:   scoring.Take(0),
		seat.Three: scoring.Take(3),
		seat.Four:  scoring.Take(0),
	}

	// Two blowout rounds open a lead past fifty tens.
	for round := 0; round < 2; round++ {
		hands := suitHands()
		bidAll(t, &p, bids)
		playRound(t, &p, &hands)
	}

	assert.Equal(t, GameOver(), p.Status())
	assert.Equal(t, 46, p.Scores()[0].Tens())
	assert.Equal(t, -8, p.Scores()[1].Tens())

	hands := suitHands()
	assert.Error(t, p.MakeBid(seat.Four, scoring.Take(3)))
	assert.Error(t, p.PlayCard(seat.Four, card(t, "D2"), &hands[seat.Four]))
}

func TestTrumpBroken(t *testing.T) {
	p := NewPublicState()
	hands := suitHands()
	bidAll(t, &p, map[seat.Seat]scoring.Bid{
		seat.One:   scoring.Take(4),
		seat.Two:   scoring.Take(3),
		seat.Three: scoring.Take(3),
		seat.Four:  scoring.Take(3),
	})

	assert.False(t, p.TrumpBroken())
	require.NoError(t, p.PlayCard(seat.Two, card(t, "H2"), &hands[seat.Two]))
	require.NoError(t, p.PlayCard(seat.Three, card(t, "C2"), &hands[seat.Three]))
	require.NoError(t, p.PlayCard(seat.Four, card(t, "D2"), &hands[seat.Four]))
	require.NoError(t, p.PlayCard(seat.One, card(t, "S2"), &hands[seat.One]))
	assert.True(t, p.TrumpBroken(), "a spade thrown on the trick breaks trump")
	assert.Equal(t, 1, p.TricksTaken(seat.One))
	assert.Equal(t, WaitingForPlay(seat.One), p.Status(), "the winner leads the next trick")
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPublicState()
	clone := p.Clone()
	p.SeeCards(seat.Two)
	require.NoError(t, p.MakeBid(seat.Two, scoring.Take(5)))

	_, ok := clone.Bid(seat.Two)
	assert.False(t, ok, "mutating the original must not touch the clone")
	assert.False(t, clone.CanSeeCards(seat.Two))
}
