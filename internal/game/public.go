package game

import (
	"errors"
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/scoring"
	"github.com/cardtable/spades/internal/seat"
)

// PublicState is the game state visible to every player: everything
// except the hands. Servers embed it inside State; clients embed it
// inside View and keep it current by replaying notifications.
//
// The status is always derived from these fields on demand, never
// stored, so it can not fall out of sync with them.
type PublicState struct {
	scores        [seat.NumTeams]scoring.Score
	roundResults  []scoring.RoundResults
	dealer        seat.Seat
	seenCards     [seat.NumSeats]bool
	trumpBroken   bool
	pendingNil    seat.Seat
	hasPendingNil bool
	nilRejected   [seat.NumSeats]bool
	bids          [seat.NumSeats]scoring.Bid
	hasBid        [seat.NumSeats]bool
	tricksTaken   [seat.NumSeats]int
	trick         Trick
}

// NewPublicState creates the state of a fresh game: seat one deals, so
// seat two bids and leads first.
func NewPublicState() PublicState {
	return PublicState{
		dealer: seat.One,
		trick:  NewTrick(seat.One.Next()),
	}
}

// Clone returns an independent copy of the state.
func (p *PublicState) Clone() PublicState {
	c := *p
	c.roundResults = append([]scoring.RoundResults(nil), p.roundResults...)
	return c
}

// Scores returns both teams' scores, indexed by team.
func (p *PublicState) Scores() [seat.NumTeams]scoring.Score {
	return p.scores
}

// RoundResults returns the results of all completed rounds.
func (p *PublicState) RoundResults() []scoring.RoundResults {
	return p.roundResults
}

// Dealer returns the seat dealing this round.
func (p *PublicState) Dealer() seat.Seat {
	return p.dealer
}

// CanSeeCards reports whether a seat has asked to see its cards.
func (p *PublicState) CanSeeCards(s seat.Seat) bool {
	return p.seenCards[s]
}

// TrumpBroken reports whether a spade has been played this round.
func (p *PublicState) TrumpBroken() bool {
	return p.trumpBroken
}

// NilRejected reports whether a seat has had a nil bid rejected this
// round, which blocks further regular nil attempts until the next round.
func (p *PublicState) NilRejected(s seat.Seat) bool {
	return p.nilRejected[s]
}

// Bid returns a seat's settled bid, if it has made one.
func (p *PublicState) Bid(s seat.Seat) (scoring.Bid, bool) {
	return p.bids[s], p.hasBid[s]
}

// TricksTaken returns the number of tricks a seat has taken this round.
func (p *PublicState) TricksTaken(s seat.Seat) int {
	return p.tricksTaken[s]
}

// Trick returns a copy of the live trick.
func (p *PublicState) Trick() Trick {
	return p.trick
}

// Status derives what the game is currently waiting for, in priority
// order: game over, nil confirmation, bidding, then card play.
func (p *PublicState) Status() Status {
	if _, over := scoring.WinningTeam(p.scores); over {
		return GameOver()
	}
	if p.hasPendingNil {
		return WaitingForNilConfirmation(p.pendingNil.Partner())
	}
	for _, s := range p.dealer.Next().Order() {
		if !p.hasBid[s] {
			return WaitingForBid(s)
		}
	}
	if next, waiting := p.trick.NextToPlay(); waiting {
		return WaitingForPlay(next)
	}
	panic("game: trick already won while deriving status")
}

// allBids collects every seat's settled bid for round scoring. Bidding
// must be complete by the time it is called.
func (p *PublicState) allBids() [seat.NumSeats]scoring.Bid {
	for s, ok := range p.hasBid {
		if !ok {
			panic(fmt.Sprintf("game: no bid for seat index %d at round end", s))
		}
	}
	return p.bids
}

// afterPlay handles trick and round completion after a successful card
// play.
func (p *PublicState) afterPlay() {
	winner, winningCard, won := p.trick.Winner()
	if !won {
		return
	}
	p.tricksTaken[winner]++
	if winningCard.Suit == cards.Spade {
		p.trumpBroken = true
	}
	p.trick = NewTrick(winner)

	total := 0
	for _, n := range p.tricksTaken {
		total += n
	}
	if total < cards.NumRanks {
		return
	}

	// All thirteen tricks played: score the round and reset for the next.
	results := scoring.NewRoundResults(p.allBids(), p.tricksTaken)
	p.roundResults = append(p.roundResults, results)
	for team := range p.scores {
		p.scores[team] = p.scores[team].Add(results[team].RoundScore())
	}
	p.dealer = p.dealer.Next()
	p.seenCards = [seat.NumSeats]bool{}
	p.trumpBroken = false
	p.nilRejected = [seat.NumSeats]bool{}
	p.hasBid = [seat.NumSeats]bool{}
	p.tricksTaken = [seat.NumSeats]int{}
	p.trick = NewTrick(p.dealer.Next())
}

// SeeCards marks a seat as having seen its cards, forfeiting blind nil.
// It is idempotent and always succeeds.
func (p *PublicState) SeeCards(s seat.Seat) {
	p.seenCards[s] = true
}

// MakeBid handles a seat bidding. Blind nil requires unseen cards, the
// bid must be compatible with the partner's, and a regular nil is only
// recorded as pending until the partner confirms it.
func (p *PublicState) MakeBid(s seat.Seat, bid scoring.Bid) error {
	if p.Status() != WaitingForBid(s) {
		return errors.New("it is not your turn to bid")
	}
	if bid.Kind == scoring.KindBlindNil && p.seenCards[s] {
		return errors.New("can not bid blind nil after seeing your cards")
	}
	var partnerBid *scoring.Bid
	if b, ok := p.Bid(s.Partner()); ok {
		partnerBid = &b
	}
	if err := bid.CompatibilityError(partnerBid); err != nil {
		return err
	}

	// Dispatch on the kind alone so a Bid carrying a stray count can not
	// sidestep the nil handshake.
	switch bid.Kind {
	case scoring.KindNil:
		if p.nilRejected[s] {
			return errors.New("can not bid nil again after your partner rejected it this round")
		}
		p.pendingNil = s
		p.hasPendingNil = true
	case scoring.KindBlindNil:
		p.bids[s] = scoring.BlindNil
		p.hasBid[s] = true
	default:
		p.bids[s] = bid
		p.hasBid[s] = true
	}
	return nil
}

// ConfirmNil handles a partner approving or rejecting a pending nil
// bid. Approval settles the bid as nil; rejection sends the bidder back
// to bid again and blocks regular nil for the rest of the round.
func (p *PublicState) ConfirmNil(s seat.Seat, approve bool) error {
	if !p.hasPendingNil {
		return errors.New("can not confirm a nil bid, none is pending")
	}
	if p.pendingNil.Partner() != s {
		return errors.New("can not confirm a nil bid, your partner has none pending")
	}
	if approve {
		p.bids[p.pendingNil] = scoring.Nil
		p.hasBid[p.pendingNil] = true
	} else {
		p.nilRejected[p.pendingNil] = true
	}
	p.hasPendingNil = false
	return nil
}

func (p *PublicState) checkPlayPhase() error {
	switch st := p.Status(); st.Phase {
	case PhaseBidding, PhaseNilConfirmation:
		return errors.New("can not play a card, bidding is not complete")
	case PhaseGameOver:
		return errors.New("can not play a card, the game is over")
	default:
		return nil
	}
}

// PlayCard handles a seat playing a card when its hand is available for
// validation. The card must be held and legal for the current trick; on
// success it is removed from the hand.
func (p *PublicState) PlayCard(s seat.Seat, c cards.Card, hand *cards.Set) error {
	if !hand.Contains(c) {
		return errors.New("can not play a card that is not in your hand")
	}
	if err := p.checkPlayPhase(); err != nil {
		return err
	}
	if !p.trick.PlayableCards(*hand, p.trumpBroken).Contains(c) {
		return fmt.Errorf("can not play %s into this trick", c)
	}
	if err := p.trick.PlayCard(s, c); err != nil {
		return err
	}
	hand.Remove(c)
	p.afterPlay()
	return nil
}

// ApplyCard handles a seat playing a card when its hand is not locally
// known, trusting that the play was already validated elsewhere. Used
// to replay other players' confirmed moves into a view.
func (p *PublicState) ApplyCard(s seat.Seat, c cards.Card) error {
	if err := p.checkPlayPhase(); err != nil {
		return err
	}
	if err := p.trick.PlayCard(s, c); err != nil {
		return err
	}
	p.afterPlay()
	return nil
}
