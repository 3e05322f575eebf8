package game

import (
	"errors"
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/scoring"
	"github.com/cardtable/spades/internal/seat"
)

// ActionKind discriminates the actions a player can take on their view.
type ActionKind int

const (
	// ActionWait does nothing; another player is up.
	ActionWait ActionKind = iota
	// ActionSeeCards requests the player's hand from the server.
	ActionSeeCards
	// ActionAllowNil approves the partner's pending nil bid.
	ActionAllowNil
	// ActionRejectNil rejects the partner's pending nil bid.
	ActionRejectNil
	// ActionMakeBid makes a bid.
	ActionMakeBid
	// ActionPlayCard plays a card.
	ActionPlayCard
)

// Action is one choice available to a player. Actions are comparable
// values; only the field matching Kind is meaningful.
type Action struct {
	Kind ActionKind
	Bid  scoring.Bid
	Card cards.Card
}

// Wait builds the do-nothing action.
func Wait() Action {
	return Action{Kind: ActionWait}
}

// SeeCards builds the see-cards action.
func SeeCards() Action {
	return Action{Kind: ActionSeeCards}
}

// AllowNil builds the approve-nil action.
func AllowNil() Action {
	return Action{Kind: ActionAllowNil}
}

// RejectNil builds the reject-nil action.
func RejectNil() Action {
	return Action{Kind: ActionRejectNil}
}

// MakeBid builds a bid action.
func MakeBid(b scoring.Bid) Action {
	return Action{Kind: ActionMakeBid, Bid: b}
}

// PlayCard builds a card-play action.
func PlayCard(c cards.Card) Action {
	return Action{Kind: ActionPlayCard, Card: c}
}

// String returns a human-readable action.
func (a Action) String() string {
	switch a.Kind {
	case ActionWait:
		return "wait"
	case ActionSeeCards:
		return "see cards"
	case ActionAllowNil:
		return "allow nil"
	case ActionRejectNil:
		return "reject nil"
	case ActionMakeBid:
		return fmt.Sprintf("bid %s", a.Bid)
	case ActionPlayCard:
		return fmt.Sprintf("play %s", a.Card)
	default:
		return fmt.Sprintf("action(%d)", int(a.Kind))
	}
}

// View is one player's non-authoritative copy of the game. It holds
// only what that player is allowed to know: the public state plus their
// own hand once the server has revealed it.
type View struct {
	player  seat.Seat
	public  PublicState
	hand    cards.Set
	hasHand bool
}

// NewView creates a view of a brand-new game for a player who has not
// yet seen their cards.
func NewView(player seat.Seat) *View {
	return &View{player: player, public: NewPublicState()}
}

// newView snapshots the server's public state for one player. Called
// from State.View.
func newView(player seat.Seat, public *PublicState, hand cards.Set) View {
	v := View{player: player, public: public.Clone()}
	if public.CanSeeCards(player) {
		v.hand = hand
		v.hasHand = true
	}
	return v
}

// Player returns the seat this view belongs to.
func (v *View) Player() seat.Seat {
	return v.player
}

// Public returns the view's copy of the public state.
func (v *View) Public() *PublicState {
	return &v.public
}

// Hand returns the player's hand. It reports false until the server has
// revealed it, and again after a round ends.
func (v *View) Hand() (cards.Set, bool) {
	return v.hand, v.hasHand
}

// afterCardPlayed drops the cached hand when a round boundary reset the
// seen-cards flag.
func (v *View) afterCardPlayed() {
	if !v.public.CanSeeCards(v.player) {
		v.hasHand = false
		v.hand.Clear()
	}
}

// AllowedActions enumerates every action this player may take right
// now. An empty result means the game is over.
func (v *View) AllowedActions() []Action {
	if v.public.Status() == GameOver() {
		return nil
	}

	var actions []Action
	if !v.public.CanSeeCards(v.player) {
		actions = append(actions, SeeCards())
	}

	partnerBid := v.partnerBid()
	switch st := v.public.Status(); st.Phase {
	case PhaseBidding:
		if st.Seat != v.player {
			actions = append(actions, Wait())
			break
		}
		if !v.public.CanSeeCards(v.player) {
			if scoring.BlindNil.CompatibilityError(partnerBid) == nil {
				actions = append(actions, MakeBid(scoring.BlindNil))
			}
			break
		}
		for _, bid := range scoring.AllBids() {
			if bid == scoring.BlindNil {
				continue
			}
			if bid == scoring.Nil && v.public.NilRejected(v.player) {
				continue
			}
			if bid.CompatibilityError(partnerBid) != nil {
				continue
			}
			actions = append(actions, MakeBid(bid))
		}

	case PhaseNilConfirmation:
		if st.Seat != v.player {
			actions = append(actions, Wait())
			break
		}
		actions = append(actions, AllowNil(), RejectNil())

	case PhasePlaying:
		if st.Seat != v.player {
			actions = append(actions, Wait())
			break
		}
		playable := v.public.Trick().PlayableCards(v.hand, v.public.TrumpBroken())
		for _, c := range playable.Cards() {
			actions = append(actions, PlayCard(c))
		}
	}
	return actions
}

func (v *View) partnerBid() *scoring.Bid {
	if b, ok := v.public.Bid(v.player.Partner()); ok {
		return &b
	}
	return nil
}

// PerformAction applies an action to the view and returns the event to
// send to the server, or nil for actions with nothing to send. The view
// is unchanged when an error is returned.
func (v *View) PerformAction(action Action) (*Event, error) {
	switch action.Kind {
	case ActionWait:
		st := v.public.Status()
		if st.Phase == PhaseGameOver {
			return nil, errors.New("can not wait, the game is over")
		}
		if st.Seat == v.player {
			return nil, errors.New("can not wait, the game is waiting on you")
		}
		return nil, nil

	case ActionSeeCards:
		if v.public.Status() == GameOver() {
			return nil, errors.New("can not see your cards, the game is over")
		}
		if v.public.CanSeeCards(v.player) {
			return nil, errors.New("you can already see your cards")
		}
		ev := SeeCardsEvent()
		return &ev, nil

	case ActionAllowNil, ActionRejectNil:
		approve := action.Kind == ActionAllowNil
		if err := v.public.ConfirmNil(v.player, approve); err != nil {
			return nil, err
		}
		ev := ConfirmNilEvent(approve)
		return &ev, nil

	case ActionMakeBid:
		if err := v.public.MakeBid(v.player, action.Bid); err != nil {
			return nil, err
		}
		ev := MakeBidEvent(action.Bid)
		return &ev, nil

	case ActionPlayCard:
		if !v.hasHand {
			return nil, errors.New("can not play a card without seeing your hand")
		}
		if err := v.public.PlayCard(v.player, action.Card, &v.hand); err != nil {
			return nil, err
		}
		v.afterCardPlayed()
		ev := PlayCardEvent(action.Card)
		return &ev, nil

	default:
		return nil, fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

// HandleResponse installs the hand returned by the server for a
// see-cards event.
func (v *View) HandleResponse(resp Response) {
	if resp.Hand != nil {
		v.hand = *resp.Hand
		v.hasHand = true
		v.public.SeeCards(v.player)
	}
}

// HandleNotification replays another player's confirmed event into the
// view. Card plays use the unchecked path since their hand is unknown
// here; the other events revalidate normally. A notification about this
// view's own player is a usage error.
func (v *View) HandleNotification(n Notification) error {
	if n.Seat == v.player {
		return errors.New("can not apply a notification about your own actions")
	}
	switch n.Event.Kind {
	case EventSeeCards:
		v.public.SeeCards(n.Seat)
		return nil
	case EventMakeBid:
		return v.public.MakeBid(n.Seat, n.Event.Bid)
	case EventConfirmNil:
		return v.public.ConfirmNil(n.Seat, n.Event.Approve)
	case EventPlayCard:
		if err := v.public.ApplyCard(n.Seat, n.Event.Card); err != nil {
			return err
		}
		v.afterCardPlayed()
		return nil
	default:
		return fmt.Errorf("unknown event kind %d", n.Event.Kind)
	}
}
