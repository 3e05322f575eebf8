package game

import (
	"fmt"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/seat"
)

// State is the authoritative game state held by the server. It knows
// every hand, so it must never be sent to clients; they get Views.
//
// State provides no locking. A server embedding it must serialize all
// calls against one instance.
type State struct {
	public PublicState
	dealer Dealer
	hands  [seat.NumSeats]cards.Set
}

// NewState creates a fresh game that uses the given dealer for the
// initial deal and every round after it.
func NewState(dealer Dealer) *State {
	return &State{
		public: NewPublicState(),
		dealer: dealer,
		hands:  dealer.Deal(),
	}
}

// Public returns the client-visible portion of the state.
func (s *State) Public() *PublicState {
	return &s.public
}

// HandleEvent validates and applies one player intent. On success the
// returned response carries a notification to broadcast to the other
// players, plus the acting player's hand for a see-cards event. On
// failure the state is unchanged and the error should go back to the
// acting player only.
func (s *State) HandleEvent(actor seat.Seat, ev Event) (Response, error) {
	switch ev.Kind {
	case EventSeeCards:
		s.public.SeeCards(actor)
		hand := s.hands[actor]
		return Response{
			Notification: &Notification{Seat: actor, Event: ev},
			Hand:         &hand,
		}, nil

	case EventMakeBid:
		if err := s.public.MakeBid(actor, ev.Bid); err != nil {
			return Response{}, err
		}
		return Response{Notification: &Notification{Seat: actor, Event: ev}}, nil

	case EventConfirmNil:
		if err := s.public.ConfirmNil(actor, ev.Approve); err != nil {
			return Response{}, err
		}
		return Response{Notification: &Notification{Seat: actor, Event: ev}}, nil

	case EventPlayCard:
		if err := s.public.PlayCard(actor, ev.Card, &s.hands[actor]); err != nil {
			return Response{}, err
		}
		if s.public.Status().Phase == PhaseBidding {
			// The play closed out a round; deal the next one.
			s.hands = s.dealer.Deal()
		}
		return Response{Notification: &Notification{Seat: actor, Event: ev}}, nil

	default:
		return Response{}, fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

// GameOver reports whether a team has won.
func (s *State) GameOver() bool {
	return s.public.Status() == GameOver()
}

// View builds a player's restricted view of the game. The hand is
// included only once the player has asked to see it.
func (s *State) View(player seat.Seat) View {
	return newView(player, &s.public, s.hands[player])
}
