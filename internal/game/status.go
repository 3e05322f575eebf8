package game

import (
	"fmt"

	"github.com/cardtable/spades/internal/seat"
)

// Phase identifies what the game is waiting for.
type Phase int

const (
	// PhaseBidding waits for a player to bid.
	PhaseBidding Phase = iota
	// PhaseNilConfirmation waits for a partner to confirm a nil bid.
	PhaseNilConfirmation
	// PhasePlaying waits for a player to play a card.
	PhasePlaying
	// PhaseGameOver means a team has won.
	PhaseGameOver
)

// Status is the game's derived state: the phase and, for every phase
// but game over, the seat being waited on. Status values are comparable.
type Status struct {
	Phase Phase
	Seat  seat.Seat
}

// WaitingForBid builds a bidding status.
func WaitingForBid(s seat.Seat) Status {
	return Status{Phase: PhaseBidding, Seat: s}
}

// WaitingForNilConfirmation builds a nil-confirmation status.
func WaitingForNilConfirmation(s seat.Seat) Status {
	return Status{Phase: PhaseNilConfirmation, Seat: s}
}

// WaitingForPlay builds a card-play status.
func WaitingForPlay(s seat.Seat) Status {
	return Status{Phase: PhasePlaying, Seat: s}
}

// GameOver builds the terminal status.
func GameOver() Status {
	return Status{Phase: PhaseGameOver}
}

// String returns a human-readable status.
func (st Status) String() string {
	switch st.Phase {
	case PhaseBidding:
		return fmt.Sprintf("waiting for %s to bid", st.Seat)
	case PhaseNilConfirmation:
		return fmt.Sprintf("waiting for %s to confirm nil", st.Seat)
	case PhasePlaying:
		return fmt.Sprintf("waiting for %s to play", st.Seat)
	case PhaseGameOver:
		return "game over"
	default:
		return fmt.Sprintf("status(%d)", int(st.Phase))
	}
}
