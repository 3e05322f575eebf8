package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/protocol"
	"github.com/cardtable/spades/internal/scoring"
	"github.com/cardtable/spades/internal/seat"
)

// sender delivers a message to one connected player. Connections
// implement it; tests substitute in-memory fakes.
type sender interface {
	Send(*protocol.Message) error
}

// Table owns one authoritative game and the four seats around it. The
// game core does no locking, so every mutating call is serialized
// behind the table mutex: one player action fully applies or fully
// fails before the next is looked at.
type Table struct {
	ID   string
	Name string

	logger zerolog.Logger
	mu     sync.Mutex
	state  *game.State
	seats  [seat.NumSeats]sender
	names  [seat.NumSeats]string
}

// NewTable creates a table with a fresh game.
func NewTable(name string, dealer game.Dealer, logger zerolog.Logger) *Table {
	id := uuid.NewString()
	return &Table{
		ID:     id,
		Name:   name,
		logger: logger.With().Str("component", "table").Str("table", name).Logger(),
		state:  game.NewState(dealer),
	}
}

// Join claims a seat for a connected player.
func (t *Table) Join(s seat.Seat, name string, conn sender) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seats[s] != nil {
		return fmt.Errorf("%s is already taken", s)
	}
	t.seats[s] = conn
	t.names[s] = name
	t.logger.Info().Stringer("seat", s).Str("player", name).Msg("Player joined")
	return nil
}

// Leave releases a seat, e.g. when its connection drops.
func (t *Table) Leave(s seat.Seat) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seats[s] == nil {
		return
	}
	t.logger.Info().Stringer("seat", s).Str("player", t.names[s]).Msg("Player left")
	t.seats[s] = nil
	t.names[s] = ""
}

// HandleEvent applies one player intent to the game. Errors go back to
// the acting seat only; confirmed events are broadcast to the other
// seats, and the see-cards payload goes back to the actor.
func (t *Table) HandleEvent(actor seat.Seat, ev game.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	resp, err := t.state.HandleEvent(actor, ev)
	if err != nil {
		t.logger.Debug().Stringer("seat", actor).Stringer("event", ev).Err(err).Msg("Rejected action")
		t.sendTo(actor, mustMessage(protocol.TypeError, protocol.ErrorData{Message: err.Error()}))
		return
	}
	t.logger.Info().Stringer("seat", actor).Stringer("event", ev).Msg("Applied action")

	if resp.Hand != nil {
		t.sendTo(actor, mustMessage(protocol.TypeHand, protocol.HandData{
			Cards: protocol.SetToWire(*resp.Hand),
		}))
	} else {
		t.sendTo(actor, mustMessage(protocol.TypeOK, nil))
	}

	if resp.Notification != nil {
		notif := mustMessage(protocol.TypeNotification, protocol.NotificationData{
			Seat:  resp.Notification.Seat.Index(),
			Event: protocol.EventToWire(resp.Notification.Event),
		})
		for _, s := range seat.One.Order() {
			if s != actor {
				t.sendTo(s, notif)
			}
		}
	}

	if t.state.GameOver() {
		t.broadcastGameOver()
	}
}

func (t *Table) broadcastGameOver() {
	scores := t.state.Public().Scores()
	winner, _ := scoring.WinningTeam(scores)
	over := mustMessage(protocol.TypeGameOver, protocol.GameOverData{
		WinningTeam: winner,
		Scores:      [2]int{scores[0].Display(), scores[1].Display()},
	})
	t.logger.Info().Int("winning_team", winner).Msg("Game over")
	for _, s := range seat.One.Order() {
		t.sendTo(s, over)
	}
}

func (t *Table) sendTo(s seat.Seat, msg *protocol.Message) {
	conn := t.seats[s]
	if conn == nil {
		return
	}
	if err := conn.Send(msg); err != nil {
		t.logger.Error().Stringer("seat", s).Err(err).Msg("Failed to send message")
	}
}

// mustMessage builds an envelope for payloads the server constructed
// itself; marshaling them can not fail.
func mustMessage(messageType protocol.MessageType, data any) *protocol.Message {
	msg, err := protocol.NewMessage(messageType, data)
	if err != nil {
		panic(err)
	}
	return msg
}
