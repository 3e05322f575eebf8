package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/cardtable/spades/internal/cards"
	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/protocol"
	"github.com/cardtable/spades/internal/seat"
)

// Connection wraps one client WebSocket. It reads messages, resolves
// them into game events, and hands them to the table, which serializes
// actual game mutation.
type Connection struct {
	conn    *websocket.Conn
	logger  zerolog.Logger
	server  *Server
	writeMu sync.Mutex

	table *Table
	seat  seat.Seat
}

func newConnection(conn *websocket.Conn, server *Server, logger zerolog.Logger) *Connection {
	return &Connection{
		conn:   conn,
		server: server,
		logger: logger.With().Str("component", "connection").Str("remote", conn.RemoteAddr().String()).Logger(),
	}
}

// Send writes one message to the client. Safe for concurrent use.
func (c *Connection) Send(msg *protocol.Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(msg)
}

// readPump processes inbound messages until the connection drops.
func (c *Connection) readPump() {
	defer c.close()

	for {
		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Error().Err(err).Msg("Read failed")
			}
			return
		}
		if err := c.handleMessage(&msg); err != nil {
			c.sendError(err)
		}
	}
}

func (c *Connection) close() {
	if c.table != nil {
		c.table.Leave(c.seat)
		c.table = nil
	}
	_ = c.conn.Close()
}

func (c *Connection) sendError(err error) {
	msg := mustMessage(protocol.TypeError, protocol.ErrorData{Message: err.Error()})
	if sendErr := c.Send(msg); sendErr != nil {
		c.logger.Error().Err(sendErr).Msg("Failed to send error")
	}
}

func (c *Connection) handleMessage(msg *protocol.Message) error {
	if msg.Type == protocol.TypeJoin {
		return c.handleJoin(msg.Data)
	}
	if c.table == nil {
		return fmt.Errorf("join a table before sending %s", msg.Type)
	}

	ev, err := eventFromMessage(msg)
	if err != nil {
		return err
	}
	c.table.HandleEvent(c.seat, ev)
	return nil
}

func (c *Connection) handleJoin(data json.RawMessage) error {
	if c.table != nil {
		return fmt.Errorf("already joined table %s", c.table.Name)
	}

	var join protocol.JoinData
	if err := json.Unmarshal(data, &join); err != nil {
		return fmt.Errorf("invalid join message: %w", err)
	}
	s, err := seat.FromIndex(join.Seat)
	if err != nil {
		return err
	}
	table, ok := c.server.Table(join.TableID)
	if !ok {
		return fmt.Errorf("no such table: %s", join.TableID)
	}
	if err := table.Join(s, join.Name, c); err != nil {
		return err
	}

	c.table = table
	c.seat = s
	c.logger = c.logger.With().Str("table", table.Name).Stringer("seat", s).Logger()
	return c.Send(mustMessage(protocol.TypeJoined, protocol.JoinedData{
		TableID: table.ID,
		Seat:    s.Index(),
	}))
}

// eventFromMessage resolves an inbound action message to a game event.
func eventFromMessage(msg *protocol.Message) (game.Event, error) {
	switch msg.Type {
	case protocol.TypeSeeCards:
		return game.SeeCardsEvent(), nil

	case protocol.TypeMakeBid:
		var data protocol.MakeBidData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.Event{}, fmt.Errorf("invalid make_bid message: %w", err)
		}
		bid, err := protocol.BidFromWire(data.Bid)
		if err != nil {
			return game.Event{}, err
		}
		return game.MakeBidEvent(bid), nil

	case protocol.TypeConfirmNil:
		var data protocol.ConfirmNilData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.Event{}, fmt.Errorf("invalid confirm_nil message: %w", err)
		}
		return game.ConfirmNilEvent(data.Approve), nil

	case protocol.TypePlayCard:
		var data protocol.PlayCardData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return game.Event{}, fmt.Errorf("invalid play_card message: %w", err)
		}
		c, err := cards.Parse(data.Card)
		if err != nil {
			return game.Event{}, err
		}
		return game.PlayCardEvent(c), nil

	default:
		return game.Event{}, fmt.Errorf("unexpected message type: %s", msg.Type)
	}
}
