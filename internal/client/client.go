// Package client provides a WebSocket client that keeps a local,
// non-authoritative view of one spades game in sync with the server.
package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/protocol"
	"github.com/cardtable/spades/internal/seat"
)

const responseTimeout = 10 * time.Second

// Client connects to a table server as one player. Actions are applied
// to the local view first (the same validation the server runs), sent
// to the server, and confirmed before the next action is issued. Other
// players' confirmed events arrive as notifications and are replayed
// into the view.
type Client struct {
	serverURL string
	logger    *log.Logger
	conn      *websocket.Conn

	mu   sync.Mutex
	view *game.View

	joinedCh chan protocol.JoinedData
	respCh   chan *protocol.Message
	stopCh   chan struct{}

	// OnNotification, when set, observes every replayed notification.
	OnNotification func(game.Notification)
	// OnGameOver, when set, is called once the server announces a winner.
	OnGameOver func(protocol.GameOverData)
}

// New creates a client for the given server URL.
func New(serverURL string, logger *log.Logger) *Client {
	return &Client{
		serverURL: serverURL,
		logger:    logger,
		joinedCh:  make(chan protocol.JoinedData, 1),
		respCh:    make(chan *protocol.Message, 1),
		stopCh:    make(chan struct{}),
	}
}

// Connect establishes the WebSocket connection.
func (c *Client) Connect() error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("invalid server URL: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	c.logger.Info("Connecting to server", "url", u.String())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	c.conn = conn
	go c.readMessages()
	return nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	close(c.stopCh)
	if c.conn == nil {
		return nil
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}

// Join claims a seat at a table and initialises the local view.
func (c *Client) Join(table string, s seat.Seat, name string) error {
	msg, err := protocol.NewMessage(protocol.TypeJoin, protocol.JoinData{
		TableID: table,
		Seat:    s.Index(),
		Name:    name,
	})
	if err != nil {
		return err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return err
	}

	select {
	case joined := <-c.joinedCh:
		got, err := seat.FromIndex(joined.Seat)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.view = game.NewView(got)
		c.mu.Unlock()
		c.logger.Info("Joined table", "table", joined.TableID, "seat", got)
		return nil
	case resp := <-c.respCh:
		return errorFromMessage(resp)
	case <-time.After(responseTimeout):
		return fmt.Errorf("timed out waiting to join")
	}
}

// View runs fn with the local view under the client lock.
func (c *Client) View(fn func(*game.View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.view)
}

// AllowedActions returns what the player may do right now.
func (c *Client) AllowedActions() []game.Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view.AllowedActions()
}

// Perform validates an action locally, sends it to the server, and
// waits for the acknowledgment. The hand payload of a see-cards action
// is installed into the view before returning.
func (c *Client) Perform(action game.Action) error {
	c.mu.Lock()
	ev, err := c.view.PerformAction(action)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	if ev == nil {
		// Waiting requires no round trip.
		return nil
	}

	msg, err := messageFromEvent(*ev)
	if err != nil {
		return err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return err
	}

	select {
	case resp := <-c.respCh:
		return c.handleAck(resp)
	case <-time.After(responseTimeout):
		return fmt.Errorf("timed out waiting for server response to %s", action)
	}
}

func (c *Client) handleAck(msg *protocol.Message) error {
	switch msg.Type {
	case protocol.TypeOK:
		return nil
	case protocol.TypeHand:
		var data protocol.HandData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return fmt.Errorf("invalid hand message: %w", err)
		}
		hand, err := protocol.SetFromWire(data.Cards)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.view.HandleResponse(game.Response{Hand: &hand})
		c.mu.Unlock()
		return nil
	case protocol.TypeError:
		return errorFromMessage(msg)
	default:
		return fmt.Errorf("unexpected response type: %s", msg.Type)
	}
}

func (c *Client) readMessages() {
	for {
		var msg protocol.Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			select {
			case <-c.stopCh:
			default:
				c.logger.Error("Connection lost", "error", err)
			}
			return
		}

		switch msg.Type {
		case protocol.TypeJoined:
			var data protocol.JoinedData
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.logger.Error("Invalid joined message", "error", err)
				continue
			}
			c.joinedCh <- data

		case protocol.TypeOK, protocol.TypeHand, protocol.TypeError:
			c.respCh <- &msg

		case protocol.TypeNotification:
			c.applyNotification(&msg)

		case protocol.TypeGameOver:
			var data protocol.GameOverData
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.logger.Error("Invalid game_over message", "error", err)
				continue
			}
			c.logger.Info("Game over", "winningTeam", data.WinningTeam,
				"scores", fmt.Sprintf("%d/%d", data.Scores[0], data.Scores[1]))
			if c.OnGameOver != nil {
				c.OnGameOver(data)
			}

		default:
			c.logger.Warn("Unexpected message type", "type", msg.Type)
		}
	}
}

func (c *Client) applyNotification(msg *protocol.Message) {
	var data protocol.NotificationData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		c.logger.Error("Invalid notification", "error", err)
		return
	}
	s, err := seat.FromIndex(data.Seat)
	if err != nil {
		c.logger.Error("Invalid notification seat", "error", err)
		return
	}
	ev, err := protocol.EventFromWire(data.Event)
	if err != nil {
		c.logger.Error("Invalid notification event", "error", err)
		return
	}

	n := game.Notification{Seat: s, Event: ev}
	c.mu.Lock()
	err = c.view.HandleNotification(n)
	c.mu.Unlock()
	if err != nil {
		c.logger.Error("Failed to replay notification", "seat", s, "event", ev, "error", err)
		return
	}
	c.logger.Debug("Applied notification", "seat", s, "event", ev)
	if c.OnNotification != nil {
		c.OnNotification(n)
	}
}

func messageFromEvent(ev game.Event) (*protocol.Message, error) {
	switch ev.Kind {
	case game.EventSeeCards:
		return protocol.NewMessage(protocol.TypeSeeCards, nil)
	case game.EventMakeBid:
		return protocol.NewMessage(protocol.TypeMakeBid, protocol.MakeBidData{
			Bid: protocol.BidToWire(ev.Bid),
		})
	case game.EventConfirmNil:
		return protocol.NewMessage(protocol.TypeConfirmNil, protocol.ConfirmNilData{
			Approve: ev.Approve,
		})
	case game.EventPlayCard:
		return protocol.NewMessage(protocol.TypePlayCard, protocol.PlayCardData{
			Card: ev.Card.String(),
		})
	default:
		return nil, fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

func errorFromMessage(msg *protocol.Message) error {
	if msg.Type != protocol.TypeError {
		return fmt.Errorf("unexpected response type: %s", msg.Type)
	}
	var data protocol.ErrorData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		return fmt.Errorf("invalid error message: %w", err)
	}
	return fmt.Errorf("server rejected action: %s", data.Message)
}
