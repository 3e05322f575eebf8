// Package protocol defines the JSON messages exchanged between the
// table server and its clients. Cards travel as two-character strings
// ("SA", "HX"); bids as a kind plus an optional trick count.
package protocol

import (
	"encoding/json"
	"time"
)

// MessageType identifies the type of a message.
type MessageType string

const (
	// Client -> Server
	TypeJoin       MessageType = "join"
	TypeSeeCards   MessageType = "see_cards"
	TypeMakeBid    MessageType = "make_bid"
	TypeConfirmNil MessageType = "confirm_nil"
	TypePlayCard   MessageType = "play_card"

	// Server -> Client
	TypeJoined       MessageType = "joined"
	TypeOK           MessageType = "ok"
	TypeHand         MessageType = "hand"
	TypeError        MessageType = "error"
	TypeNotification MessageType = "notification"
	TypeGameOver     MessageType = "game_over"
)

// Message is the base envelope for every WebSocket message.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage wraps a payload in an envelope with the current timestamp.
func NewMessage(messageType MessageType, data any) (*Message, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return &Message{
		Type:      messageType,
		Data:      raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Client -> Server payloads

// JoinData claims a seat at a table.
type JoinData struct {
	TableID string `json:"tableId"`
	Seat    int    `json:"seat"`
	Name    string `json:"name,omitempty"`
}

// BidData is a bid on the wire.
type BidData struct {
	Kind  string `json:"kind"` // take, nil, blind_nil
	Count int    `json:"count,omitempty"`
}

// MakeBidData carries a bid.
type MakeBidData struct {
	Bid BidData `json:"bid"`
}

// ConfirmNilData approves or rejects a partner's pending nil bid.
type ConfirmNilData struct {
	Approve bool `json:"approve"`
}

// PlayCardData plays one card.
type PlayCardData struct {
	Card string `json:"card"`
}

// Server -> Client payloads

// JoinedData confirms a seat claim.
type JoinedData struct {
	TableID string `json:"tableId"`
	Seat    int    `json:"seat"`
}

// HandData is the reply to a see-cards request.
type HandData struct {
	Cards []string `json:"cards"`
}

// ErrorData reports a rejected action back to the sender only.
type ErrorData struct {
	Message string `json:"message"`
}

// EventData is a confirmed player event on the wire.
type EventData struct {
	Action  string   `json:"action"` // see_cards, make_bid, confirm_nil, play_card
	Bid     *BidData `json:"bid,omitempty"`
	Card    string   `json:"card,omitempty"`
	Approve bool     `json:"approve,omitempty"`
}

// NotificationData tells the other players what someone just did.
type NotificationData struct {
	Seat  int       `json:"seat"`
	Event EventData `json:"event"`
}

// GameOverData announces the winning team and the final display scores.
type GameOverData struct {
	WinningTeam int    `json:"winningTeam"`
	Scores      [2]int `json:"scores"`
}
