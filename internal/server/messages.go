package server

import "encoding/json"

// MessageType names the kinds of websocket message.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the websocket envelope in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MoveRequest is the body of a move, over HTTP or websocket.
type MoveRequest struct {
	Move string `json:"move"`
}

// CreateRequest is the body of a new game request. An empty Board starts
// from the fair 12x12 position; a zero Seed picks one from the clock.
type CreateRequest struct {
	Board      string `json:"board"`
	VsComputer *bool  `json:"vsComputer,omitempty"`
	Seed       int64  `json:"seed"`
}

// ErrorPayload is the payload of an error message.
type ErrorPayload struct {
	Error string `json:"error"`
}
