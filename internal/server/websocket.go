package server

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const localGame = "game"

// WebSocketUpgrade rejects plain HTTP requests to websocket routes and
// resolves the game before the upgrade, so unknown ids get a 404.
func WebSocketUpgrade(manager *GameManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		g, err := manager.Get(c.Params("id"))
		if err != nil {
			return errorResponse(c, err)
		}
		c.Locals(localGame, g)
		return c.Next()
	}
}

// WebSocketController streams game states and accepts moves over a
// websocket.
type WebSocketController struct {
	manager *GameManager
}

// NewWebSocketController creates a controller over the manager.
func NewWebSocketController(manager *GameManager) *WebSocketController {
	return &WebSocketController{manager: manager}
}

// HandleConnection subscribes the connection to its game and plays the
// moves it sends until it closes.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	g, ok := c.Locals(localGame).(*Game)
	if !ok {
		c.Close() //nolint:errcheck,gosec // G104: nothing to report to
		return
	}
	logf := wsc.manager.cfg.Logf

	if err := g.Subscribe(c); err != nil {
		logf(1, "game %s: subscribe: %v\n", g.ID, err)
		c.Close() //nolint:errcheck,gosec // G104: nothing to report to
		return
	}
	defer g.Unsubscribe(c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logf(2, "game %s: read: %v\n", g.ID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(g, c, fmt.Errorf("parse message: %w", err))
			continue
		}
		if err := wsc.handleMessage(g, msg); err != nil {
			wsc.sendError(g, c, err)
		}
	}
}

func (wsc *WebSocketController) handleMessage(g *Game, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var req MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("parse move: %w", err)
		}
		_, err := g.Move(req.Move)
		return err
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// sendError reports an error to one client. Writes share the game's
// connection lock with broadcasts.
func (wsc *WebSocketController) sendError(g *Game, c *websocket.Conn, cause error) {
	payload, err := json.Marshal(ErrorPayload{Error: cause.Error()})
	if err != nil {
		return
	}

	g.connMu.Lock()
	defer g.connMu.Unlock()
	if err := c.WriteJSON(Message{Type: MessageTypeError, Payload: payload}); err != nil {
		wsc.manager.cfg.Logf(2, "game %s: write: %v\n", g.ID, err)
	}
}
