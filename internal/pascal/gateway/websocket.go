package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/msto63/pascal/internal/pascal/service"
	"github.com/msto63/pascal/pkg/core/logging"
)

const (
	wsReadTimeout  = 120 * time.Second
	wsWriteTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is a client message
type WSMessage struct {
	Type    string          `json:"type"`    // "evaluate", "ping"
	Payload json.RawMessage `json:"payload"` // message-specific payload
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "pong", "error"
	Payload interface{} `json:"payload"` // response-specific payload
}

// WSErrorPayload is the payload of an "error" message
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketHandler evaluates calculations sent over a WebSocket
type WebSocketHandler struct {
	evaluator Evaluator
	logger    *logging.Logger
}

// NewWebSocketHandler creates a WebSocket handler
func NewWebSocketHandler(evaluator Evaluator) *WebSocketHandler {
	return &WebSocketHandler{
		evaluator: evaluator,
		logger:    logging.New("pascal-websocket"),
	}
}

// ServeHTTP upgrades the connection and serves it until the client leaves
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(conn)
}

// wsConn serialises writes; gorilla allows one concurrent writer
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) send(resp WSResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return c.WriteJSON(resp)
}

func (h *WebSocketHandler) handleConnection(raw *websocket.Conn) {
	conn := &wsConn{Conn: raw}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h.logger.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Error("WebSocket read error", "error", err)
			} else {
				h.logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong"})

		case "evaluate":
			var req service.EvaluateRequest
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				h.sendError(conn, "invalid_payload", "Invalid evaluate payload")
				continue
			}
			resp, err := h.evaluator.Evaluate(ctx, &req)
			if err != nil {
				h.sendError(conn, "evaluation_failed", err.Error())
				continue
			}
			h.sendResponse(conn, WSResponse{Type: "result", Payload: resp})

		default:
			h.sendError(conn, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *WebSocketHandler) sendResponse(conn *wsConn, resp WSResponse) {
	if err := conn.send(resp); err != nil {
		h.logger.Error("Failed to send WebSocket message", "error", err)
	}
}

func (h *WebSocketHandler) sendError(conn *wsConn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type:    "error",
		Payload: WSErrorPayload{Code: code, Message: message},
	})
}
