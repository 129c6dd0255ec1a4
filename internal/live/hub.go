// Package live fans match status changes out to websocket subscribers, so
// stream viewers learn immediately when a match goes live.
package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ashevelyov/matchboard/internal/match/model"
)

// Event is the message pushed to subscribers when a match is flagged live.
type Event struct {
	Type      string `json:"type"`
	MatchID   string `json:"matchId"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	StreamURL string `json:"streamUrl,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Hub tracks websocket subscribers and broadcasts live events to them.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
	logger   *zap.SugaredLogger
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub(logger *zap.SugaredLogger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// PublishLive broadcasts a live event for the match to every subscriber.
// Slow subscribers are dropped rather than blocking the broadcast.
func (h *Hub) PublishLive(match model.Match) {
	event := Event{
		Type:      "match_live",
		MatchID:   match.ID,
		HomeTeam:  match.HomeTeam.Name,
		AwayTeam:  match.AwayTeam.Name,
		StreamURL: match.StreamURL,
		Timestamp: time.Now().UnixMilli(),
	}

	raw, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorw("failed to marshal live event", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- raw:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// SubscriberCount returns the number of connected subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Handle upgrades GET requests to websocket subscriptions.
func (h *Hub) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go h.writeLoop(cl)
	go h.readLoop(cl)
}

func (h *Hub) writeLoop(cl *client) {
	for raw := range cl.send {
		if err := cl.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			break
		}
	}
	cl.conn.Close()
}

// readLoop drains the connection so close frames are processed, and
// unregisters the client when the peer goes away.
func (h *Hub) readLoop(cl *client) {
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
	cl.conn.Close()
}
