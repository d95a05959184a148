package api

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/EnamSon/temporal-event-predictor/internal/contracts"
	"github.com/EnamSon/temporal-event-predictor/pkg/logger"
)

// Hub broadcasts sweep decisions to connected websocket clients
// ⭐ SSOT: 판정 결과 실시간 스트림은 이 허브에서만
// sweep.Broadcaster 구현체
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewHub creates a new streaming hub
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: log,
	}
}

// HandleStream upgrades the connection and keeps it registered until closed
// GET /api/sweep/stream
func (h *Hub) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upgrade websocket connection")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.WithField("clients", clientCount).Info("Stream client connected")

	// Drain reads to detect close; 클라이언트가 보내는 데이터는 무시
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish sends a decision to every connected client.
// 전송 실패한 클라이언트는 제거됨
func (h *Hub) Publish(decision contracts.Decision) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(decision); err != nil {
			h.logger.WithError(err).Debug("Dropping unreachable stream client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		conn.Close()
		delete(h.clients, conn)
	}
	h.mu.Unlock()

	h.logger.Debug("Stream client disconnected")
}
