package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// Hub fans out ledger events to every connected websocket client.
type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte

	clients map[*websocket.Conn]bool
	logger  *zap.Logger
	mutex   sync.Mutex
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 64),
		clients:    make(map[*websocket.Conn]bool),
		logger:     logger,
	}
}

// Publish queues a message for broadcast. Messages are dropped rather
// than blocking the caller when the queue is full or no loop is running.
func (h *Hub) Publish(message []byte) {
	select {
	case h.Broadcast <- message:
	default:
		h.logger.Debug("ws broadcast dropped, queue full")
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			h.logger.Info("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
