package ws

import (
	"log"
	"net/http"

	"bufood/entity"
	"bufood/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans events out to connected clients. Each user gets a room; order
// updates and chat messages land in the rooms of everyone involved. Delivery
// is best-effort: a dead connection is dropped, nothing is retried.
type Hub struct {
	// clients is owned by the Run goroutine; everyone else goes through the
	// channels.
	clients    map[string]map[*websocket.Conn]bool // room -> set of conns
	broadcast  chan outbound
	register   chan subscription
	unregister chan subscription
}

type subscription struct {
	Conn *websocket.Conn
	Room string
}

type outbound struct {
	Room    string
	Payload any
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan outbound, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run serializes all room bookkeeping and writes through one goroutine.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.Room] == nil {
				h.clients[sub.Room] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.Room][sub.Conn] = true

		case sub := <-h.unregister:
			if conns := h.clients[sub.Room]; conns != nil {
				delete(conns, sub.Conn)
				if len(conns) == 0 {
					delete(h.clients, sub.Room)
				}
			}
			sub.Conn.Close()

		case msg := <-h.broadcast:
			for conn := range h.clients[msg.Room] {
				if err := conn.WriteJSON(msg.Payload); err != nil {
					conn.Close()
					delete(h.clients[msg.Room], conn)
				}
			}
		}
	}
}

func (h *Hub) publish(room string, payload any) {
	select {
	case h.broadcast <- outbound{Room: room, Payload: payload}:
	default:
		// Drop rather than block a request handler on a slow hub.
		log.Println("ws: broadcast buffer full, dropping event for room", room)
	}
}

func userRoom(userID string) string { return "user:" + userID }

// OrderUpdated implements services.OrderEvents.
func (h *Hub) OrderUpdated(o *entity.Order) {
	payload := gin.H{"type": "order_update", "order": o}
	h.publish(userRoom(o.CustomerID), payload)
	h.publish(userRoom(o.SellerID), payload)
}

// MessageSent pushes a chat message to both sides of the conversation.
func (h *Hub) MessageSent(conv *entity.Conversation, m *entity.Message) {
	payload := gin.H{"type": "chat_message", "message": m}
	h.publish(userRoom(conv.CustomerID), payload)
	h.publish(userRoom(conv.SellerID), payload)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // dev only
}

// Serve upgrades an authenticated request and parks it in the user's room
// until the peer goes away.
func (h *Hub) Serve(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("ws: upgrade failed:", err)
		return
	}

	sub := subscription{Conn: conn, Room: userRoom(userID)}
	h.register <- sub

	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
