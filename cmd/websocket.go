package main

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"barterBack/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsClient struct {
	id     string
	userID int
	conn   *websocket.Conn
}

type exchangeNotification struct {
	userID int
	event  models.ExchangeEvent
}

// WebSocketManager fans exchange status events out to the connected
// counterparties. All client map access happens in Run.
type WebSocketManager struct {
	clients    map[string]*wsClient
	register   chan *wsClient
	unregister chan string
	events     chan exchangeNotification
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[string]*wsClient),
		register:   make(chan *wsClient),
		unregister: make(chan string),
		events:     make(chan exchangeNotification, 64),
	}
}

func (m *WebSocketManager) Run() {
	for {
		select {
		case client := <-m.register:
			m.clients[client.id] = client
		case id := <-m.unregister:
			if client, ok := m.clients[id]; ok {
				client.conn.Close()
				delete(m.clients, id)
			}
		case n := <-m.events:
			for id, client := range m.clients {
				if client.userID != n.userID {
					continue
				}
				if err := client.conn.WriteJSON(n.event); err != nil {
					log.Printf("websocket write failed for client %s: %v", id, err)
					client.conn.Close()
					delete(m.clients, id)
				}
			}
		}
	}
}

// NotifyExchange queues an event for the given user. Drops the event
// when the buffer is full rather than blocking the caller.
func (m *WebSocketManager) NotifyExchange(userID int, event models.ExchangeEvent) {
	select {
	case m.events <- exchangeNotification{userID: userID, event: event}:
	default:
		log.Printf("websocket event buffer full, dropping event for user %d", userID)
	}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &wsClient{
		id:     uuid.New().String(),
		userID: userID,
		conn:   conn,
	}
	app.wsManager.register <- client

	go func() {
		defer func() {
			app.wsManager.unregister <- client.id
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
