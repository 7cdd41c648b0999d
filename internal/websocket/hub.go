// Package websocket pushes audit events to connected admin consoles
// as they are recorded, replacing a polling loop on the query API.
package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
)

// Hub fans audit events out to subscribed clients. It implements
// audit.Recorder so it can be wired next to the durable log; delivery
// is best-effort and a slow client is dropped rather than ever
// blocking an append.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	stopOnce   sync.Once
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if h.clients[client] {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; cut it loose.
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Record satisfies audit.Recorder. It never blocks the caller: when
// the broadcast buffer is full the event is simply not streamed (the
// durable log is the source of truth).
func (h *Hub) Record(e audit.Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- b:
	case <-h.done:
	default:
		log.Printf("ERROR [websocket.Hub] broadcast buffer full, event not streamed")
	}
	return nil
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Stop shuts the hub down and waits for Run to exit.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// ClientCount is used by tests to observe subscription state.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
