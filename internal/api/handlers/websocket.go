package handlers

import (
	"log"
	"net/http"

	ws "github.com/gorilla/websocket"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/api/middleware"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// WebSocketHandler upgrades admin consoles onto the live audit stream.
type WebSocketHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
}

func NewWebSocketHandler(hub *websocket.Hub, authService *service.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
	}
}

// Handle authenticates via a query-parameter token (browser WebSocket
// clients cannot set an Authorization header) and requires the admin
// role before upgrading.
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	claims, err := h.authService.VerifyToken(token, middleware.ClientInfo(r))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if claims.Role != domain.RoleAdmin {
		h.authService.RecordAccessDenied(middleware.ClientInfo(r), "")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [handlers.WebSocket] upgrade: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
