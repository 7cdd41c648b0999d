package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/api/handlers"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/api/middleware"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/websocket"
)

func NewRouter(services *service.Services, events audit.Querier, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	adminHandler := handlers.NewAdminHandler(events)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// Public routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		r.Get("/me", authHandler.Me)

		// Admin-only security log console
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin(services.Auth))
			r.Get("/logs", adminHandler.Logs)
		})
	})

	// Live audit stream (token passed as query parameter)
	r.Get("/ws/admin/logs", wsHandler.Handle)

	return r
}
