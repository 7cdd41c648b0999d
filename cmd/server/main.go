package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/api"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/config"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/repository/userfile"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize stores
	users, err := userfile.NewUserRepository(cfg.UsersFile)
	if err != nil {
		log.Fatalf("failed to open user store: %v", err)
	}
	auditLog := audit.NewLog(cfg.AuditLogFile)

	// Live audit stream hub
	hub := websocket.NewHub()
	go hub.Run()

	// Every audit event goes to the durable log and, best-effort, to
	// connected admin consoles.
	recorder := audit.MultiRecorder{auditLog, hub}

	// Initialize services
	services := service.NewServices(users, recorder, cfg)

	// Seed the well-known admin account on first run
	generated, err := services.Auth.EnsureAdmin(context.Background())
	if err != nil {
		log.Fatalf("failed to bootstrap admin account: %v", err)
	}
	if generated != "" {
		log.Printf("admin account %s created with generated password: %s", cfg.AdminEmail, generated)
	}

	router := api.NewRouter(services, auditLog, hub)

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	hub.Stop()

	log.Println("Server stopped")
}
