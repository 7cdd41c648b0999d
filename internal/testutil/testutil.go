package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/api"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/config"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/repository/userfile"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/websocket"
)

// TestConfig returns a config pointing at throwaway files with a
// per-test secret and the production default token lifetime.
func TestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:         "0",
		Environment:  "test",
		JWTSecret:    "test-secret-" + t.Name(),
		TokenTTL:     2 * time.Minute,
		UsersFile:    filepath.Join(dir, "users.json"),
		AuditLogFile: filepath.Join(dir, "auth.log"),
		AdminEmail:   "admin@example.com",
	}
}

type TestServer struct {
	Server   *httptest.Server
	Config   *config.Config
	Services *service.Services
	Users    *userfile.UserRepository
	AuditLog *audit.Log
	Hub      *websocket.Hub
}

// NewTestServer wires the full stack against temp files and serves it
// over httptest.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	cfg := TestConfig(t)

	users, err := userfile.NewUserRepository(cfg.UsersFile)
	require.NoError(t, err)

	auditLog := audit.NewLog(cfg.AuditLogFile)

	hub := websocket.NewHub()
	go hub.Run()

	services := service.NewServices(users, audit.MultiRecorder{auditLog, hub}, cfg)

	srv := httptest.NewServer(api.NewRouter(services, auditLog, hub))
	t.Cleanup(func() {
		srv.Close()
		hub.Stop()
	})

	return &TestServer{
		Server:   srv,
		Config:   cfg,
		Services: services,
		Users:    users,
		AuditLog: auditLog,
		Hub:      hub,
	}
}

func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// AssertJSONResponse decodes a JSON body into target, failing the test
// on decode errors.
func AssertJSONResponse(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
