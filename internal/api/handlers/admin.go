package handlers

import (
	"net/http"
	"strconv"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
)

// AdminHandler serves the security log console. Routes using it must
// sit behind Auth + RequireAdmin.
type AdminHandler struct {
	events audit.Querier
}

func NewAdminHandler(events audit.Querier) *AdminHandler {
	return &AdminHandler{events: events}
}

// Logs returns up to ?limit= most recent audit events, newest first.
func (h *AdminHandler) Logs(w http.ResponseWriter, r *http.Request) {
	limit := audit.DefaultQueryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	events, err := h.events.Query(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read security logs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"logs":    events,
		"count":   len(events),
	})
}
