package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/testutil"
)

func getWithToken(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestAdminHandler_Logs(t *testing.T) {
	ts := testutil.NewTestServer(t)

	admin, _ := testutil.NewUserBuilder().
		WithEmail("root@example.com").
		WithRole(domain.RoleAdmin).
		Build(t, ts.Users)
	adminToken, err := ts.Services.Auth.IssueToken(admin)
	require.NoError(t, err)

	user, _ := testutil.NewUserBuilder().
		WithEmail("plain@example.com").
		Build(t, ts.Users)
	userToken, err := ts.Services.Auth.IssueToken(user)
	require.NoError(t, err)

	// Generate some login history to query back.
	for i := 0; i < 3; i++ {
		resp := postJSON(t, ts.URL("/login"), map[string]string{
			"email":    "ghost@example.com",
			"password": "whatever",
		})
		resp.Body.Close()
	}

	t.Run("requires token", func(t *testing.T) {
		resp := getWithToken(t, ts.URL("/api/admin/logs"), "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("forbidden for non-admin", func(t *testing.T) {
		resp := getWithToken(t, ts.URL("/api/admin/logs"), userToken)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		// The refusal itself lands in the log as a failed attempt.
		events, err := ts.AuditLog.Query(5)
		require.NoError(t, err)
		require.NotEmpty(t, events)
		assert.Equal(t, audit.KindTokenValidationFailed, events[0].Kind)
		assert.Equal(t, "insufficient role", events[0].Reason)
	})

	t.Run("admin reads newest first", func(t *testing.T) {
		resp := getWithToken(t, ts.URL("/api/admin/logs"), adminToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Success bool          `json:"success"`
			Logs    []audit.Event `json:"logs"`
			Count   int           `json:"count"`
		}
		testutil.AssertJSONResponse(t, resp, &result)

		assert.True(t, result.Success)
		assert.Equal(t, len(result.Logs), result.Count)
		require.NotEmpty(t, result.Logs)
		for i := 1; i < len(result.Logs); i++ {
			assert.False(t, result.Logs[i-1].Timestamp.Before(result.Logs[i].Timestamp))
		}
	})

	t.Run("limit bounds the result", func(t *testing.T) {
		resp := getWithToken(t, ts.URL("/api/admin/logs?limit=2"), adminToken)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Logs  []audit.Event `json:"logs"`
			Count int           `json:"count"`
		}
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Len(t, result.Logs, 2)
		assert.Equal(t, 2, result.Count)
	})
}
