package middleware

import (
	"context"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
	RoleKey   contextKey = "role"
)

// Auth gates a request on a bearer token. On success the subject's ID
// and role are attached to the context; every verification outcome is
// audited by the service with the request's client info.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			claims, err := authService.VerifyToken(raw, ClientInfo(r))
			if err != nil {
				log.Printf("ERROR [middleware.Auth] token verification failed: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				log.Printf("ERROR [middleware.Auth] bad subject in token: %v", err)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin must run after Auth. A valid identity without the admin
// role is a Forbidden outcome, distinct from Unauthorized, and is
// audited as a failed attempt.
func RequireAdmin(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRole(r.Context())
			if !ok || role != domain.RoleAdmin {
				authService.RecordAccessDenied(ClientInfo(r), "")
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func GetRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(RoleKey).(domain.Role)
	return role, ok
}

// ClientInfo collects the forensic triple attached to every audit
// event emitted for this request.
func ClientInfo(r *http.Request) audit.ClientInfo {
	return audit.ClientInfo{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
		Endpoint:  r.Method + " " + r.URL.Path,
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.Index(fwd, ","); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
