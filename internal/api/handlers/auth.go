package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/api/middleware"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/service"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/validation"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Birthdate string `json:"birthdate"`
	Role      string `json:"role"`
}

func userResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Login:     u.Login,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Birthdate: u.Birthdate,
		Role:      string(u.Role),
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data := validation.RegistrationData{
		Login:     strings.TrimSpace(req.Login),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Password:  req.Password,
		Phone:     strings.TrimSpace(req.Phone),
		Birthdate: req.Birthdate,
	}

	// The validator is a pure gate; the service only re-checks email
	// uniqueness.
	if errs := validation.ValidateRegistration(data); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "registration form has errors",
			"errors":  errs,
		})
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Login:     data.Login,
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Phone:     data.Phone,
		Birthdate: data.Birthdate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "registration successful",
		"data":    userResponse(user),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeError(w, http.StatusUnauthorized, "user not found")
		case errors.Is(err, domain.ErrInvalidPassword):
			writeError(w, http.StatusUnauthorized, "invalid password")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	tok, err := h.authService.IssueToken(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   tok,
		"user":    userResponse(user),
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    userResponse(user),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}
