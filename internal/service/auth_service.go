package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/password"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/repository"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/token"
)

// AuthService orchestrates registration, authentication, token
// issuance/verification and audit emission. Auditing happens here, at
// the service layer, so every caller gets the same coverage.
type AuthService struct {
	users      repository.UserRepository
	recorder   audit.Recorder
	codec      *token.Codec
	adminEmail string
	adminPass  string
}

func NewAuthService(users repository.UserRepository, recorder audit.Recorder, codec *token.Codec, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		users:      users,
		recorder:   recorder,
		codec:      codec,
		adminEmail: adminEmail,
		adminPass:  adminPassword,
	}
}

type RegisterInput struct {
	Login     string
	Name      string
	Email     string
	Password  string
	Phone     string
	Birthdate string
}

// Register creates a user with role "user". Field-shape validation is
// the caller's gate; the only check here is email uniqueness.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if existing, err := s.users.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Login:        input.Login,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Phone:        input.Phone,
		Birthdate:    input.Birthdate,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks email/password. Every outcome, success or
// failure, appends exactly one login audit event.
func (s *AuthService) Authenticate(ctx context.Context, email, pass string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(audit.Event{
				Timestamp: time.Now(),
				Kind:      audit.KindLoginFailed,
				Severity:  audit.SeverityLow,
				Email:     email,
				Reason:    "user not found",
			})
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if !password.Compare(pass, user.PasswordHash) {
		s.record(audit.Event{
			Timestamp: time.Now(),
			Kind:      audit.KindLoginFailed,
			Severity:  audit.SeverityMedium,
			Email:     email,
			Reason:    "invalid password",
		})
		return nil, domain.ErrInvalidPassword
	}

	s.record(audit.Event{
		Timestamp: time.Now(),
		Kind:      audit.KindLoginSuccess,
		Email:     email,
	})
	return user, nil
}

func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	return s.codec.Issue(user.ID, user.Role)
}

// VerifyToken validates a bearer token and audits the decision with
// the caller's client info attached. Failures are returned to the
// caller after being recorded so the transport can map them to a
// rejection.
func (s *AuthService) VerifyToken(raw string, client audit.ClientInfo) (*token.Claims, error) {
	claims, err := s.codec.Verify(raw)
	if err != nil {
		var verr *token.VerificationError
		severity := audit.SeverityLow
		reason := err.Error()
		if errors.As(err, &verr) {
			severity = audit.ClassifyTokenFailure(verr.Kind)
		}
		s.record(audit.Event{
			Timestamp:    time.Now(),
			Kind:         audit.KindTokenValidationFailed,
			Severity:     severity,
			Reason:       reason,
			TokenPreview: audit.TokenPreview(raw),
			ClientInfo:   &client,
		})
		return nil, err
	}

	s.record(audit.Event{
		Timestamp:    time.Now(),
		Kind:         audit.KindTokenValidationSuccess,
		TokenPreview: audit.TokenPreview(raw),
		ClientInfo:   &client,
	})
	return claims, nil
}

// RecordAccessDenied audits a valid identity being refused for lack of
// role. One decision, one event.
func (s *AuthService) RecordAccessDenied(client audit.ClientInfo, email string) {
	s.record(audit.Event{
		Timestamp:  time.Now(),
		Kind:       audit.KindTokenValidationFailed,
		Severity:   audit.SeverityMedium,
		Email:      email,
		Reason:     "insufficient role",
		ClientInfo: &client,
	})
}

func (s *AuthService) IsAdmin(user *domain.User) bool {
	return user != nil && user.Role == domain.RoleAdmin
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// EnsureAdmin seeds the well-known admin account if it is absent. The
// password comes from configuration; when none is injected a random
// one is generated and returned so the operator can capture it from
// the startup log. Returns "" when nothing was generated.
func (s *AuthService) EnsureAdmin(ctx context.Context) (string, error) {
	if _, err := s.users.GetByEmail(ctx, s.adminEmail); err == nil {
		return "", nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	pass := s.adminPass
	generated := ""
	if pass == "" {
		buf := make([]byte, 16)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("generate admin password: %w", err)
		}
		pass = hex.EncodeToString(buf)
		generated = pass
	}

	hashed, err := password.Hash(pass)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}

	admin := &domain.User{
		ID:           uuid.New(),
		Login:        "admin",
		Name:         "Administrator",
		Email:        s.adminEmail,
		PasswordHash: hashed,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", nil
		}
		return "", err
	}
	return generated, nil
}

// Audit durability is best-effort relative to the decision being
// recorded: a failed write goes to the diagnostic log and the primary
// operation proceeds.
func (s *AuthService) record(e audit.Event) {
	if err := s.recorder.Record(e); err != nil {
		log.Printf("ERROR [service.AuthService] audit write failed: %v", err)
	}
}
