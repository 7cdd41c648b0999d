// Package userfile persists the user set as a single JSON document,
// the whole collection rewritten on every change. Fine at this scale;
// the store mutex serializes the read-modify-write so two racing
// registrations cannot both pass the uniqueness check.
package userfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
)

type userRecord struct {
	ID        uuid.UUID   `json:"id"`
	Login     string      `json:"login"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Password  string      `json:"password"` // bcrypt hash
	Phone     string      `json:"phone"`
	Birthdate string      `json:"birthdate"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type fileDocument struct {
	Users []userRecord `json:"users"`
}

type UserRepository struct {
	path string

	mu    sync.RWMutex
	users []userRecord
}

func NewUserRepository(path string) (*UserRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("user store path is required")
	}
	r := &UserRepository{path: path}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}

	r.users = append(r.users, toRecord(user))
	if err := r.persistLocked(); err != nil {
		r.users = r.users[:len(r.users)-1]
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return fromRecord(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return fromRecord(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *UserRepository) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read user store: %w", err)
	}
	if len(b) == 0 {
		return nil
	}

	var doc fileDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("decode user store: %w", err)
	}
	r.users = doc.Users
	return nil
}

func (r *UserRepository) persistLocked() error {
	b, err := json.MarshalIndent(fileDocument{Users: r.users}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir user store dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		return fmt.Errorf("write user store: %w", err)
	}
	return nil
}

func toRecord(u *domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Login:     u.Login,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Phone:     u.Phone,
		Birthdate: u.Birthdate,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func fromRecord(u userRecord) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Login:        u.Login,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		Phone:        u.Phone,
		Birthdate:    u.Birthdate,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
