package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/password"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/repository"
)

type UserBuilder struct {
	login    string
	name     string
	email    string
	password string
	role     domain.Role
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		login:    "testuser",
		name:     "Test User",
		email:    "test@example.com",
		password: "Password1",
		role:     domain.RoleUser,
	}
}

func (b *UserBuilder) WithLogin(login string) *UserBuilder {
	b.login = login
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(pass string) *UserBuilder {
	b.password = pass
	return b
}

func (b *UserBuilder) WithRole(role domain.Role) *UserBuilder {
	b.role = role
	return b
}

// Build persists the user and returns it with the raw password used.
func (b *UserBuilder) Build(t *testing.T, users repository.UserRepository) (*domain.User, string) {
	t.Helper()

	hashed, err := password.Hash(b.password)
	require.NoError(t, err)

	user := &domain.User{
		ID:           uuid.New(),
		Login:        b.login,
		Name:         b.name,
		Email:        b.email,
		PasswordHash: hashed,
		Phone:        "0123456789",
		Birthdate:    "1990-01-01",
		Role:         b.role,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user, b.password
}
