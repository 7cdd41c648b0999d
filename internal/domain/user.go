package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a registered account. PasswordHash always holds a bcrypt
// digest, never the plaintext.
type User struct {
	ID           uuid.UUID `json:"id"`
	Login        string    `json:"login"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Birthdate    string    `json:"birthdate"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
