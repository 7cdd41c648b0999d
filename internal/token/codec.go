// Package token issues and verifies the signed session tokens that
// stand in for server-side sessions. A token is valid purely as a
// function of its own signed content and the verifier's clock; there
// is no revocation, so the short TTL bounds the damage of a leak.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/domain"
)

// FailureKind is the closed set of reasons a token can fail
// verification. Audit severity is derived from it.
type FailureKind string

const (
	FailureMissing          FailureKind = "missing"
	FailureMalformed        FailureKind = "malformed"
	FailureSignatureInvalid FailureKind = "signature_invalid"
	FailureExpired          FailureKind = "expired"
)

type VerificationError struct {
	Kind FailureKind
	err  error
}

func (e *VerificationError) Error() string {
	switch e.Kind {
	case FailureMissing:
		return "token missing"
	case FailureMalformed:
		return "token malformed"
	case FailureSignatureInvalid:
		return "token signature invalid"
	case FailureExpired:
		return "token expired"
	}
	return "token invalid"
}

func (e *VerificationError) Unwrap() error { return e.err }

type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Codec signs and verifies session tokens with an injected secret and
// lifetime so tests can run with their own values.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

func (c *Codec) TTL() time.Duration { return c.ttl }

func (c *Codec) Issue(userID uuid.UUID, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.secret)
}

// Verify parses and validates raw. Every failure is returned as a
// *VerificationError carrying the kind the audit log classifies on.
func (c *Codec) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, &VerificationError{Kind: FailureMissing}
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, &VerificationError{Kind: classify(err), err: err}
	}

	if !tok.Valid {
		return nil, &VerificationError{Kind: FailureSignatureInvalid}
	}
	return claims, nil
}

func classify(err error) FailureKind {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return FailureExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return FailureSignatureInvalid
	case errors.Is(err, jwt.ErrTokenMalformed):
		return FailureMalformed
	}
	return FailureSignatureInvalid
}
