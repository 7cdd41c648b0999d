// Package audit records authentication decisions as append-only,
// line-delimited JSON events and serves the bounded queries the admin
// console reads them back with.
package audit

import (
	"time"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/token"
)

type Kind string

const (
	KindLoginSuccess           Kind = "LOGIN_SUCCESS"
	KindLoginFailed            Kind = "LOGIN_FAILED"
	KindTokenValidationSuccess Kind = "TOKEN_VALIDATION_SUCCESS"
	KindTokenValidationFailed  Kind = "TOKEN_VALIDATION_FAILED"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

type ClientInfo struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Endpoint  string `json:"endpoint"`
}

// Event is one immutable authentication decision. Severity is fixed at
// write time so historical events stay stable if classification rules
// change.
type Event struct {
	Timestamp    time.Time   `json:"timestamp"`
	Kind         Kind        `json:"type"`
	Severity     Severity    `json:"severity,omitempty"`
	Email        string      `json:"email,omitempty"`
	Reason       string      `json:"reason,omitempty"`
	TokenPreview string      `json:"tokenPreview,omitempty"`
	ClientInfo   *ClientInfo `json:"clientInfo,omitempty"`
}

type Recorder interface {
	Record(Event) error
}

// Querier is the bounded read side the admin surface consumes.
type Querier interface {
	Query(limit int) ([]Event, error)
}

// MultiRecorder fans one event out to several sinks. The first error
// is returned after every sink has seen the event.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(e Event) error {
	var first error
	for _, r := range m {
		if err := r.Record(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ClassifyTokenFailure maps a verification failure to the severity the
// admin console triages on. Expired tokens rank highest because they
// are the signature of a replayed credential.
func ClassifyTokenFailure(kind token.FailureKind) Severity {
	switch kind {
	case token.FailureExpired:
		return SeverityHigh
	case token.FailureMalformed, token.FailureSignatureInvalid:
		return SeverityMedium
	}
	return SeverityLow
}

// TokenPreview truncates a token for logging so the log itself never
// stores a usable credential.
func TokenPreview(raw string) string {
	if raw == "" {
		return "missing"
	}
	if len(raw) <= 20 {
		return raw + "..."
	}
	return raw[:20] + "..."
}
