package audit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/token"
)

func TestClassifyTokenFailure(t *testing.T) {
	tests := []struct {
		kind token.FailureKind
		want audit.Severity
	}{
		{token.FailureExpired, audit.SeverityHigh},
		{token.FailureMalformed, audit.SeverityMedium},
		{token.FailureSignatureInvalid, audit.SeverityMedium},
		{token.FailureMissing, audit.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, audit.ClassifyTokenFailure(tt.kind))
		})
	}
}

func TestTokenPreview(t *testing.T) {
	assert.Equal(t, "missing", audit.TokenPreview(""))
	assert.Equal(t, "short...", audit.TokenPreview("short"))

	long := strings.Repeat("a", 64)
	preview := audit.TokenPreview(long)
	assert.Equal(t, strings.Repeat("a", 20)+"...", preview)
	assert.Less(t, len(preview), len(long))
}

type failingRecorder struct{}

func (failingRecorder) Record(audit.Event) error { return errors.New("sink down") }

func TestMultiRecorder(t *testing.T) {
	first := audit.NewMemory()
	second := audit.NewMemory()

	multi := audit.MultiRecorder{first, failingRecorder{}, second}
	err := multi.Record(audit.Event{Kind: audit.KindLoginSuccess})

	// Every sink sees the event even when one fails.
	assert.Error(t, err)
	assert.Len(t, first.Events(), 1)
	assert.Len(t, second.Events(), 1)
}
