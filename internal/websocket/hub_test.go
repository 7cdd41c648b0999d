package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
)

func TestHub_RecordWithoutSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// Recording must never block, subscribers or not.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			require.NoError(t, hub.Record(audit.Event{Kind: audit.KindLoginSuccess}))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked with no subscribers")
	}
}

func TestHub_DropsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// A client nobody drains: its send buffer fills and the hub must
	// cut it loose instead of stalling the broadcast loop.
	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount())

	for i := 0; i < 10; i++ {
		require.NoError(t, hub.Record(audit.Event{Kind: audit.KindLoginFailed}))
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("slow subscriber was never dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	hub.Stop()
	hub.Stop()

	// Recording after shutdown is a no-op, not a deadlock.
	assert.NoError(t, hub.Record(audit.Event{Kind: audit.KindLoginSuccess}))
}
