package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("error")
}

type published struct {
	subject string
	data    map[string]any
}

type fakeConn struct {
	published  []published
	publishErr error
	flushErr   error
	flushedFor time.Duration
	closed     bool
}

func (c *fakeConn) Publish(subject string, data []byte) error {
	if c.publishErr != nil {
		return c.publishErr
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}
	c.published = append(c.published, published{subject: subject, data: payload})

	return nil
}

func (c *fakeConn) FlushTimeout(timeout time.Duration) error {
	c.flushedFor = timeout
	return c.flushErr
}

func (c *fakeConn) Close() {
	c.closed = true
}

func TestNew(t *testing.T) {
	n := New(&fakeConn{}, "", 0)

	assert.Equal(t, DefaultSubject, n.subject)
	assert.Equal(t, config.DefaultNotifierTimeout, n.timeout)
	assert.Equal(t, "nats", n.Name())
}

func TestNotifier_Send(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	t.Run("should publish the envelope on the configured subject", func(t *testing.T) {
		conn := &fakeConn{}
		n := New(conn, "alerts.wallets", time.Second)

		ok := n.Send(t.Context(), "Sent 1 SOL",
			walletwatch.WithTimestamp(ts),
			walletwatch.WithExtra(map[string]any{"signature": "SIG1", "chain": "solana"}),
		)
		require.True(t, ok)

		require.Len(t, conn.published, 1)
		assert.Equal(t, "alerts.wallets", conn.published[0].subject)
		assert.Equal(t, map[string]any{
			"message":   "Sent 1 SOL",
			"timestamp": "2024-05-06T07:08:09Z",
			"signature": "SIG1",
			"chain":     "solana",
		}, conn.published[0].data)
		assert.Equal(t, time.Second, conn.flushedFor)
	})

	t.Run("should report false when publishing fails", func(t *testing.T) {
		n := New(&fakeConn{publishErr: errors.New("connection closed")}, "", time.Second)
		assert.False(t, n.Send(t.Context(), "hello"))
	})

	t.Run("should report false when the flush is not acknowledged", func(t *testing.T) {
		n := New(&fakeConn{flushErr: errors.New("timeout")}, "", time.Second)
		assert.False(t, n.Send(t.Context(), "hello"))
	})

	t.Run("should bound the flush by the context deadline", func(t *testing.T) {
		conn := &fakeConn{}
		n := New(conn, "", time.Minute)

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		require.True(t, n.Send(ctx, "hello"))
		assert.LessOrEqual(t, conn.flushedFor, time.Second)
	})
}

func TestNotifier_SendTo(t *testing.T) {
	conn := &fakeConn{}
	n := New(conn, "", time.Second)

	require.True(t, n.SendTo(t.Context(), "alerts.vip", "hello"))
	assert.Equal(t, "alerts.vip", conn.published[0].subject)
}

func TestNotifier_Close(t *testing.T) {
	conn := &fakeConn{}
	require.NoError(t, New(conn, "", 0).Close())
	assert.True(t, conn.closed)
}
