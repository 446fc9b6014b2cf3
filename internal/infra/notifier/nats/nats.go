// Package nats implements the walletwatch notifier that publishes alerts as
// JSON envelopes on a NATS subject.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/infra/notifier"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	notifierName = "nats"

	// DefaultSubject receives alerts when the notifier has no subject configured.
	DefaultSubject = "walletwatch.transactions"
)

// publisher is the subset of *nats.Conn used by the notifier.
type publisher interface {
	Publish(subject string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Close()
}

// Notifier publishes alerts to NATS.
type Notifier struct {
	conn    publisher
	subject string
	timeout time.Duration
}

var _ walletwatch.Notifier = (*Notifier)(nil)

// New wraps an established connection.
func New(conn publisher, subject string, timeout time.Duration) *Notifier {
	if subject == "" {
		subject = DefaultSubject
	}

	if timeout <= 0 {
		timeout = config.DefaultNotifierTimeout
	}

	return &Notifier{
		conn:    conn,
		subject: subject,
		timeout: timeout,
	}
}

// Factory connects to cfg.URL, or the local default server, and builds the
// notifier. It matches walletwatch.NotifierFactory.
func Factory(ctx context.Context, cfg config.NotifierConfig) (walletwatch.Notifier, error) {
	url := cfg.URL
	if url == "" {
		url = nats.DefaultURL
	}

	conn, err := nats.Connect(url,
		nats.Name("walletwatch"),
		nats.Timeout(cfg.Timeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(ctx, "disconnected from nats", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info(ctx, "reconnected to nats", "nats.url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: nats connect: %w", walletwatch.ErrTransportFailure, err)
	}

	return New(conn, cfg.Subject, cfg.Timeout), nil
}

func (n *Notifier) Name() string {
	return notifierName
}

// FormatMessage returns message unchanged.
func (n *Notifier) FormatMessage(message string) string {
	return message
}

// Send publishes message on the configured subject.
func (n *Notifier) Send(ctx context.Context, message string, opts ...walletwatch.SendOption) bool {
	return n.SendTo(ctx, n.subject, message, opts...)
}

// SendTo publishes message on the recipient subject and waits for the
// server to acknowledge the flush.
func (n *Notifier) SendTo(ctx context.Context, recipient, message string, opts ...walletwatch.SendOption) bool {
	ctx = logger.Derive(ctx, "notifier.name", notifierName, "nats.subject", recipient)

	data, err := json.Marshal(notifier.Payload(n.FormatMessage(message), walletwatch.NewSendOptions(opts...)))
	if err != nil {
		logger.Error(ctx, "failed to encode nats envelope", "error", err)
		return false
	}

	if err := n.conn.Publish(recipient, data); err != nil {
		logger.Error(ctx, "failed to publish to nats", "error", err)
		return false
	}

	if err := n.conn.FlushTimeout(n.flushTimeout(ctx)); err != nil {
		logger.Error(ctx, "nats flush failed", "error", err)
		return false
	}

	return true
}

// flushTimeout is the notifier timeout, shortened to the context deadline.
func (n *Notifier) flushTimeout(ctx context.Context) time.Duration {
	timeout := n.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}

	return max(timeout, time.Millisecond)
}

// Close closes the connection.
func (n *Notifier) Close() error {
	n.conn.Close()
	return nil
}
