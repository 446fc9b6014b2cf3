// Package kafka implements the walletwatch notifier that writes alerts as
// JSON envelopes to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/infra/notifier"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	notifierName = "kafka"

	// DefaultTopic receives alerts when the notifier has no topic configured.
	DefaultTopic = "walletwatch.transactions"
)

// ErrMissingBrokers is returned by Factory when no broker is configured.
var ErrMissingBrokers = errors.New("kafka brokers are required")

// writer is the subset of *kafka.Writer used by the notifier.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Notifier writes alerts to Kafka.
type Notifier struct {
	writer  writer
	topic   string
	timeout time.Duration
}

var _ walletwatch.Notifier = (*Notifier)(nil)

// New wraps a writer that has no fixed topic; every message names its own.
func New(w writer, topic string, timeout time.Duration) *Notifier {
	if topic == "" {
		topic = DefaultTopic
	}

	if timeout <= 0 {
		timeout = config.DefaultNotifierTimeout
	}

	return &Notifier{
		writer:  w,
		topic:   topic,
		timeout: timeout,
	}
}

// Factory builds a notifier writing to cfg.Brokers. Messages sharing a key
// land on the same partition. It matches walletwatch.NotifierFactory.
func Factory(_ context.Context, cfg config.NotifierConfig) (walletwatch.Notifier, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrMissingBrokers
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		WriteTimeout:           cfg.Timeout,
		AllowAutoTopicCreation: true,
	}

	return New(w, cfg.Topic, cfg.Timeout), nil
}

func (n *Notifier) Name() string {
	return notifierName
}

// FormatMessage returns message unchanged.
func (n *Notifier) FormatMessage(message string) string {
	return message
}

// Send writes message to the configured topic.
func (n *Notifier) Send(ctx context.Context, message string, opts ...walletwatch.SendOption) bool {
	return n.SendTo(ctx, n.topic, message, opts...)
}

// SendTo writes message to the recipient topic, keyed by the transaction
// signature when one is present in the extra fields.
func (n *Notifier) SendTo(ctx context.Context, recipient, message string, opts ...walletwatch.SendOption) bool {
	ctx = logger.Derive(ctx, "notifier.name", notifierName, "kafka.topic", recipient)

	o := walletwatch.NewSendOptions(opts...)

	value, err := json.Marshal(notifier.Payload(n.FormatMessage(message), o))
	if err != nil {
		logger.Error(ctx, "failed to encode kafka envelope", "error", err)
		return false
	}

	msg := kafka.Message{
		Topic: recipient,
		Value: value,
		Time:  o.Timestamp,
	}
	if key := notifier.Key(o); key != "" {
		msg.Key = []byte(key)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error(ctx, "failed to write kafka message", "error", fmt.Errorf("%w: %w", walletwatch.ErrTransportFailure, err))
		return false
	}

	return true
}

// Close flushes pending writes and closes the writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
