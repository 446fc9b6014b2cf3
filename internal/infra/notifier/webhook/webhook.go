// Package webhook implements the walletwatch notifier that calls a generic
// HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/infra/notifier"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	httptransport "github.com/gabapcia/walletwatch/internal/pkg/transport/http"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const notifierName = "webhook"

// ErrMissingURL is returned by New when no webhook_url is configured.
var ErrMissingURL = errors.New("webhook url is required")

// Notifier posts alerts to a fixed HTTP endpoint.
type Notifier struct {
	url     string
	method  string
	headers map[string]string
	client  *retryablehttp.Client
}

var _ walletwatch.Notifier = (*Notifier)(nil)

// Option customizes New.
type Option func(*Notifier)

// WithHTTPClient replaces the retrying client built from the notifier timeout.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(n *Notifier) {
		n.client = c
	}
}

// New builds the notifier for cfg. The method defaults to POST and the
// headers to a JSON content type.
func New(cfg config.NotifierConfig, opts ...Option) (*Notifier, error) {
	if cfg.WebhookURL == "" {
		return nil, ErrMissingURL
	}

	method := strings.ToUpper(cfg.Method)
	if method == "" {
		method = http.MethodPost
	}

	headers := cfg.Headers
	if len(headers) == 0 {
		headers = map[string]string{"Content-Type": "application/json"}
	}

	n := &Notifier{
		url:     cfg.WebhookURL,
		method:  method,
		headers: headers,
	}
	for _, opt := range opts {
		opt(n)
	}

	if n.client == nil {
		n.client = httptransport.NewClient(httptransport.WithTimeout(cfg.Timeout))
	}

	return n, nil
}

// Factory builds a webhook notifier. It matches walletwatch.NotifierFactory.
func Factory(_ context.Context, cfg config.NotifierConfig) (walletwatch.Notifier, error) {
	return New(cfg)
}

func (n *Notifier) Name() string {
	return notifierName
}

// FormatMessage returns message unchanged; the endpoint receives plain text.
func (n *Notifier) FormatMessage(message string) string {
	return message
}

// Send calls the configured endpoint.
func (n *Notifier) Send(ctx context.Context, message string, opts ...walletwatch.SendOption) bool {
	return n.SendTo(ctx, n.url, message, opts...)
}

// SendTo calls recipient, which must be an absolute URL.
func (n *Notifier) SendTo(ctx context.Context, recipient, message string, opts ...walletwatch.SendOption) bool {
	ctx = logger.Derive(ctx, "notifier.name", notifierName)

	req, err := n.newRequest(ctx, recipient, n.FormatMessage(message), walletwatch.NewSendOptions(opts...))
	if err != nil {
		logger.Error(ctx, "failed to build webhook request", "error", err)
		return false
	}

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Error(ctx, "webhook request failed", "error", fmt.Errorf("%w: %w", walletwatch.ErrTransportFailure, err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error(ctx, "webhook endpoint rejected the notification", "http.status", resp.StatusCode)
		return false
	}

	return true
}

func (n *Notifier) newRequest(ctx context.Context, target, message string, o walletwatch.SendOptions) (*retryablehttp.Request, error) {
	var body io.Reader
	if n.method == http.MethodGet {
		u, err := url.Parse(target)
		if err != nil {
			return nil, err
		}

		q := u.Query()
		q.Set("message", message)
		u.RawQuery = q.Encode()
		target = u.String()
	} else {
		payload, err := json.Marshal(notifier.Payload(message, o))
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, n.method, target, body)
	if err != nil {
		return nil, err
	}

	for k, v := range n.headers {
		req.Header.Set(k, v)
	}

	return req, nil
}
