// Package relay implements the parts every webhook-driven chain provider
// shares: the subscription registry, best-effort upstream synchronization
// and the inbound HTTP listener that turns relay deliveries into sink calls.
//
// Chain specific behavior (authentication, payload decoding, upstream API)
// lives behind the Adapter interface.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletwatch/internal/subscription"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// ErrSyncSkipped is returned by Adapter.Sync when the upstream relay is not
// configured. It is logged as a warning instead of an error.
var ErrSyncSkipped = errors.New("upstream sync not configured")

// Rejected reports whether an upstream status cannot be fixed by retrying:
// any 4xx other than 408 and 429.
func Rejected(status int) bool {
	return status >= 400 && status < 500 &&
		status != http.StatusRequestTimeout && status != http.StatusTooManyRequests
}

// Adapter supplies the chain specific parts of a relay.
type Adapter interface {
	// Chain returns the chain name stamped on every transaction.
	Chain() string

	// Normalize returns the registry key for address.
	Normalize(address string) string

	// Authenticate reports whether the delivery carries valid credentials.
	Authenticate(header http.Header, body []byte) bool

	// Parse decodes a delivery into one transaction per involved address.
	// Malformed items are logged and skipped; an error means the body as a
	// whole could not be decoded.
	Parse(ctx context.Context, body []byte) ([]walletwatch.Transaction, error)

	// Sync replaces the upstream relay's address list.
	Sync(ctx context.Context, addresses []string) error
}

const (
	defaultBodyLimit       = "10M"
	defaultShutdownTimeout = 10 * time.Second
)

// Relay routes inbound deliveries for subscribed addresses to a sink.
type Relay struct {
	adapter Adapter
	sink    walletwatch.Sink
	subs    *subscription.Registry
	retry   retry.Retry
	echo    *echo.Echo

	holdMu sync.Mutex
	held   int
	dirty  bool

	shutdownTimeout time.Duration
}

// Option customizes a Relay.
type Option func(*Relay)

// WithRetry sets the policy used for upstream synchronization.
func WithRetry(r retry.Retry) Option {
	return func(rl *Relay) {
		rl.retry = r
	}
}

// WithShutdownTimeout bounds the graceful shutdown of the listener.
func WithShutdownTimeout(d time.Duration) Option {
	return func(rl *Relay) {
		rl.shutdownTimeout = d
	}
}

// New returns a Relay that delivers the transactions decoded by adapter to sink.
func New(adapter Adapter, sink walletwatch.Sink, opts ...Option) *Relay {
	r := &Relay{
		adapter:         adapter,
		sink:            sink,
		subs:            subscription.New(),
		retry:           retry.New(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.echo = r.newEcho()
	return r
}

func (r *Relay) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(defaultBodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug(c.Request().Context(), "request handled",
				"http.method", v.Method,
				"http.uri", v.URI,
				"http.status", v.Status,
				"http.latency", v.Latency.String(),
			)
			return nil
		},
	}))

	e.POST("/webhook", r.handleWebhook)
	e.GET("/health", handleHealth)

	return e
}

// Handler exposes the listener's routes.
func (r *Relay) Handler() http.Handler {
	return r.echo
}

// Subscriptions returns the registry backing the relay.
func (r *Relay) Subscriptions() *subscription.Registry {
	return r.subs
}

// Subscribe registers watchID for address, then synchronizes the upstream
// relay. Synchronization failures are logged and never undo the registration.
func (r *Relay) Subscribe(ctx context.Context, address, watchID string) {
	address = r.adapter.Normalize(address)
	r.subs.Add(address, watchID)

	logger.Info(ctx, "subscribed address", "chain.name", r.adapter.Chain(), "watch.address", address)
	r.requestSync(ctx)
}

// Unsubscribe drops every subscription of address, then synchronizes the
// upstream relay.
func (r *Relay) Unsubscribe(ctx context.Context, address string) error {
	address = r.adapter.Normalize(address)
	if !r.subs.Remove(address) {
		return nil
	}

	logger.Info(ctx, "unsubscribed address", "chain.name", r.adapter.Chain(), "watch.address", address)
	r.requestSync(ctx)
	return nil
}

// HoldSync defers upstream synchronization until the returned release is
// called. Releasing synchronizes once if the subscriptions changed while
// held. Holds nest; only the last release synchronizes.
func (r *Relay) HoldSync() func(ctx context.Context) {
	r.holdMu.Lock()
	r.held++
	r.holdMu.Unlock()

	var once sync.Once
	return func(ctx context.Context) {
		once.Do(func() {
			r.holdMu.Lock()
			r.held--
			flush := r.held == 0 && r.dirty
			if flush {
				r.dirty = false
			}
			r.holdMu.Unlock()

			if flush {
				r.sync(ctx)
			}
		})
	}
}

func (r *Relay) requestSync(ctx context.Context) {
	r.holdMu.Lock()
	if r.held > 0 {
		r.dirty = true
		r.holdMu.Unlock()
		return
	}
	r.holdMu.Unlock()

	r.sync(ctx)
}

func (r *Relay) sync(ctx context.Context) {
	addresses := r.subs.Addresses()
	ctx = logger.Derive(ctx, "chain.name", r.adapter.Chain(), "relay.addresses", len(addresses))

	err := r.retry.Execute(ctx, func() error {
		err := r.adapter.Sync(ctx, addresses)
		if errors.Is(err, ErrSyncSkipped) {
			return retry.Permanent(err)
		}
		return err
	})

	switch {
	case errors.Is(err, ErrSyncSkipped):
		logger.Warn(ctx, "upstream relay not configured, skipping sync")
	case err != nil:
		logger.Error(ctx, "failed to sync upstream relay", "error", err, "error.permanent", retry.IsPermanent(err))
	default:
		logger.Info(ctx, "upstream relay synced")
	}
}

// Ingest decodes body and delivers each transaction once per watch
// identifier subscribed to its address, in registration order. It returns
// the number of successful deliveries.
func (r *Relay) Ingest(ctx context.Context, body []byte) (int, error) {
	txs, err := r.adapter.Parse(ctx, body)
	if err != nil {
		return 0, err
	}

	var delivered int
	for _, tx := range txs {
		tx.Address = r.adapter.Normalize(tx.Address)
		for _, watchID := range r.subs.Lookup(tx.Address) {
			if r.deliver(ctx, watchID, tx) {
				delivered++
			}
		}
	}

	return delivered, nil
}

// deliver calls the sink, isolating its failures and panics from the
// remaining deliveries.
func (r *Relay) deliver(ctx context.Context, watchID string, tx walletwatch.Transaction) (ok bool) {
	ctx = logger.Derive(ctx, "watch.id", watchID, "tx.signature", tx.Signature)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "delivery panicked", "panic", fmt.Sprint(p))
			ok = false
		}
	}()

	if err := r.sink.Deliver(ctx, watchID, tx); err != nil {
		logger.Error(ctx, "delivery failed", "error", err)
		return false
	}

	return true
}

func (r *Relay) handleWebhook(c echo.Context) error {
	ctx := logger.Derive(c.Request().Context(), "chain.name", r.adapter.Chain())

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error(ctx, "failed to read webhook body", "error", err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable body"})
	}

	if !r.adapter.Authenticate(c.Request().Header, body) {
		logger.Warn(ctx, "rejected webhook delivery", "error", walletwatch.ErrUnauthorizedDelivery)
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	delivered, err := r.Ingest(ctx, body)
	if err != nil {
		logger.Error(ctx, "failed to process webhook", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	logger.Debug(ctx, "webhook processed", "deliveries", delivered)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// Run serves the listener on host:port until ctx is canceled, then shuts it
// down gracefully.
func (r *Relay) Run(ctx context.Context, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	ctx = logger.Derive(ctx, "chain.name", r.adapter.Chain(), "server.address", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.echo.Start(addr)
	}()

	logger.Info(ctx, "webhook listener started")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.shutdownTimeout)
	defer cancel()

	logger.Info(ctx, "stopping webhook listener")
	if err := r.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
