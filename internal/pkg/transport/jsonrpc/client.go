// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP used to query chain
// nodes (balances, recent signatures). Requests go through a retryable HTTP
// client so transient node failures are retried transparently.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	httptransport "github.com/gabapcia/walletwatch/internal/pkg/transport/http"
)

var (
	// ErrProviderReturnedError indicates that the node answered with a
	// JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedResponse indicates that the node answered with something
	// other than a JSON-RPC response for the request.
	ErrUnexpectedResponse = errors.New("unexpected rpc response")
)

// Error is the error object of a JSON-RPC response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrProviderReturnedError
}

type request struct {
	Version string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	ID     any             `json:"id"`
	Error  *Error          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Client sends JSON-RPC requests to a single node endpoint.
type Client interface {
	// Call invokes method with params and decodes the result into out. A
	// null result leaves out untouched.
	Call(ctx context.Context, out any, method string, params ...any) error
}

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

var _ Client = (*client)(nil)

func (c *client) Call(ctx context.Context, out any, method string, params ...any) error {
	if params == nil {
		params = []any{}
	}

	id := uuid.NewString()
	body, err := json.Marshal(request{Version: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("%w: %s", ErrUnexpectedResponse, res.Status)
		}
		return err
	}

	// Some nodes send error objects with a non-2xx status.
	if data.Error != nil {
		return data.Error
	}

	switch {
	case res.StatusCode >= http.StatusMultipleChoices:
		return fmt.Errorf("%w: %s", ErrUnexpectedResponse, res.Status)
	case data.ID != nil && data.ID != id:
		return fmt.Errorf("%w: id %v does not match request %s", ErrUnexpectedResponse, data.ID, id)
	}

	if out == nil || len(data.Result) == 0 || bytes.Equal(data.Result, []byte("null")) {
		return nil
	}

	return json.Unmarshal(data.Result, out)
}

type config struct {
	httpOpts   []httptransport.Option
	httpClient *retryablehttp.Client
}

// Option configures NewClient.
type Option func(*config)

// NewClient returns a Client for endpoint. Unless WithHTTPClient is given, the
// transport is built by the shared http transport package with any options
// supplied through WithHTTPOptions.
func NewClient(endpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = httptransport.NewClient(cfg.httpOpts...)
	}

	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// WithHTTPClient uses an already configured retryable client.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithHTTPOptions forwards options to the underlying http transport.
func WithHTTPOptions(opts ...httptransport.Option) Option {
	return func(cfg *config) {
		cfg.httpOpts = append(cfg.httpOpts, opts...)
	}
}
