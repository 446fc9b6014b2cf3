package solana

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/walletwatch/internal/infra/blockchain/relay"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletwatch/internal/pkg/types"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const defaultHeliusAPI = "https://api.helius.xyz"

type (
	// heliusTransfer is a native or token transfer inside an enhanced transaction.
	heliusTransfer struct {
		FromUserAccount string `json:"fromUserAccount"`
		ToUserAccount   string `json:"toUserAccount"`
	}

	// heliusTransaction is one enhanced transaction delivered by a Helius webhook.
	heliusTransaction struct {
		Signature   string   `json:"signature"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Timestamp   *int64   `json:"timestamp"`
		AmountUSD   *float64 `json:"amount_usd"`
		AccountData []struct {
			Account string `json:"account"`
		} `json:"accountData"`
		NativeTransfers []heliusTransfer `json:"nativeTransfers"`
		TokenTransfers  []heliusTransfer `json:"tokenTransfers"`
	}

	// heliusWebhook is the body of a webhook edit request.
	heliusWebhook struct {
		WebhookURL       string   `json:"webhookURL"`
		TransactionTypes []string `json:"transactionTypes"`
		AccountAddresses []string `json:"accountAddresses"`
		WebhookType      string   `json:"webhookType"`
		AuthHeader       string   `json:"authHeader,omitempty"`
	}
)

// addresses lists every account involved in the transaction, in order of
// first appearance and without duplicates.
func (t heliusTransaction) addresses() []string {
	seen := types.NewOrderedSet[string]()
	add := func(address string) {
		if address != "" {
			seen.Add(address)
		}
	}

	for _, acc := range t.AccountData {
		add(acc.Account)
	}
	for _, transfer := range t.NativeTransfers {
		add(transfer.FromUserAccount)
		add(transfer.ToUserAccount)
	}
	for _, transfer := range t.TokenTransfers {
		add(transfer.FromUserAccount)
		add(transfer.ToUserAccount)
	}

	return seen.Values()
}

// toTransactions builds one normalized transaction per involved address.
func (t heliusTransaction) toTransactions(raw map[string]any) []walletwatch.Transaction {
	txType := t.Type
	if txType == "" {
		txType = "unknown"
	}

	var timestamp *time.Time
	if t.Timestamp != nil && *t.Timestamp > 0 {
		ts := time.Unix(*t.Timestamp, 0).UTC()
		timestamp = &ts
	}

	addresses := t.addresses()
	txs := make([]walletwatch.Transaction, 0, len(addresses))
	for _, address := range addresses {
		txs = append(txs, walletwatch.Transaction{
			Signature:   t.Signature,
			Chain:       chainName,
			Address:     address,
			Type:        txType,
			Description: t.Description,
			AmountUSD:   t.AmountUSD,
			Timestamp:   timestamp,
			Raw:         raw,
		})
	}

	return txs
}

// helius adapts Helius enhanced webhooks to the relay.
type helius struct {
	baseURL    string
	apiKey     string
	webhookID  string
	webhookURL string
	secret     string
	httpClient *retryablehttp.Client
}

var _ relay.Adapter = (*helius)(nil)

func (h *helius) Chain() string {
	return chainName
}

// Normalize keeps Solana addresses as-is: base58 is case sensitive.
func (h *helius) Normalize(address string) string {
	return address
}

// Authenticate compares the Authorization header with the configured secret.
// Without a secret every delivery is accepted.
func (h *helius) Authenticate(header http.Header, _ []byte) bool {
	if h.secret == "" {
		return true
	}

	return subtle.ConstantTimeCompare([]byte(header.Get("Authorization")), []byte(h.secret)) == 1
}

// splitItems accepts a single JSON object or an array of objects.
func splitItems(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return []json.RawMessage{trimmed}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}

	return items, nil
}

func (h *helius) Parse(ctx context.Context, body []byte) ([]walletwatch.Transaction, error) {
	items, err := splitItems(body)
	if err != nil {
		return nil, err
	}

	var txs []walletwatch.Transaction
	for i, item := range items {
		var (
			tx  heliusTransaction
			raw map[string]any
		)
		if err := json.Unmarshal(item, &tx); err != nil {
			logger.Error(ctx, "skipping malformed transaction", "item.index", i, "error", err)
			continue
		}
		if err := json.Unmarshal(item, &raw); err != nil {
			logger.Error(ctx, "skipping malformed transaction", "item.index", i, "error", err)
			continue
		}

		txs = append(txs, tx.toTransactions(raw)...)
	}

	return txs, nil
}

// Sync replaces the account list of the configured Helius webhook.
func (h *helius) Sync(ctx context.Context, addresses []string) error {
	if h.webhookID == "" || h.apiKey == "" {
		return relay.ErrSyncSkipped
	}

	if addresses == nil {
		addresses = []string{}
	}

	body, err := json.Marshal(heliusWebhook{
		WebhookURL:       h.webhookURL,
		TransactionTypes: []string{"Any"},
		AccountAddresses: addresses,
		WebhookType:      "enhanced",
		AuthHeader:       h.secret,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v0/webhooks/%s?api-key=%s", h.baseURL, url.PathEscape(h.webhookID), url.QueryEscape(h.apiKey))
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", walletwatch.ErrTransportFailure, err)
	}
	defer res.Body.Close()

	if relay.Rejected(res.StatusCode) {
		return retry.Permanent(fmt.Errorf("%w: helius webhook update rejected with %s", walletwatch.ErrTransportFailure, res.Status))
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: helius webhook update returned %s", walletwatch.ErrTransportFailure, res.Status)
	}

	return nil
}
