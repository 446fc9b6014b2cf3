package ethereum

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/walletwatch/internal/infra/blockchain/relay"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletwatch/internal/pkg/types"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	defaultAlchemyAPI = "https://dashboard.alchemy.com"

	signatureHeader = "X-Alchemy-Signature"
	tokenHeader     = "X-Alchemy-Token"
)

type (
	// activity is one transfer inside an Alchemy address activity event.
	activity struct {
		FromAddress string          `json:"fromAddress"`
		ToAddress   string          `json:"toAddress"`
		BlockNum    *hexutil.Uint64 `json:"blockNum"`
		Hash        string          `json:"hash"`
		Value       *float64        `json:"value"`
		Asset       string          `json:"asset"`
		Category    string          `json:"category"`
		AmountUSD   *float64        `json:"amountUsd"`
	}

	// addressActivity is the body of an Alchemy address activity webhook.
	addressActivity struct {
		WebhookID string    `json:"webhookId"`
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
		Type      string    `json:"type"`
		Event     struct {
			Network  string            `json:"network"`
			Activity []json.RawMessage `json:"activity"`
		} `json:"event"`
	}

	// activityGroup gathers the activities of one transaction hash.
	activityGroup struct {
		activities []activity
		raw        []any
	}

	// webhookAddresses is the body of a webhook address replacement.
	webhookAddresses struct {
		WebhookID string   `json:"webhook_id"`
		Addresses []string `json:"addresses"`
	}
)

func (a activity) describe() string {
	value := "?"
	if a.Value != nil {
		value = fmt.Sprintf("%g", *a.Value)
	}

	asset := a.Asset
	if asset == "" {
		asset = "ETH"
	}

	return fmt.Sprintf("%s %s from %s to %s", value, asset, a.FromAddress, a.ToAddress)
}

// toTransactions builds one normalized transaction per address involved in
// the group's activities.
func (g activityGroup) toTransactions(hash string, createdAt time.Time) []walletwatch.Transaction {
	var (
		descriptions []string
		amountUSD    *float64
	)

	addresses := types.NewOrderedSet[string]()
	for _, a := range g.activities {
		descriptions = append(descriptions, a.describe())

		if a.AmountUSD != nil {
			sum := *a.AmountUSD
			if amountUSD != nil {
				sum += *amountUSD
			}
			amountUSD = &sum
		}

		for _, address := range []string{a.FromAddress, a.ToAddress} {
			if address != "" {
				addresses.Add(strings.ToLower(address))
			}
		}
	}

	txType := g.activities[0].Category
	if txType == "" {
		txType = "unknown"
	}

	var timestamp *time.Time
	if !createdAt.IsZero() {
		ts := createdAt.UTC()
		timestamp = &ts
	}

	raw := map[string]any{
		"hash":     hash,
		"activity": g.raw,
	}
	if blockNum := g.activities[0].BlockNum; blockNum != nil {
		raw["block_number"] = int64(*blockNum)
	}

	txs := make([]walletwatch.Transaction, 0, addresses.Len())
	for address := range addresses.All() {
		txs = append(txs, walletwatch.Transaction{
			Signature:   hash,
			Chain:       chainName,
			Address:     address,
			Type:        txType,
			Description: strings.Join(descriptions, "; "),
			AmountUSD:   amountUSD,
			Timestamp:   timestamp,
			Raw:         raw,
		})
	}

	return txs
}

// alchemy adapts Alchemy address activity webhooks to the relay.
type alchemy struct {
	baseURL    string
	authToken  string
	webhookID  string
	signingKey string
	httpClient *retryablehttp.Client
}

var _ relay.Adapter = (*alchemy)(nil)

func (a *alchemy) Chain() string {
	return chainName
}

// Normalize lower-cases hex addresses so checksummed and plain forms match.
func (a *alchemy) Normalize(address string) string {
	return strings.ToLower(address)
}

// Authenticate checks the hex HMAC-SHA256 of the body under the signing key.
// Without a signing key every delivery is accepted.
func (a *alchemy) Authenticate(header http.Header, body []byte) bool {
	if a.signingKey == "" {
		return true
	}

	signature, err := hex.DecodeString(header.Get(signatureHeader))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(a.signingKey))
	mac.Write(body)

	return hmac.Equal(signature, mac.Sum(nil))
}

func (a *alchemy) Parse(ctx context.Context, body []byte) ([]walletwatch.Transaction, error) {
	var payload addressActivity
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}

	groups := make(map[string]*activityGroup)
	order := types.NewOrderedSet[string]()

	for i, item := range payload.Event.Activity {
		var (
			act activity
			raw map[string]any
		)
		if err := json.Unmarshal(item, &act); err != nil {
			logger.Error(ctx, "skipping malformed activity", "item.index", i, "error", err)
			continue
		}
		if err := json.Unmarshal(item, &raw); err != nil {
			logger.Error(ctx, "skipping malformed activity", "item.index", i, "error", err)
			continue
		}
		if act.Hash == "" {
			logger.Error(ctx, "skipping activity without hash", "item.index", i)
			continue
		}

		group, ok := groups[act.Hash]
		if !ok {
			group = &activityGroup{}
			groups[act.Hash] = group
			order.Add(act.Hash)
		}

		group.activities = append(group.activities, act)
		group.raw = append(group.raw, raw)
	}

	var txs []walletwatch.Transaction
	for hash := range order.All() {
		txs = append(txs, groups[hash].toTransactions(hash, payload.CreatedAt)...)
	}

	return txs, nil
}

// Sync replaces the address list of the configured Alchemy webhook.
func (a *alchemy) Sync(ctx context.Context, addresses []string) error {
	if a.webhookID == "" || a.authToken == "" {
		return relay.ErrSyncSkipped
	}

	if addresses == nil {
		addresses = []string{}
	}

	body, err := json.Marshal(webhookAddresses{WebhookID: a.webhookID, Addresses: addresses})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPut, a.baseURL+"/api/update-webhook-addresses", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, a.authToken)

	res, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", walletwatch.ErrTransportFailure, err)
	}
	defer res.Body.Close()

	if relay.Rejected(res.StatusCode) {
		return retry.Permanent(fmt.Errorf("%w: alchemy webhook update rejected with %s", walletwatch.ErrTransportFailure, res.Status))
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: alchemy webhook update returned %s", walletwatch.ErrTransportFailure, res.Status)
	}

	return nil
}
