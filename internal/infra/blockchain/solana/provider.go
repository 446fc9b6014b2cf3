// Package solana implements the walletwatch chain provider for Solana, fed by
// Helius enhanced webhooks and queried through Solana JSON-RPC.
package solana

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/infra/blockchain/relay"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	httptransport "github.com/gabapcia/walletwatch/internal/pkg/transport/http"
	"github.com/gabapcia/walletwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	chainName = "solana"

	// lamportsDecimals is the exponent between lamports and SOL.
	lamportsDecimals = 9

	defaultRPCURL = "https://mainnet.helius-rpc.com/?api-key="
)

type (
	balanceResponse struct {
		Value uint64 `json:"value"`
	}

	signatureResponse struct {
		Signature string          `json:"signature"`
		Slot      uint64          `json:"slot"`
		Err       json.RawMessage `json:"err"`
		Memo      *string         `json:"memo"`
		BlockTime *int64          `json:"blockTime"`
	}
)

func (s signatureResponse) toSignatureInfo() walletwatch.SignatureInfo {
	info := walletwatch.SignatureInfo{
		Signature: s.Signature,
		Slot:      s.Slot,
		Failed:    len(s.Err) > 0 && string(s.Err) != "null",
	}

	if s.Memo != nil {
		info.Memo = *s.Memo
	}

	if s.BlockTime != nil {
		t := time.Unix(*s.BlockTime, 0).UTC()
		info.BlockTime = &t
	}

	return info
}

// Provider is the Solana chain provider.
type Provider struct {
	*relay.Relay

	rpc jsonrpc.Client
}

var (
	_ walletwatch.ChainProvider = (*Provider)(nil)
	_ walletwatch.SyncHolder    = (*Provider)(nil)
)

type options struct {
	rpc        jsonrpc.Client
	heliusAPI  string
	httpClient *retryablehttp.Client
	relayOpts  []relay.Option
}

// Option customizes New.
type Option func(*options)

// WithRPCClient replaces the JSON-RPC client built from the chain's rpc_url.
func WithRPCClient(c jsonrpc.Client) Option {
	return func(o *options) {
		o.rpc = c
	}
}

// WithHeliusAPI overrides the Helius REST API base URL.
func WithHeliusAPI(baseURL string) Option {
	return func(o *options) {
		o.heliusAPI = baseURL
	}
}

// WithHTTPClient sets the client used for Helius API calls.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithRelayOptions forwards options to the webhook relay.
func WithRelayOptions(opts ...relay.Option) Option {
	return func(o *options) {
		o.relayOpts = append(o.relayOpts, opts...)
	}
}

// New builds the provider for cfg. The webhook secret falls back to the
// server secret when the chain does not set one.
func New(cfg config.ChainConfig, server config.ServerConfig, sink walletwatch.Sink, opts ...Option) *Provider {
	o := options{heliusAPI: defaultHeliusAPI}
	for _, opt := range opts {
		opt(&o)
	}

	if o.httpClient == nil {
		o.httpClient = httptransport.NewClient()
	}

	if o.rpc == nil {
		rpcURL := cfg.RPCURL
		if rpcURL == "" {
			rpcURL = defaultRPCURL + cfg.APIKey
		}
		o.rpc = jsonrpc.NewClient(rpcURL, jsonrpc.WithHTTPClient(o.httpClient))
	}

	secret := cfg.WebhookSecret
	if secret == "" {
		secret = server.Secret
	}

	adapter := &helius{
		baseURL:    o.heliusAPI,
		apiKey:     cfg.APIKey,
		webhookID:  cfg.WebhookID,
		webhookURL: cfg.WebhookURL,
		secret:     secret,
		httpClient: o.httpClient,
	}

	return &Provider{
		Relay: relay.New(adapter, sink, o.relayOpts...),
		rpc:   o.rpc,
	}
}

// Factory builds the provider from configuration for the chain registry.
func Factory(_ context.Context, cfg config.ChainConfig, server config.ServerConfig, sink walletwatch.Sink) (walletwatch.ChainProvider, error) {
	return New(cfg, server, sink), nil
}

func (p *Provider) Name() string {
	return chainName
}

// ValidateAddress reports whether address decodes to a 32 byte public key.
func (p *Provider) ValidateAddress(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

func (p *Provider) Subscribe(ctx context.Context, address, watchID string) error {
	if !p.ValidateAddress(address) {
		return walletwatch.InvalidAddressError(chainName, address)
	}

	p.Relay.Subscribe(ctx, address, watchID)
	return nil
}

// GetBalance returns the SOL balance of address.
func (p *Provider) GetBalance(ctx context.Context, address string) decimal.Decimal {
	var res balanceResponse
	if err := p.rpc.Call(ctx, &res, "getBalance", address); err != nil {
		logger.Error(ctx, "failed to get balance", "chain.name", chainName, "watch.address", address, "error", err)
		return decimal.Zero
	}

	return decimal.NewFromBigInt(new(big.Int).SetUint64(res.Value), -lamportsDecimals)
}

// RecentSignatures lists the latest signatures involving address.
func (p *Provider) RecentSignatures(ctx context.Context, address string, limit int) []walletwatch.SignatureInfo {
	var res []signatureResponse
	if err := p.rpc.Call(ctx, &res, "getSignaturesForAddress", address, map[string]int{"limit": limit}); err != nil {
		logger.Error(ctx, "failed to get signatures", "chain.name", chainName, "watch.address", address, "error", err)
		return nil
	}

	infos := make([]walletwatch.SignatureInfo, len(res))
	for i, s := range res {
		infos[i] = s.toSignatureInfo()
	}

	return infos
}
