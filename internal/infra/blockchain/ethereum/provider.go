// Package ethereum implements the walletwatch chain provider for Ethereum,
// fed by Alchemy address activity webhooks and queried through Ethereum
// JSON-RPC.
package ethereum

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
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
	chainName = "ethereum"

	// weiDecimals is the exponent between wei and ether.
	weiDecimals = 18

	defaultRPCURL = "https://eth-mainnet.g.alchemy.com/v2/"
)

// Provider is the Ethereum chain provider.
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
	alchemyAPI string
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

// WithAlchemyAPI overrides the Alchemy dashboard API base URL.
func WithAlchemyAPI(baseURL string) Option {
	return func(o *options) {
		o.alchemyAPI = baseURL
	}
}

// WithHTTPClient sets the client used for Alchemy API calls.
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

// New builds the provider for cfg. The api key authenticates both JSON-RPC
// and webhook management calls; the webhook secret is the signing key of
// the Alchemy webhook and falls back to the server secret.
func New(cfg config.ChainConfig, server config.ServerConfig, sink walletwatch.Sink, opts ...Option) *Provider {
	o := options{alchemyAPI: defaultAlchemyAPI}
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

	signingKey := cfg.WebhookSecret
	if signingKey == "" {
		signingKey = server.Secret
	}

	adapter := &alchemy{
		baseURL:    o.alchemyAPI,
		authToken:  cfg.APIKey,
		webhookID:  cfg.WebhookID,
		signingKey: signingKey,
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

// ValidateAddress reports whether address is a 20 byte hex address, with or
// without the 0x prefix.
func (p *Provider) ValidateAddress(address string) bool {
	return common.IsHexAddress(address)
}

func (p *Provider) Subscribe(ctx context.Context, address, watchID string) error {
	if !p.ValidateAddress(address) {
		return walletwatch.InvalidAddressError(chainName, address)
	}

	p.Relay.Subscribe(ctx, address, watchID)
	return nil
}

// GetBalance returns the ether balance of address at the latest block.
func (p *Provider) GetBalance(ctx context.Context, address string) decimal.Decimal {
	var res string
	if err := p.rpc.Call(ctx, &res, "eth_getBalance", address, "latest"); err != nil {
		logger.Error(ctx, "failed to get balance", "chain.name", chainName, "watch.address", address, "error", err)
		return decimal.Zero
	}

	wei, err := hexutil.DecodeBig(res)
	if err != nil {
		logger.Error(ctx, "failed to decode balance", "chain.name", chainName, "watch.address", address, "error", err)
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei, -weiDecimals)
}

// RecentSignatures is not backed by a standard Ethereum RPC and always
// returns an empty list.
func (p *Provider) RecentSignatures(ctx context.Context, address string, _ int) []walletwatch.SignatureInfo {
	logger.Debug(ctx, "recent signatures not supported", "chain.name", chainName, "watch.address", address)
	return nil
}
