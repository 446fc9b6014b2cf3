// Package config loads the walletwatch configuration document. Values are
// read from YAML, may reference environment variables as ${VAR} or
// ${VAR:-default}, can be overridden by WALLETWATCH_* variables and are
// validated before use.
package config

import (
	"os"
	"time"
)

// DefaultNotifierTimeout bounds every outbound notifier call.
const DefaultNotifierTimeout = 10 * time.Second

// Config is the root configuration document.
type Config struct {
	Chains    []ChainConfig    `yaml:"chains" validate:"dive"`
	Notifiers []NotifierConfig `yaml:"notifiers" validate:"dive"`
	Watches   []WatchConfig    `yaml:"watches" validate:"dive"`
	Filters   FilterConfig     `yaml:"filters"`
	Storage   StorageConfig    `yaml:"storage"`
	Server    ServerConfig     `yaml:"server"`
	Log       LogConfig        `yaml:"log"`
	Telemetry TelemetryConfig  `yaml:"telemetry"`
}

// ChainConfig configures one chain provider.
type ChainConfig struct {
	Name          string `yaml:"name" validate:"required"`
	Provider      string `yaml:"provider"`
	APIKey        string `yaml:"api_key"`
	RPCURL        string `yaml:"rpc_url" validate:"omitempty,url"`
	WebhookURL    string `yaml:"webhook_url" validate:"omitempty,url"`
	WebhookID     string `yaml:"webhook_id"`
	WebhookSecret string `yaml:"webhook_secret"`

	// Port of this chain's webhook listener. Zero derives it from the server
	// port and the chain's position in the list.
	Port int `yaml:"port" validate:"omitempty,min=1,max=65535"`
}

// NotifierConfig configures one notifier. Only the fields relevant to Type are read.
type NotifierConfig struct {
	Type    string        `yaml:"type" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"min=0"`

	// telegram
	BotToken  string  `yaml:"bot_token"`
	ChatID    string  `yaml:"chat_id"`
	Polling   bool    `yaml:"polling"`
	RateLimit float64 `yaml:"rate_limit" validate:"min=0"`

	// webhook
	WebhookURL string            `yaml:"webhook_url" validate:"omitempty,url"`
	Method     string            `yaml:"method" validate:"omitempty,oneof=GET POST get post"`
	Headers    map[string]string `yaml:"headers"`

	// nats and kafka
	URL     string   `yaml:"url"`
	Subject string   `yaml:"subject"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// WatchConfig declares an address to monitor.
type WatchConfig struct {
	Address string              `yaml:"address" validate:"required"`
	Chain   string              `yaml:"chain" validate:"required"`
	Label   string              `yaml:"label"`
	Notify  []string            `yaml:"notify"`
	Filters WatchFilterOverride `yaml:"filters"`
}

// WatchFilterOverride replaces global filter values for a single watch.
type WatchFilterOverride struct {
	MinUSDValue *float64 `yaml:"min_usd_value" validate:"omitempty,min=0"`
	TxTypes     []string `yaml:"tx_types"`
}

// FilterConfig holds the global notification filter.
type FilterConfig struct {
	MinUSDValue float64  `yaml:"min_usd_value" validate:"min=0"`
	TxTypes     []string `yaml:"tx_types"`

	// StoreFiltered persists events rejected by the filter.
	StoreFiltered bool `yaml:"store_filtered"`
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	Type string `yaml:"type" validate:"required,oneof=badger postgres redis"`

	// Path is the badger data directory.
	Path string `yaml:"path"`

	// URL is the postgres DSN or redis URL.
	URL string `yaml:"url"`
}

// ServerConfig configures the inbound webhook listeners.
type ServerConfig struct {
	Host   string `yaml:"host" validate:"required"`
	Port   int    `yaml:"port" validate:"min=1,max=65535"`
	Secret string `yaml:"secret"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// TelemetryConfig configures OpenTelemetry export.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns the configuration used when no file is present: a Helius
// backed Solana provider and a Telegram notifier, both fed from the
// environment.
func Default() Config {
	cfg := base()
	cfg.Chains = []ChainConfig{{
		Name:          "solana",
		Provider:      "helius",
		APIKey:        os.Getenv("HELIUS_API_KEY"),
		WebhookID:     os.Getenv("HELIUS_WEBHOOK_ID"),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),
	}}
	cfg.Notifiers = []NotifierConfig{{
		Type:     "telegram",
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}}
	cfg.applyDefaults()

	return cfg
}

// base holds the scalar defaults shared by Default and Load.
func base() Config {
	return Config{
		Storage: StorageConfig{
			Type: "badger",
			Path: "./data/walletwatch",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "walletwatch",
		},
	}
}

// applyDefaults fills per-entry defaults that cannot be expressed in base.
func (c *Config) applyDefaults() {
	for i := range c.Notifiers {
		if c.Notifiers[i].Timeout == 0 {
			c.Notifiers[i].Timeout = DefaultNotifierTimeout
		}
	}
}
