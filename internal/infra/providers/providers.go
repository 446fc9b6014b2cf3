// Package providers wires the built-in chain, notifier and storage
// implementations into the registries used by walletwatch.New.
package providers

import (
	"github.com/gabapcia/walletwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/walletwatch/internal/infra/blockchain/solana"
	"github.com/gabapcia/walletwatch/internal/infra/notifier/kafka"
	"github.com/gabapcia/walletwatch/internal/infra/notifier/nats"
	"github.com/gabapcia/walletwatch/internal/infra/notifier/telegram"
	"github.com/gabapcia/walletwatch/internal/infra/notifier/webhook"
	"github.com/gabapcia/walletwatch/internal/infra/storage/badger"
	"github.com/gabapcia/walletwatch/internal/infra/storage/postgres"
	"github.com/gabapcia/walletwatch/internal/infra/storage/redis"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

// Registries returns registries holding every built-in provider.
func Registries() walletwatch.Registries {
	reg := walletwatch.NewRegistries()

	reg.Chains.
		Register("solana", solana.Factory).
		Register("ethereum", ethereum.Factory)

	reg.Notifiers.
		Register("telegram", telegram.Factory).
		Register("webhook", webhook.Factory).
		Register("nats", nats.Factory).
		Register("kafka", kafka.Factory)

	reg.Storage.
		Register("badger", badger.Factory).
		Register("postgres", postgres.Factory).
		Register("redis", redis.Factory)

	return reg
}
