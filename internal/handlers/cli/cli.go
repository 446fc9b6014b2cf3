package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletregistry"
	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

const (
	appName           = "walletwatch"
	defaultConfigPath = "config.yaml"
)

// RegistryFactory builds the walletregistry service used by the watch
// commands. The returned close function releases whatever the service holds.
type RegistryFactory func(ctx context.Context, cfg config.Config, reg walletwatch.Registries) (walletregistry.Service, func() error, error)

type options struct {
	registries    walletwatch.Registries
	watchRegistry RegistryFactory
	version       string
	output        io.Writer
}

// Option customizes Run.
type Option func(*options)

// WithRegistries sets the provider registries every command resolves
// chains, notifiers and storage from.
func WithRegistries(reg walletwatch.Registries) Option {
	return func(o *options) {
		o.registries = reg
	}
}

// WithWatchRegistry replaces the storage backed walletregistry service.
func WithWatchRegistry(f RegistryFactory) Option {
	return func(o *options) {
		o.watchRegistry = f
	}
}

// WithVersion sets the version reported by --version and telemetry.
func WithVersion(version string) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithOutput redirects command output, which defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

type app struct {
	options
}

// Run initializes and executes the walletwatch CLI application with args,
// where args[0] is the program name.
//
// It registers all available commands, including:
//
//   - `start`: Runs the webhook listeners and notification pipeline.
//   - `validate`, `init`, `health`: Configuration and liveness helpers.
//   - `check`, `balance`: Address checks against a chain provider.
//   - `watch`: Adds, removes and lists stored watches.
//   - `transactions`: Lists stored transactions.
func Run(ctx context.Context, args []string, opts ...Option) error {
	a := &app{options: options{
		registries: walletwatch.NewRegistries(),
		version:    "dev",
		output:     os.Stdout,
	}}
	for _, opt := range opts {
		opt(&a.options)
	}

	if a.watchRegistry == nil {
		a.watchRegistry = storageWatchRegistry
	}

	cmd := &cli.Command{
		EnableShellCompletion: true,
		Name:                  appName,
		Version:               a.version,
		Usage:                 "Watch wallet addresses and get notified about their transactions.",
		Writer:                a.output,
		ErrWriter:             a.output,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaultConfigPath,
				Usage:   "Path to the configuration file",
				Sources: cli.EnvVars("WALLETWATCH_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Overrides log.level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			a.startCommand(),
			a.validateCommand(),
			a.healthCommand(),
			a.initCommand(),
			a.checkCommand(),
			a.balanceCommand(),
			a.watchCommand(),
			a.transactionsCommand(),
		},
	}

	return cmd.Run(ctx, args)
}

// loadConfig reads the file named by --config, falling back to the built-in
// defaults when it does not exist, and initializes the logger.
func (a *app) loadConfig(ctx context.Context, c *cli.Command) (config.Config, error) {
	path := c.String("config")

	cfg, err := config.Load(path)
	missing := errors.Is(err, config.ErrNotFound)
	if missing {
		cfg = config.Default()
		err = config.ApplyEnv(&cfg)
	}
	if err != nil {
		return config.Config{}, err
	}

	level := c.String("log-level")
	if level == "" {
		level = cfg.Log.Level
	}
	if err := logger.Init(level); err != nil {
		return config.Config{}, fmt.Errorf("init logger: %w", err)
	}

	if missing {
		logger.Warn(ctx, "config file not found, using defaults", "config.path", path)
	}

	return cfg, nil
}

// chainProvider builds the provider registered for chain, configured from
// cfg when the chain is listed there. Deliveries are discarded.
func (a *app) chainProvider(ctx context.Context, cfg config.Config, chain string) (walletwatch.ChainProvider, error) {
	factory, err := a.registries.Chains.Lookup(chain)
	if err != nil {
		return nil, err
	}

	chainCfg, ok := lo.Find(cfg.Chains, func(cc config.ChainConfig) bool {
		return cc.Name == chain
	})
	if !ok {
		chainCfg = config.ChainConfig{Name: chain}
	}

	return factory(ctx, chainCfg, cfg.Server, discardSink)
}

// openStorage opens the configured storage backend.
func (a *app) openStorage(ctx context.Context, cfg config.Config) (walletwatch.Storage, error) {
	factory, err := a.registries.Storage.Lookup(cfg.Storage.Type)
	if err != nil {
		return nil, err
	}

	return factory(ctx, cfg.Storage)
}

var discardSink = walletwatch.SinkFunc(func(context.Context, string, walletwatch.Transaction) error {
	return nil
})

func output(c *cli.Command) io.Writer {
	return c.Root().Writer
}
