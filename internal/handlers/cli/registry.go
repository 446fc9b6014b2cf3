package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/walletregistry"
	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

// storageWatchRegistry is the default RegistryFactory: a walletregistry
// service over the configured storage, validating addresses with the
// configured chains.
func storageWatchRegistry(ctx context.Context, cfg config.Config, reg walletwatch.Registries) (walletregistry.Service, func() error, error) {
	factory, err := reg.Storage.Lookup(cfg.Storage.Type)
	if err != nil {
		return nil, nil, err
	}

	storage, err := factory(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	chains := make(walletregistry.Chains, len(cfg.Chains))
	for _, cc := range cfg.Chains {
		ctx := logger.Derive(ctx, "chain.name", cc.Name)

		chainFactory, err := reg.Chains.Lookup(cc.Name)
		if err != nil {
			logger.Warn(ctx, "chain unavailable for watch validation", "error", err)
			continue
		}

		provider, err := chainFactory(ctx, cc, cfg.Server, discardSink)
		if err != nil {
			logger.Warn(ctx, "chain unavailable for watch validation", "error", err)
			continue
		}

		chains[cc.Name] = provider
	}

	return walletregistry.New(storage, chains), storage.Close, nil
}

// withWatchRegistry loads the configuration, builds the walletregistry
// service and runs fn with it.
func (a *app) withWatchRegistry(ctx context.Context, c *cli.Command, fn func(walletregistry.Service, config.Config) error) error {
	cfg, err := a.loadConfig(ctx, c)
	if err != nil {
		return err
	}

	wr, closeFn, err := a.watchRegistry(ctx, cfg, a.registries)
	if err != nil {
		return err
	}
	defer func() {
		if closeFn == nil {
			return
		}
		if err := closeFn(); err != nil {
			logger.Error(ctx, "failed to close watch registry", "error", err)
		}
	}()

	return fn(wr, cfg)
}

// watchCommand groups the commands managing stored watches. Stored watches
// are merged with the configured ones the next time the pipeline starts.
func (a *app) watchCommand() *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Manage the watches kept in storage. Changes apply on the next start.",
		Usage:       "Adds, removes and lists watched addresses.",
		Commands: []*cli.Command{
			a.startWatchingWalletCommand(),
			a.stopWatchingWalletCommand(),
			a.listWatchesCommand(),
		},
	}
}

// startWatchingWalletCommand registers an address for monitoring.
//
// Usage example:
//
//	walletwatch watch add --chain ethereum --label Treasury --notify telegram 0xABC123...
func (a *app) startWatchingWalletCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Registers a wallet address for watching.",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:  "label",
				Usage: "Human readable wallet name used in notifications",
			},
			&cli.StringSliceFlag{
				Name:  "notify",
				Usage: "Notifier to alert, in order. Defaults to every configured notifier",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressArg(c)
			if err != nil {
				return err
			}

			return a.withWatchRegistry(ctx, c, func(wr walletregistry.Service, cfg config.Config) error {
				notify := c.StringSlice("notify")
				if len(notify) == 0 {
					notify = lo.Map(cfg.Notifiers, func(n config.NotifierConfig, _ int) string {
						return n.Type
					})
				}

				w, err := wr.StartWatching(ctx, walletregistry.WatchRequest{
					Chain:   c.String("chain"),
					Address: address,
					Label:   c.String("label"),
					Notify:  notify,
				})
				if err != nil {
					return err
				}

				_, err = fmt.Fprintf(output(c), "Watching %s on %s\n", w.Address, w.Chain)
				return err
			})
		},
	}
}

// stopWatchingWalletCommand removes a stored watch.
//
// Usage example:
//
//	walletwatch watch remove 0xABC123...
func (a *app) stopWatchingWalletCommand() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Stops watching a wallet address.",
		ArgsUsage: "<address>",
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressArg(c)
			if err != nil {
				return err
			}

			return a.withWatchRegistry(ctx, c, func(wr walletregistry.Service, _ config.Config) error {
				if err := wr.StopWatching(ctx, address); err != nil {
					return err
				}

				_, err := fmt.Fprintf(output(c), "Stopped watching %s\n", address)
				return err
			})
		},
	}
}

func (a *app) listWatchesCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Lists stored watches.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "chain",
				Usage: "Only list watches on this chain",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return a.withWatchRegistry(ctx, c, func(wr walletregistry.Service, _ config.Config) error {
				watches, err := wr.ListWatches(ctx, c.String("chain"))
				if err != nil {
					return err
				}

				if len(watches) == 0 {
					_, err := fmt.Fprintln(output(c), "No watches")
					return err
				}

				tw := tabwriter.NewWriter(output(c), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ADDRESS\tCHAIN\tLABEL\tNOTIFY")
				for _, w := range watches {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", w.Address, w.Chain, dash(w.Label), dash(strings.Join(w.Notify, ",")))
				}

				return tw.Flush()
			})
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
