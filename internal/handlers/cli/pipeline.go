package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	"github.com/gabapcia/walletwatch/internal/pkg/telemetry"
	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/urfave/cli/v3"
)

const telemetryShutdownTimeout = 5 * time.Second

// startCommand returns a CLI command that runs the full pipeline: one
// webhook listener per configured chain feeding the filters, notifiers and
// storage.
//
// Usage example:
//
//	walletwatch --config config.yaml start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or a
// listener fails.
func (a *app) startCommand() *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the webhook listeners and the notification pipeline.",
		Usage:       "Runs the pipeline. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := a.loadConfig(ctx, c)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Telemetry.Enabled {
				shutdown, err := a.initTelemetry(ctx, cfg.Telemetry)
				if err != nil {
					return err
				}
				defer shutdown()
			}

			err = walletwatch.New(ctx, cfg, a.registries).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}
}

func (a *app) initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (func(), error) {
	opts := []telemetry.Option{
		telemetry.WithInsecure(cfg.Insecure),
		telemetry.WithServiceVersion(a.version),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, telemetry.WithEndpoint(cfg.Endpoint))
	}

	shutdown, err := telemetry.Init(ctx, cfg.ServiceName, opts...)
	if err != nil {
		return nil, err
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryShutdownTimeout)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			logger.Error(ctx, "failed to shut down telemetry", "error", err)
		}
	}, nil
}
