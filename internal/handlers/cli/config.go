package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/walletwatch/internal/config"

	"github.com/urfave/cli/v3"
)

// validateCommand loads the configuration without falling back to
// defaults and reports what it declares.
func (a *app) validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validates the configuration file.",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("config invalid: %w", err)
			}

			_, err = fmt.Fprintf(output(c), "Config valid: %d chains, %d notifiers, %d watches\n",
				len(cfg.Chains), len(cfg.Notifiers), len(cfg.Watches))
			return err
		},
	}
}

// healthCommand is the container liveness probe.
func (a *app) healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "Prints OK. Used as a container health check.",
		Action: func(ctx context.Context, c *cli.Command) error {
			_, err := fmt.Fprintln(output(c), "OK")
			return err
		},
	}
}

// initCommand writes the example configuration to the --config path.
//
// Usage example:
//
//	walletwatch --config ./config.yaml init --force
func (a *app) initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Writes an example configuration file.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing file",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.String("config")

			if err := config.WriteExample(path, c.Bool("force")); err != nil {
				if errors.Is(err, config.ErrExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			_, err := fmt.Fprintf(output(c), "Created %s\n", path)
			return err
		},
	}
}
