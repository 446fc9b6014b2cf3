package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/walletwatch/internal/walletwatch"

	"github.com/urfave/cli/v3"
)

const defaultChain = "solana"

// ErrMissingAddress is returned when a command expecting an address argument
// receives none.
var ErrMissingAddress = errors.New("address argument is required")

var nativeSymbols = map[string]string{
	"solana":   "SOL",
	"ethereum": "ETH",
}

func nativeSymbol(chain string) string {
	if symbol, ok := nativeSymbols[chain]; ok {
		return symbol
	}

	return strings.ToUpper(chain)
}

func chainFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "chain",
		Value: defaultChain,
		Usage: "Blockchain name (e.g., solana, ethereum)",
	}
}

func addressArg(c *cli.Command) (string, error) {
	address := strings.TrimSpace(c.Args().First())
	if address == "" {
		return "", ErrMissingAddress
	}

	return address, nil
}

// checkCommand reports whether an address is well formed for a chain.
//
// Usage example:
//
//	walletwatch check --chain ethereum 0xABC123...
func (a *app) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Checks whether an address is valid for a chain.",
		ArgsUsage: "<address>",
		Flags:     []cli.Flag{chainFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressArg(c)
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig(ctx, c)
			if err != nil {
				return err
			}

			chain := c.String("chain")
			provider, err := a.chainProvider(ctx, cfg, chain)
			if err != nil {
				return err
			}

			if !provider.ValidateAddress(address) {
				return walletwatch.InvalidAddressError(chain, address)
			}

			_, err = fmt.Fprintf(output(c), "Valid %s address: %s\n", chain, address)
			return err
		},
	}
}

// balanceCommand prints the native balance of an address and, on request,
// its most recent transaction signatures.
//
// Usage example:
//
//	walletwatch balance --chain solana --recent 5 So1111...
func (a *app) balanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "balance",
		Usage:     "Prints the native token balance of an address.",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.IntFlag{
				Name:  "recent",
				Usage: "Also list this many recent transaction signatures",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := addressArg(c)
			if err != nil {
				return err
			}

			cfg, err := a.loadConfig(ctx, c)
			if err != nil {
				return err
			}

			chain := c.String("chain")
			provider, err := a.chainProvider(ctx, cfg, chain)
			if err != nil {
				return err
			}

			if !provider.ValidateAddress(address) {
				return walletwatch.InvalidAddressError(chain, address)
			}

			w := output(c)
			balance := provider.GetBalance(ctx, address)
			if _, err := fmt.Fprintf(w, "Balance: %s %s\n", balance.String(), nativeSymbol(chain)); err != nil {
				return err
			}

			recent := c.Int("recent")
			if recent <= 0 {
				return nil
			}

			for _, sig := range provider.RecentSignatures(ctx, address, recent) {
				status := "ok"
				if sig.Failed {
					status = "failed"
				}

				when := "-"
				if sig.BlockTime != nil {
					when = sig.BlockTime.UTC().Format(time.RFC3339)
				}

				if _, err := fmt.Fprintf(w, "%s  %s  %s\n", sig.Signature, when, status); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
