package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/walletwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

const defaultTransactionLimit = 20

// transactionsCommand lists stored transactions, newest first.
//
// Usage example:
//
//	walletwatch transactions --address So1111... --limit 10
func (a *app) transactionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "transactions",
		Usage: "Lists stored transactions, newest first.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "Only list transactions of this address",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: defaultTransactionLimit,
				Usage: "Maximum number of transactions to list; 0 lists all",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := a.loadConfig(ctx, c)
			if err != nil {
				return err
			}

			storage, err := a.openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := storage.Close(); err != nil {
					logger.Error(ctx, "failed to close storage", "error", err)
				}
			}()

			txs, err := storage.GetTransactions(ctx, c.String("address"), c.Int("limit"))
			if err != nil {
				return err
			}

			if len(txs) == 0 {
				_, err := fmt.Fprintln(output(c), "No transactions")
				return err
			}

			tw := tabwriter.NewWriter(output(c), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SIGNATURE\tCHAIN\tADDRESS\tTYPE\tUSD\tTIME")
			for _, tx := range txs {
				usd := "-"
				if tx.AmountUSD != nil {
					usd = fmt.Sprintf("%.2f", *tx.AmountUSD)
				}

				when := tx.CreatedAt
				if tx.Timestamp != nil {
					when = *tx.Timestamp
				}

				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.Signature, tx.Chain, tx.Address, tx.Type, usd, when.UTC().Format(time.RFC3339))
			}

			return tw.Flush()
		},
	}
}
