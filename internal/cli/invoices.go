package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"localpay-gateway/internal/app"
	"localpay-gateway/internal/core/domain"
	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/apperror"

	"github.com/spf13/cobra"
)

func newInvoicesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "Read invoices from the ledger state store",
	}
	cmd.AddCommand(newInvoicesListCmd(opts))
	cmd.AddCommand(newInvoicesShowCmd(opts))
	return cmd
}

func newInvoicesListCmd(opts *rootOptions) *cobra.Command {
	var (
		status  string
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" && !domain.InvoiceStatus(status).Valid() {
				return fmt.Errorf("invalid --status %q: must be pending, paid, or failed", status)
			}

			state, err := loadState(cmd, opts)
			if err != nil {
				return err
			}

			var out []domain.Invoice
			for _, inv := range state.Invoices {
				if status != "" && string(inv.Status) != status {
					continue
				}
				out = append(out, inv)
				if limit > 0 && len(out) == limit {
					break
				}
			}

			if jsonOut {
				if out == nil {
					out = []domain.Invoice{}
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tAMOUNT\tMERCHANT\tCREATED\tPROOF")
			for _, inv := range out {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					inv.ID, inv.Status, inv.Amount.String(), inv.Merchant,
					time.UnixMilli(inv.CreatedAt).UTC().Format(time.RFC3339), inv.TransactionHash)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d invoice(s)\n", len(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only pending, paid, or failed invoices")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum invoices to print (0 = all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	return cmd
}

func newInvoicesShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one invoice as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState(cmd, opts)
			if err != nil {
				return err
			}
			for _, inv := range state.Invoices {
				if inv.ID == args[0] {
					return writeJSON(cmd.OutOrStdout(), inv)
				}
			}
			return apperror.ErrInvoiceNotFound(args[0])
		},
	}
}

// loadState reads the persisted ledger. A store with nothing saved yields an
// empty state.
func loadState(cmd *cobra.Command, opts *rootOptions) (domain.State, error) {
	cfg, log, err := opts.load()
	if err != nil {
		return domain.State{}, err
	}
	ctx := commandContext(cmd)

	rdb, err := app.OpenRedis(ctx, cfg, log)
	if err != nil {
		return domain.State{}, fmt.Errorf("connecting to redis: %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	store, _, err := app.StateStore(cfg, rdb, log)
	if err != nil {
		return domain.State{}, err
	}
	state, err := store.Load(ctx)
	if errors.Is(err, ports.ErrStateNotFound) {
		return domain.State{}.Normalize(), nil
	}
	return state, err
}
