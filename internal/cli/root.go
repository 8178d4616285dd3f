// Package cli implements localpayctl, the operator command line.
package cli

import (
	"context"
	"encoding/json"
	"io"

	"localpay-gateway/config"
	"localpay-gateway/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "localpayctl",
		Short:         "Inspect and operate a LocalPay gateway",
		Long:          "localpayctl reads the invoice ledger, applies sales mirror migrations and queries the chain service using the gateway's configuration.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInvoicesCmd(opts))
	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newChainCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

func (o *rootOptions) load() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := zerolog.Nop()
	if o.verbose {
		log = logger.New(cfg.Log.Level, true)
	}
	return cfg, log, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show localpayctl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write([]byte("localpayctl " + version + " (" + commit + ")\n"))
			return err
		},
	}
}
