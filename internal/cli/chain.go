package cli

import (
	"localpay-gateway/internal/app"

	"github.com/spf13/cobra"
)

func newChainCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Query the NFT chain service",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "wallet-info",
		Short: "Show the operating wallet address and balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			info, err := app.ChainClient(cfg, log).WalletInfo(commandContext(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "collection-info",
		Short: "Show the deployed NFT collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			info, err := app.ChainClient(cfg, log).CollectionInfo(commandContext(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), info)
		},
	})
	return cmd
}
