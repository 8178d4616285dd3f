package cli

import (
	"fmt"

	"localpay-gateway/internal/adapter/storage/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the sales mirror database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				files, err := postgres.MigrationFiles()
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			if err := postgres.Migrate(cfg.Database.DSN(), log); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s/%s\n", cfg.Database.Host, cfg.Database.DBName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "print embedded migration files and exit")
	return cmd
}
