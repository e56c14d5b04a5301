package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/TradeUp_Go/internal/database"
)

func newMigrateCmd(opts *options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply pending goose migrations to the database named by the DB_* settings.

Only needed for the postgres catalog source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			pool, err := database.NewPool(cmd.Context(), cfg.GetDBConnString(), database.PoolConfig{
				MaxConns:    cfg.DBMaxConns,
				MaxIdleTime: cfg.DBMaxConnIdleTime,
				MaxLifetime: cfg.DBMaxConnLifetime,
			})
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(cmd.Context(), pool, dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgMigrationsApplied)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", defaultMigrationsDir, "Migrations directory")
	return cmd
}
