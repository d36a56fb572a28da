package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerpath/internal/platform/config"
	"careerpath/internal/platform/logger"
	"careerpath/internal/platform/store"
	"careerpath/internal/services/api"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the postgres tables and the clickhouse analytics table",
		Long:  "Opens the backends configured by SERVICE_PGSQL_URL and SERVICE_CLICKHOUSE_URL and ensures their schemas. Unset backends are skipped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			cfg := store.ConfigFrom(config.New(), "careerctl")
			if !cfg.PG.Enabled && !cfg.CH.Enabled {
				return errors.New("no backend configured, set SERVICE_PGSQL_URL or SERVICE_CLICKHOUSE_URL")
			}
			st, err := store.Open(ctx, cfg, store.WithLogger(*logger.Named("store")))
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = st.Close(context.Background()) }()

			if err := api.New(api.Options{Store: st}).Ensure(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schemas ensured")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline")
	return cmd
}
