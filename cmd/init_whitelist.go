package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/whitelist"
	"github.com/sentinelops/dbx-resource-monitor/internal/app"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

var initWhitelistDir string

var initWhitelistCmd = &cobra.Command{
	Use:   "init-whitelist",
	Short: "Seed a whitelist from the resources currently in the workspace.",
	Long: `Enumerates the live resources of the given type and writes an object-form
whitelist file containing their ids, as a starting point for policy curation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viper.GetViper()
		// Seeding never acts on resources; satisfy the run-config contract
		// with the non-mutating mode.
		if v.GetString("action_mode") == "" {
			v.Set("action_mode", domain.ModeAlert.String())
		}

		result, err := app.Bootstrap(cmd.Context(), v)
		if err != nil {
			return err
		}
		logger := result.Logger
		ctx := cmd.Context()

		rt := result.Config.ResourceTypeValue()
		handler, err := result.Registry.Get(rt)
		if err != nil {
			return err
		}

		resources, err := handler.ListResources(ctx)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(resources))
		for _, r := range resources {
			ids = append(ids, r.ID)
		}

		path, err := whitelist.WriteDefault(initWhitelistDir, rt, ids)
		if err != nil {
			return err
		}

		logger.Infof(ctx, "Created whitelist with %d ids at: %s", len(ids), path)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d ids)\n", path, len(ids))
		return nil
	},
}

func init() {
	initWhitelistCmd.Flags().StringVar(&initWhitelistDir, "output-dir", "config/whitelists", "Directory to write the whitelist file into")
	rootCmd.AddCommand(initWhitelistCmd)
}
