package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sentinelops/dbx-resource-monitor/internal/app"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

var (
	cfgFile       string
	resourceType  string
	actionMode    string
	whitelistPath string
	dryRun        bool
	profile       string
	logLevel      string
	logFormat     string
	outputFormat  string
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "dbx-resource-monitor",
	Short: "Monitors Databricks resources and enforces whitelist policies.",
	Long: `Resource Monitor enumerates Databricks workspace resources (model serving
endpoints, apps), compares them against a whitelist, and either alerts by
failing the job (so the scheduler's failure notification fires) or deletes
the unauthorized resources.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, bootstrapErr := app.Bootstrap(cmd.Context(), viper.GetViper())
		if bootstrapErr != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Application initialization failed: %v\n", bootstrapErr)
			if appErr := (*apperrors.AppError)(nil); errors.As(bootstrapErr, &appErr) {
				if appErr.IsUserFacing {
					fmt.Fprintf(os.Stderr, "Error Details: %s\n", appErr.Message)
					if appErr.SuggestedAction != "" {
						fmt.Fprintf(os.Stderr, "Suggestion: %s\n", appErr.SuggestedAction)
					}
				}
			}
			return bootstrapErr
		}

		application := app.NewApplication(result.Engine, result.Logger)

		runErr := application.Run(cmd.Context())
		if runErr != nil {
			userMsg, suggestion, _ := apperrors.GetUserFacingMessage(runErr)
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
			if suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
			}
			return runErr
		}

		return nil
	},
}

// Execute runs the CLI. A non-zero exit on error is the job-failure signal
// the hosting scheduler's notifications depend on.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .dbx-resource-monitor.yaml)")
	rootCmd.PersistentFlags().StringVar(&resourceType, "resource-type", "", "Type of resource to monitor (model_endpoints, apps)")
	rootCmd.PersistentFlags().StringVar(&whitelistPath, "whitelist-path", "", "Custom path to a whitelist JSON file (optional)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Databricks config profile to authenticate with (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (text, json)")

	rootCmd.Flags().StringVar(&actionMode, "action-mode", "", "Action for unauthorized resources (alert, delete)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Identify violations without taking action")
	rootCmd.Flags().StringVar(&outputFormat, "output", "", "Report output format (text, json)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored report output")

	viper.BindPFlag("resource_type", rootCmd.PersistentFlags().Lookup("resource-type"))
	viper.BindPFlag("whitelist_path", rootCmd.PersistentFlags().Lookup("whitelist-path"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	viper.BindPFlag("action_mode", rootCmd.Flags().Lookup("action-mode"))
	viper.BindPFlag("dry_run", rootCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("settings.reporter", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("settings.no_color", rootCmd.Flags().Lookup("no-color"))

	viper.SetEnvPrefix("DBXMON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".dbx-resource-monitor")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}

	return nil
}
