package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	dbxplatform "github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks"
	appshandler "github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/apps"
	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/limiter"
	servinghandler "github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/serving"
	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/whitelist"
	"github.com/sentinelops/dbx-resource-monitor/internal/config"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/service"
	"github.com/sentinelops/dbx-resource-monitor/internal/errors"
	"github.com/sentinelops/dbx-resource-monitor/internal/log"
	jsonreport "github.com/sentinelops/dbx-resource-monitor/internal/reporting/json"
	textreport "github.com/sentinelops/dbx-resource-monitor/internal/reporting/text"
)

// BootstrapResult holds the wired components of one invocation.
type BootstrapResult struct {
	Config   *config.Config
	Logger   ports.Logger
	Registry *service.HandlerRegistry
	Source   ports.WhitelistSource
	Reporter ports.Reporter
	Engine   ports.MonitorEngine
}

// Bootstrap builds the full component graph from viper-bound configuration:
// logger, validated config, workspace client, handler registry, whitelist
// source, reporter and the monitor engine.
func Bootstrap(ctx context.Context, v *viper.Viper) (*BootstrapResult, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigValidation, "failed to unmarshal configuration")
	}

	logCfg := log.Config{Level: cfg.Settings.LogLevel, Format: cfg.Settings.LogFormat}
	logger, err := log.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize logger: %v\n", err)
		return nil, errors.Wrap(err, errors.CodeInternal, "logger initialization failed")
	}
	logger.Debugf(ctx, "Logger initialized (Level: %s, Format: %s)", cfg.Settings.LogLevel, cfg.Settings.LogFormat)

	if err := validateConfig(ctx, cfg, logger); err != nil {
		return nil, err
	}

	client, err := dbxplatform.NewClient(cfg.Profile)
	if err != nil {
		return nil, err
	}
	logger.Debugf(ctx, "Databricks workspace client initialized")

	lim := limiter.New(cfg.Settings.APIRateRPS, logger)

	registry := service.NewHandlerRegistry()
	servingLog := logger.WithFields(map[string]any{"handler": domain.TypeModelEndpoints.String()})
	if err := registry.Register(servinghandler.NewHandler(client.ServingEndpoints, lim, servingLog)); err != nil {
		return nil, err
	}
	appsLog := logger.WithFields(map[string]any{"handler": domain.TypeApps.String()})
	if err := registry.Register(appshandler.NewHandler(client.Apps, lim, appsLog)); err != nil {
		return nil, err
	}

	source := whitelist.NewLoader(logger.WithFields(map[string]any{"component": "whitelist"}))

	reporter, err := buildReporter(cfg, logger)
	if err != nil {
		return nil, err
	}

	monitor := service.NewMonitor(registry, source, reporter, logger, service.RunConfig{
		ResourceType:  cfg.ResourceTypeValue(),
		Mode:          cfg.ActionModeValue(),
		WhitelistPath: cfg.WhitelistPath,
		DryRun:        cfg.DryRun,
	})

	return &BootstrapResult{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Source:   source,
		Reporter: reporter,
		Engine:   monitor,
	}, nil
}

func validateConfig(ctx context.Context, cfg *config.Config, logger ports.Logger) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		logger.Debugf(ctx, "Configuration validated successfully")
		return nil
	}

	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range validationErrors {
			details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	} else {
		details.WriteString(fmt.Sprintf(" %v", err))
	}
	wrappedErr := errors.NewUserFacing(errors.CodeConfigValidation, details.String(), "Check the --resource-type and --action-mode flags.")
	logger.Errorf(ctx, wrappedErr, "Configuration validation failed")
	return wrappedErr
}

func buildReporter(cfg *config.Config, logger ports.Logger) (ports.Reporter, error) {
	switch cfg.Settings.Reporter {
	case jsonreport.ReporterTypeJSON:
		return jsonreport.NewReporter(jsonreport.Config{}, logger.WithFields(map[string]any{"component": "reporter", "type": jsonreport.ReporterTypeJSON}))
	case textreport.ReporterTypeText, "":
		return textreport.NewReporter(textreport.Config{NoColor: cfg.Settings.NoColor}, logger.WithFields(map[string]any{"component": "reporter", "type": textreport.ReporterTypeText}))
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation, fmt.Sprintf("unsupported reporter type: %s", cfg.Settings.Reporter), "Supported: text, json")
	}
}
