package service

import (
	"context"
	"fmt"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	"github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// RunConfig carries the per-invocation parameters of a monitoring run.
type RunConfig struct {
	ResourceType  domain.ResourceType
	Mode          domain.ActionMode
	WhitelistPath string
	DryRun        bool
}

// Monitor drives one check-and-act run: load whitelist, enumerate, compare,
// act, report. One resource type per invocation, no state across runs.
type Monitor struct {
	registry *HandlerRegistry
	source   ports.WhitelistSource
	reporter ports.Reporter
	logger   ports.Logger
	cfg      RunConfig
}

func NewMonitor(
	registry *HandlerRegistry,
	source ports.WhitelistSource,
	reporter ports.Reporter,
	logger ports.Logger,
	cfg RunConfig,
) *Monitor {
	return &Monitor{
		registry: registry,
		source:   source,
		reporter: reporter,
		logger:   logger,
		cfg:      cfg,
	}
}

func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Infof(ctx, "Starting resource monitor for %s (mode: %s, dry run: %t)",
		m.cfg.ResourceType, m.cfg.Mode, m.cfg.DryRun)

	// The whitelist must resolve before any platform call is made.
	wl, err := m.source.Load(ctx, m.cfg.ResourceType, m.cfg.WhitelistPath)
	if err != nil {
		return err
	}

	handler, err := m.registry.Get(m.cfg.ResourceType)
	if err != nil {
		return err
	}

	resources, err := handler.ListResources(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CodePlatformAPIError,
			fmt.Sprintf("failed to enumerate %s", m.cfg.ResourceType))
	}
	m.logger.Infof(ctx, "Found %d resources to check", len(resources))

	unauthorized := handler.CheckResources(resources, wl)
	m.logger.Infof(ctx, "Found %d violations", len(unauthorized))

	report := domain.Report{
		ResourceType: m.cfg.ResourceType,
		Mode:         m.cfg.Mode,
		DryRun:       m.cfg.DryRun,
		Checked:      len(resources),
		Unauthorized: unauthorized,
	}

	if len(unauthorized) == 0 {
		m.logger.Infof(ctx, "No violations found. All resources are whitelisted.")
		return m.report(ctx, report)
	}

	summary, actErr := handler.HandleViolations(ctx, unauthorized, m.cfg.Mode, m.cfg.DryRun)
	report.Summary = summary

	// The report is always emitted, even when the run is about to fail: in
	// alert mode the failure itself is the notification.
	if reportErr := m.report(ctx, report); reportErr != nil && actErr == nil {
		return reportErr
	}

	if actErr != nil {
		return actErr
	}

	if summary.PartialFailure() {
		return errors.New(errors.CodePartialFailure,
			fmt.Sprintf("deleted %d of %d unauthorized %s; %d deletions failed",
				len(summary.Deleted), len(unauthorized), m.cfg.ResourceType, len(summary.Failed)))
	}

	m.logger.Infof(ctx, "Resource monitoring completed successfully")
	return nil
}

func (m *Monitor) report(ctx context.Context, report domain.Report) error {
	if m.reporter == nil {
		return nil
	}
	if err := m.reporter.Report(ctx, report); err != nil {
		m.logger.Errorf(ctx, err, "Failed to emit run report")
		return errors.Wrap(err, errors.CodeInternal, "failed to emit run report")
	}
	return nil
}
