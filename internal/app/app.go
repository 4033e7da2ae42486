package app

import (
	"context"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
)

// Application wraps the monitor engine behind a single Run entry point.
type Application struct {
	Engine ports.MonitorEngine
	Logger ports.Logger
}

func NewApplication(engine ports.MonitorEngine, logger ports.Logger) *Application {
	return &Application{
		Engine: engine,
		Logger: logger,
	}
}

// Run executes one monitoring run. The returned error carries the process
// exit condition: in alert mode a violation error here IS the alert.
func (a *Application) Run(ctx context.Context) error {
	a.Logger.Infof(ctx, "Starting resource monitoring run...")

	err := a.Engine.Run(ctx)
	if err != nil {
		a.Logger.Errorf(ctx, err, "Resource monitoring run failed")
		return err
	}

	a.Logger.Infof(ctx, "Resource monitoring run completed")
	return nil
}
