package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
)

const ReporterTypeJSON = "json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct{}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

type jsonReport struct {
	ResourceType domain.ResourceType  `json:"resource_type"`
	ActionMode   domain.ActionMode    `json:"action_mode"`
	DryRun       bool                 `json:"dry_run"`
	Checked      int                  `json:"checked"`
	Violations   int                  `json:"violations"`
	Unauthorized []jsonResource       `json:"unauthorized"`
	Summary      domain.ActionSummary `json:"summary"`
}

type jsonResource struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	State             string `json:"state,omitempty"`
	Creator           string `json:"creator,omitempty"`
	Created           string `json:"created,omitempty"`
	DatabricksManaged bool   `json:"databricks_managed,omitempty"`
}

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	out := jsonReport{
		ResourceType: report.ResourceType,
		ActionMode:   report.Mode,
		DryRun:       report.DryRun,
		Checked:      report.Checked,
		Violations:   len(report.Unauthorized),
		Unauthorized: make([]jsonResource, 0, len(report.Unauthorized)),
		Summary:      report.Summary,
	}

	for _, res := range report.Unauthorized {
		out.Unauthorized = append(out.Unauthorized, jsonResource{
			ID:                res.ID,
			Name:              res.Name,
			State:             res.State,
			Creator:           res.Creator,
			Created:           res.Created,
			DatabricksManaged: res.DatabricksManaged,
		})
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		r.logger.Errorf(ctx, err, "Failed to encode JSON report")
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}

	r.logger.Debugf(ctx, "JSON report successfully generated.")
	return nil
}
