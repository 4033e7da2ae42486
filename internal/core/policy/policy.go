package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// Deleter is the slice of the handler contract Enforce needs to act on
// violations. Concrete handlers satisfy it.
type Deleter interface {
	Type() domain.ResourceType
	DeleteResource(ctx context.Context, id string) bool
}

// Unauthorized filters resources down to those whose id is not whitelisted,
// preserving enumeration order. Databricks-managed resources are exempt
// whenever the whitelist says to ignore them, independent of membership.
func Unauthorized(resources []domain.Resource, wl domain.Whitelist) []domain.Resource {
	var violations []domain.Resource
	for _, r := range resources {
		if wl.Allows(r.ID) {
			continue
		}
		if wl.IgnoreDatabricksManaged && r.DatabricksManaged {
			continue
		}
		violations = append(violations, r)
	}
	return violations
}

// Enforce acts on unauthorized resources according to mode. Alert mode fails
// with a POLICY_VIOLATION carrying the full id list; the job failure is the
// alert channel. Delete mode attempts each deletion sequentially, skipping
// the platform call under dryRun, and never fails on individual items.
func Enforce(
	ctx context.Context,
	d Deleter,
	unauthorized []domain.Resource,
	mode domain.ActionMode,
	dryRun bool,
	logger ports.Logger,
) (domain.ActionSummary, error) {
	summary := domain.ActionSummary{}
	if len(unauthorized) == 0 {
		logger.Infof(ctx, "No violations to handle")
		return summary, nil
	}

	switch mode {
	case domain.ModeAlert:
		if dryRun {
			for _, r := range unauthorized {
				logger.Infof(ctx, "[DRY RUN] Would alert on %s: %s", r.ID, r.Details())
			}
			logger.Infof(ctx, "[DRY RUN] Would fail the job to trigger the alert notification")
			return summary, nil
		}
		return summary, violationError(d.Type(), unauthorized)

	case domain.ModeDelete:
		for _, r := range unauthorized {
			if dryRun {
				logger.Infof(ctx, "[DRY RUN] Would delete %s: %s", r.ID, r.Details())
				summary.WouldDelete = append(summary.WouldDelete, r.ID)
				continue
			}
			if d.DeleteResource(ctx, r.ID) {
				logger.Infof(ctx, "Deleted resource %s", r.ID)
				summary.Deleted = append(summary.Deleted, r.ID)
			} else {
				logger.Warnf(ctx, "Failed to delete resource %s", r.ID)
				summary.Failed = append(summary.Failed, r.ID)
			}
		}
		return summary, nil

	default:
		return summary, apperrors.New(apperrors.CodeConfigValidation, fmt.Sprintf("invalid action mode: %s", mode))
	}
}

func violationError(resourceType domain.ResourceType, unauthorized []domain.Resource) *apperrors.AppError {
	lines := make([]string, 0, len(unauthorized))
	for _, r := range unauthorized {
		lines = append(lines, fmt.Sprintf("- %s: %s", r.ID, r.Details()))
	}
	message := fmt.Sprintf(
		"ALERT: found %d unauthorized %s:\n%s",
		len(unauthorized), resourceType, strings.Join(lines, "\n"),
	)
	return apperrors.NewUserFacing(
		apperrors.CodePolicyViolation,
		message,
		"Review the listed resources and whitelist or remove them.",
	)
}
