package ports

import (
	"context"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

// ResourceHandler is the contract every resource-type adapter implements.
// One handler instance is bound to one platform client and one resource type
// for the lifetime of a run.
type ResourceHandler interface {
	Type() domain.ResourceType

	// ListResources enumerates every live resource of this type. Fails with a
	// PLATFORM_API_ERROR when the platform call fails; no side effects.
	ListResources(ctx context.Context) ([]domain.Resource, error)

	// DeleteResource issues one deletion request. It reports failure instead
	// of returning an error so one bad item never aborts the batch.
	DeleteResource(ctx context.Context, id string) bool

	// CheckResources filters resources down to the unauthorized ones,
	// preserving enumeration order. Pure function of its inputs.
	CheckResources(resources []domain.Resource, wl domain.Whitelist) []domain.Resource

	// HandleViolations acts on unauthorized resources. In alert mode a
	// non-empty list returns a POLICY_VIOLATION error carrying every id; in
	// delete mode deletions are attempted sequentially (skipped under
	// dryRun) and per-item outcomes are aggregated in the summary.
	HandleViolations(ctx context.Context, unauthorized []domain.Resource, mode domain.ActionMode, dryRun bool) (domain.ActionSummary, error)
}
