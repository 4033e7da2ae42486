package apps

import (
	"context"

	sdkapps "github.com/databricks/databricks-sdk-go/service/apps"

	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/shared"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/policy"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// Handler enforces whitelist policy for Databricks apps.
type Handler struct {
	client  AppsClient
	limiter shared.RateLimiter
	logger  ports.Logger
}

func NewHandler(client AppsClient, limiter shared.RateLimiter, logger ports.Logger) *Handler {
	return &Handler{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

func (h *Handler) Type() domain.ResourceType {
	return domain.TypeApps
}

func (h *Handler) ListResources(ctx context.Context) ([]domain.Resource, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	appList, err := h.client.ListAll(ctx, sdkapps.ListAppsRequest{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePlatformAPIError, "failed to list Databricks apps")
	}

	resources := make([]domain.Resource, 0, len(appList))
	for _, a := range appList {
		resources = append(resources, mapApp(a))
	}
	h.logger.Infof(ctx, "Found %d Databricks apps", len(resources))
	return resources, nil
}

func (h *Handler) DeleteResource(ctx context.Context, id string) bool {
	if err := h.limiter.Wait(ctx); err != nil {
		h.logger.Errorf(ctx, err, "Rate limiter interrupted before deleting app %s", id)
		return false
	}

	_, err := h.client.Delete(ctx, sdkapps.DeleteAppRequest{Name: id})
	if err != nil {
		h.logger.Errorf(ctx, err, "Failed to delete Databricks app %s", id)
		return false
	}
	h.logger.Infof(ctx, "Successfully deleted Databricks app: %s", id)
	return true
}

func (h *Handler) CheckResources(resources []domain.Resource, wl domain.Whitelist) []domain.Resource {
	return policy.Unauthorized(resources, wl)
}

func (h *Handler) HandleViolations(ctx context.Context, unauthorized []domain.Resource, mode domain.ActionMode, dryRun bool) (domain.ActionSummary, error) {
	return policy.Enforce(ctx, h, unauthorized, mode, dryRun, h.logger)
}
