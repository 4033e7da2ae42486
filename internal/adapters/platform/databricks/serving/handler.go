package serving

import (
	"context"

	sdkserving "github.com/databricks/databricks-sdk-go/service/serving"

	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/shared"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/policy"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// Handler enforces whitelist policy for model serving endpoints.
type Handler struct {
	client  EndpointsClient
	limiter shared.RateLimiter
	logger  ports.Logger
}

func NewHandler(client EndpointsClient, limiter shared.RateLimiter, logger ports.Logger) *Handler {
	return &Handler{
		client:  client,
		limiter: limiter,
		logger:  logger,
	}
}

func (h *Handler) Type() domain.ResourceType {
	return domain.TypeModelEndpoints
}

func (h *Handler) ListResources(ctx context.Context) ([]domain.Resource, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoints, err := h.client.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodePlatformAPIError, "failed to list model serving endpoints")
	}

	resources := make([]domain.Resource, 0, len(endpoints))
	for _, e := range endpoints {
		resources = append(resources, mapEndpoint(e))
	}
	h.logger.Infof(ctx, "Found %d model serving endpoints", len(resources))
	return resources, nil
}

func (h *Handler) DeleteResource(ctx context.Context, id string) bool {
	if err := h.limiter.Wait(ctx); err != nil {
		h.logger.Errorf(ctx, err, "Rate limiter interrupted before deleting endpoint %s", id)
		return false
	}

	err := h.client.Delete(ctx, sdkserving.DeleteServingEndpointRequest{Name: id})
	if err != nil {
		h.logger.Errorf(ctx, err, "Failed to delete model serving endpoint %s", id)
		return false
	}
	h.logger.Infof(ctx, "Successfully deleted model serving endpoint: %s", id)
	return true
}

func (h *Handler) CheckResources(resources []domain.Resource, wl domain.Whitelist) []domain.Resource {
	return policy.Unauthorized(resources, wl)
}

func (h *Handler) HandleViolations(ctx context.Context, unauthorized []domain.Resource, mode domain.ActionMode, dryRun bool) (domain.ActionSummary, error) {
	return policy.Enforce(ctx, h, unauthorized, mode, dryRun, h.logger)
}
