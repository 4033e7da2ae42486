package ports

import (
	"context"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

// WhitelistSource resolves the authoritative whitelist for a resource type.
type WhitelistSource interface {
	Load(ctx context.Context, resourceType domain.ResourceType, overridePath string) (domain.Whitelist, error)
}
