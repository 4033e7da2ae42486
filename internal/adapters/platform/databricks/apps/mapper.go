package apps

import (
	sdkapps "github.com/databricks/databricks-sdk-go/service/apps"

	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/shared"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

const unknownState = "UNKNOWN"

// mapApp converts an SDK app into a domain resource. Apps are keyed by name.
func mapApp(a sdkapps.App) domain.Resource {
	state := unknownState
	if a.AppStatus != nil && a.AppStatus.State != "" {
		state = string(a.AppStatus.State)
	}

	return domain.Resource{
		ID:                a.Name,
		Name:              a.Name,
		State:             state,
		Creator:           a.Creator,
		Created:           a.CreateTime,
		DatabricksManaged: shared.IsDatabricksManaged(a.Creator, a.Name),
	}
}
