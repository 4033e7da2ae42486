package serving

import (
	"time"

	sdkserving "github.com/databricks/databricks-sdk-go/service/serving"

	"github.com/sentinelops/dbx-resource-monitor/internal/adapters/platform/databricks/shared"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

const unknownState = "UNKNOWN"

// mapEndpoint converts an SDK serving endpoint into a domain resource. The
// endpoint name is the id: the platform keys serving endpoints by name.
func mapEndpoint(e sdkserving.ServingEndpoint) domain.Resource {
	state := unknownState
	if e.State != nil {
		switch {
		case e.State.ConfigUpdate != "":
			state = string(e.State.ConfigUpdate)
		case e.State.Ready != "":
			state = string(e.State.Ready)
		}
	}

	created := ""
	if e.CreationTimestamp != 0 {
		created = time.UnixMilli(e.CreationTimestamp).UTC().Format(time.RFC3339)
	}

	return domain.Resource{
		ID:                e.Name,
		Name:              e.Name,
		State:             state,
		Creator:           e.Creator,
		Created:           created,
		DatabricksManaged: shared.IsDatabricksManaged(e.Creator, e.Name),
	}
}
