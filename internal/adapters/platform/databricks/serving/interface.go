package serving

import (
	"context"

	"github.com/databricks/databricks-sdk-go/service/serving"
)

// EndpointsClient is the slice of the SDK serving-endpoints API this handler
// uses. *serving.ServingEndpointsAPI satisfies it.
type EndpointsClient interface {
	ListAll(ctx context.Context) ([]serving.ServingEndpoint, error)
	Delete(ctx context.Context, request serving.DeleteServingEndpointRequest) error
}
