package apps

import (
	"context"

	"github.com/databricks/databricks-sdk-go/service/apps"
)

// AppsClient is the slice of the SDK apps API this handler uses.
// *apps.AppsAPI satisfies it.
type AppsClient interface {
	ListAll(ctx context.Context, request apps.ListAppsRequest) ([]apps.App, error)
	Delete(ctx context.Context, request apps.DeleteAppRequest) (*apps.App, error)
}
