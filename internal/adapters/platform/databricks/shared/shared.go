package shared

import (
	"context"
	"strings"
)

// ManagedNamePrefix marks resources provisioned by the platform itself.
const ManagedNamePrefix = "databricks-"

// RateLimiter throttles workspace API calls.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// IsDatabricksManaged reports whether a resource appears to be created by
// the platform rather than a workspace user: no creator recorded and a name
// carrying the platform prefix.
func IsDatabricksManaged(creator, name string) bool {
	return creator == "" && strings.HasPrefix(name, ManagedNamePrefix)
}
