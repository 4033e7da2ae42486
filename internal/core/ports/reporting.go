package ports

import (
	"context"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, report domain.Report) error
}
