package ports

import "context"

type MonitorEngine interface {
	Run(ctx context.Context) error
}
