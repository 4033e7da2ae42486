package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
)

// MockResourceHandler is a mock implementation of ports.ResourceHandler.
type MockResourceHandler struct {
	mock.Mock
}

func (m *MockResourceHandler) Type() domain.ResourceType {
	args := m.Called()
	return args.Get(0).(domain.ResourceType)
}

func (m *MockResourceHandler) ListResources(ctx context.Context) ([]domain.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func (m *MockResourceHandler) DeleteResource(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockResourceHandler) CheckResources(resources []domain.Resource, wl domain.Whitelist) []domain.Resource {
	args := m.Called(resources, wl)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Resource)
}

func (m *MockResourceHandler) HandleViolations(ctx context.Context, unauthorized []domain.Resource, mode domain.ActionMode, dryRun bool) (domain.ActionSummary, error) {
	args := m.Called(ctx, unauthorized, mode, dryRun)
	return args.Get(0).(domain.ActionSummary), args.Error(1)
}

// MockWhitelistSource is a mock implementation of ports.WhitelistSource.
type MockWhitelistSource struct {
	mock.Mock
}

func (m *MockWhitelistSource) Load(ctx context.Context, resourceType domain.ResourceType, overridePath string) (domain.Whitelist, error) {
	args := m.Called(ctx, resourceType, overridePath)
	return args.Get(0).(domain.Whitelist), args.Error(1)
}

// MockReporter is a mock implementation of ports.Reporter.
type MockReporter struct {
	mock.Mock
}

func (m *MockReporter) Report(ctx context.Context, report domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// NopLogger is a ports.Logger that discards everything; handy default for
// tests that do not assert on logging.
type NopLogger struct{}

func (NopLogger) Debugf(ctx context.Context, format string, args ...any) {}

func (NopLogger) Infof(ctx context.Context, format string, args ...any) {}

func (NopLogger) Warnf(ctx context.Context, format string, args ...any) {}

func (NopLogger) Errorf(ctx context.Context, err error, format string, args ...any) {}

func (NopLogger) WithFields(fields map[string]any) ports.Logger { return NopLogger{} }

// NopLimiter satisfies the platform rate limiter without throttling.
type NopLimiter struct{}

func (NopLimiter) Wait(ctx context.Context) error { return nil }
