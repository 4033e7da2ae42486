package mocks

import (
	"context"

	sdkapps "github.com/databricks/databricks-sdk-go/service/apps"
	sdkserving "github.com/databricks/databricks-sdk-go/service/serving"
	"github.com/stretchr/testify/mock"
)

// MockServingEndpointsClient is a mock implementation of the serving
// endpoints client slice used by the model endpoint handler.
type MockServingEndpointsClient struct {
	mock.Mock
}

func (m *MockServingEndpointsClient) ListAll(ctx context.Context) ([]sdkserving.ServingEndpoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sdkserving.ServingEndpoint), args.Error(1)
}

func (m *MockServingEndpointsClient) Delete(ctx context.Context, request sdkserving.DeleteServingEndpointRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

// MockAppsClient is a mock implementation of the apps client slice used by
// the apps handler.
type MockAppsClient struct {
	mock.Mock
}

func (m *MockAppsClient) ListAll(ctx context.Context, request sdkapps.ListAppsRequest) ([]sdkapps.App, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sdkapps.App), args.Error(1)
}

func (m *MockAppsClient) Delete(ctx context.Context, request sdkapps.DeleteAppRequest) (*sdkapps.App, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sdkapps.App), args.Error(1)
}
