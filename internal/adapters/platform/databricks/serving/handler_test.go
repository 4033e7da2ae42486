package serving

import (
	"context"
	"errors"
	"testing"

	sdkserving "github.com/databricks/databricks-sdk-go/service/serving"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
	"github.com/sentinelops/dbx-resource-monitor/mocks"
)

type ServingHandlerTestSuite struct {
	suite.Suite
	client  *mocks.MockServingEndpointsClient
	handler *Handler
	ctx     context.Context
}

func TestServingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ServingHandlerTestSuite))
}

func (s *ServingHandlerTestSuite) SetupTest() {
	s.client = new(mocks.MockServingEndpointsClient)
	s.handler = NewHandler(s.client, mocks.NopLimiter{}, mocks.NopLogger{})
	s.ctx = context.Background()
}

func (s *ServingHandlerTestSuite) TestType() {
	s.Equal(domain.TypeModelEndpoints, s.handler.Type())
}

func (s *ServingHandlerTestSuite) TestListResources() {
	endpoints := []sdkserving.ServingEndpoint{
		{
			Name:              "churn-model",
			Creator:           "ml-team@example.com",
			CreationTimestamp: 1700000000000,
			State:             &sdkserving.EndpointState{Ready: sdkserving.EndpointStateReadyReady},
		},
		{Name: "databricks-internal-ep"},
	}
	s.client.On("ListAll", mock.Anything).Return(endpoints, nil).Once()

	resources, err := s.handler.ListResources(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(resources, 2)
	s.Equal("churn-model", resources[0].ID)
	s.Equal("ml-team@example.com", resources[0].Creator)
	s.False(resources[0].DatabricksManaged)
	s.True(resources[1].DatabricksManaged)
	s.client.AssertExpectations(s.T())
}

func (s *ServingHandlerTestSuite) TestListResourcesAPIError() {
	s.client.On("ListAll", mock.Anything).Return(nil, errors.New("boom")).Once()

	_, err := s.handler.ListResources(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodePlatformAPIError))
}

func (s *ServingHandlerTestSuite) TestDeleteResourceSuccess() {
	s.client.On("Delete", mock.Anything, sdkserving.DeleteServingEndpointRequest{Name: "rogue-ep"}).
		Return(nil).Once()

	s.True(s.handler.DeleteResource(s.ctx, "rogue-ep"))
	s.client.AssertExpectations(s.T())
}

func (s *ServingHandlerTestSuite) TestDeleteResourceFailureIsNotFatal() {
	s.client.On("Delete", mock.Anything, sdkserving.DeleteServingEndpointRequest{Name: "rogue-ep"}).
		Return(errors.New("403")).Once()

	s.False(s.handler.DeleteResource(s.ctx, "rogue-ep"))
}

func (s *ServingHandlerTestSuite) TestCheckResourcesDelegatesToPolicy() {
	resources := []domain.Resource{{ID: "keep"}, {ID: "drop"}}
	wl := domain.NewWhitelist("", []string{"keep"}, false)

	unauthorized := s.handler.CheckResources(resources, wl)

	s.Require().Len(unauthorized, 1)
	s.Equal("drop", unauthorized[0].ID)
}

func (s *ServingHandlerTestSuite) TestHandleViolationsDeleteMode() {
	s.client.On("Delete", mock.Anything, sdkserving.DeleteServingEndpointRequest{Name: "drop"}).
		Return(nil).Once()

	summary, err := s.handler.HandleViolations(s.ctx, []domain.Resource{{ID: "drop"}}, domain.ModeDelete, false)

	s.Require().NoError(err)
	s.Equal([]string{"drop"}, summary.Deleted)
	s.client.AssertExpectations(s.T())
}

func (s *ServingHandlerTestSuite) TestHandleViolationsAlertMode() {
	_, err := s.handler.HandleViolations(s.ctx, []domain.Resource{{ID: "drop"}}, domain.ModeAlert, false)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodePolicyViolation))
	s.client.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}
