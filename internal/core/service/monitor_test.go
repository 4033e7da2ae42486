package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
	"github.com/sentinelops/dbx-resource-monitor/mocks"
)

type MonitorTestSuite struct {
	suite.Suite
	handler  *mocks.MockResourceHandler
	source   *mocks.MockWhitelistSource
	reporter *mocks.MockReporter
	registry *HandlerRegistry
	ctx      context.Context
}

func TestMonitorTestSuite(t *testing.T) {
	suite.Run(t, new(MonitorTestSuite))
}

func (s *MonitorTestSuite) SetupTest() {
	s.handler = new(mocks.MockResourceHandler)
	s.handler.On("Type").Return(domain.TypeModelEndpoints)
	s.source = new(mocks.MockWhitelistSource)
	s.reporter = new(mocks.MockReporter)
	s.registry = NewHandlerRegistry()
	s.Require().NoError(s.registry.Register(s.handler))
	s.ctx = context.Background()
}

func (s *MonitorTestSuite) newMonitor(cfg RunConfig) *Monitor {
	return NewMonitor(s.registry, s.source, s.reporter, mocks.NopLogger{}, cfg)
}

func (s *MonitorTestSuite) TestNoViolations() {
	resources := []domain.Resource{{ID: "a"}}
	wl := domain.NewWhitelist("", []string{"a"}, false)

	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	s.handler.On("ListResources", mock.Anything).Return(resources, nil).Once()
	s.handler.On("CheckResources", resources, wl).Return([]domain.Resource(nil)).Once()
	s.reporter.On("Report", mock.Anything, mock.AnythingOfType("domain.Report")).Return(nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeAlert})
	err := m.Run(s.ctx)

	s.NoError(err)
	s.handler.AssertNotCalled(s.T(), "HandleViolations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.reporter.AssertExpectations(s.T())
}

func (s *MonitorTestSuite) TestWhitelistMissingMakesNoAPICalls() {
	notFound := apperrors.New(apperrors.CodeWhitelistNotFound, "no whitelist")
	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "/tmp/missing.json").
		Return(domain.Whitelist{}, notFound).Once()

	m := s.newMonitor(RunConfig{
		ResourceType:  domain.TypeModelEndpoints,
		Mode:          domain.ModeAlert,
		WhitelistPath: "/tmp/missing.json",
	})
	err := m.Run(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodeWhitelistNotFound))
	s.handler.AssertNotCalled(s.T(), "ListResources", mock.Anything)
}

func (s *MonitorTestSuite) TestUnknownResourceType() {
	wl := domain.NewWhitelist("", nil, false)
	s.source.On("Load", mock.Anything, domain.ResourceType("clusters"), "").Return(wl, nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.ResourceType("clusters"), Mode: domain.ModeAlert})
	err := m.Run(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodeConfigValidation))
}

func (s *MonitorTestSuite) TestEnumerationFailureIsFatal() {
	wl := domain.NewWhitelist("", nil, false)
	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	upstream := apperrors.New(apperrors.CodePlatformAPIError, "list failed")
	s.handler.On("ListResources", mock.Anything).Return(nil, upstream).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeAlert})
	err := m.Run(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodePlatformAPIError))
	s.handler.AssertNotCalled(s.T(), "CheckResources", mock.Anything, mock.Anything)
}

func (s *MonitorTestSuite) TestAlertModeViolationPropagates() {
	resources := []domain.Resource{{ID: "a"}, {ID: "b"}}
	unauthorized := []domain.Resource{{ID: "b"}}
	wl := domain.NewWhitelist("", []string{"a"}, false)

	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	s.handler.On("ListResources", mock.Anything).Return(resources, nil).Once()
	s.handler.On("CheckResources", resources, wl).Return(unauthorized).Once()
	violation := apperrors.NewUserFacing(apperrors.CodePolicyViolation, "ALERT: found 1 unauthorized model_endpoints:\n- b: Name: b", "")
	s.handler.On("HandleViolations", mock.Anything, unauthorized, domain.ModeAlert, false).
		Return(domain.ActionSummary{}, violation).Once()
	s.reporter.On("Report", mock.Anything, mock.MatchedBy(func(r domain.Report) bool {
		return len(r.Unauthorized) == 1 && r.Unauthorized[0].ID == "b"
	})).Return(nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeAlert})
	err := m.Run(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodePolicyViolation))
	s.Contains(err.Error(), "b")
	s.reporter.AssertExpectations(s.T())
}

func (s *MonitorTestSuite) TestDeleteModePartialFailure() {
	resources := []domain.Resource{{ID: "x"}, {ID: "y"}}
	unauthorized := []domain.Resource{{ID: "x"}, {ID: "y"}}
	wl := domain.NewWhitelist("", nil, false)
	summary := domain.ActionSummary{Deleted: []string{"x"}, Failed: []string{"y"}}

	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	s.handler.On("ListResources", mock.Anything).Return(resources, nil).Once()
	s.handler.On("CheckResources", resources, wl).Return(unauthorized).Once()
	s.handler.On("HandleViolations", mock.Anything, unauthorized, domain.ModeDelete, false).
		Return(summary, nil).Once()
	s.reporter.On("Report", mock.Anything, mock.AnythingOfType("domain.Report")).Return(nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeDelete})
	err := m.Run(s.ctx)

	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodePartialFailure))
}

func (s *MonitorTestSuite) TestDeleteModeAllSucceed() {
	resources := []domain.Resource{{ID: "x"}}
	unauthorized := []domain.Resource{{ID: "x"}}
	wl := domain.NewWhitelist("", nil, false)
	summary := domain.ActionSummary{Deleted: []string{"x"}}

	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	s.handler.On("ListResources", mock.Anything).Return(resources, nil).Once()
	s.handler.On("CheckResources", resources, wl).Return(unauthorized).Once()
	s.handler.On("HandleViolations", mock.Anything, unauthorized, domain.ModeDelete, false).
		Return(summary, nil).Once()
	s.reporter.On("Report", mock.Anything, mock.AnythingOfType("domain.Report")).Return(nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeDelete})
	err := m.Run(s.ctx)

	s.NoError(err)
}

func (s *MonitorTestSuite) TestDryRunDeleteSucceedsWithSummary() {
	resources := []domain.Resource{{ID: "b"}}
	unauthorized := []domain.Resource{{ID: "b"}}
	wl := domain.NewWhitelist("", nil, false)
	summary := domain.ActionSummary{WouldDelete: []string{"b"}}

	s.source.On("Load", mock.Anything, domain.TypeModelEndpoints, "").Return(wl, nil).Once()
	s.handler.On("ListResources", mock.Anything).Return(resources, nil).Once()
	s.handler.On("CheckResources", resources, wl).Return(unauthorized).Once()
	s.handler.On("HandleViolations", mock.Anything, unauthorized, domain.ModeDelete, true).
		Return(summary, nil).Once()
	s.reporter.On("Report", mock.Anything, mock.MatchedBy(func(r domain.Report) bool {
		return r.DryRun && len(r.Summary.WouldDelete) == 1
	})).Return(nil).Once()

	m := s.newMonitor(RunConfig{ResourceType: domain.TypeModelEndpoints, Mode: domain.ModeDelete, DryRun: true})
	err := m.Run(s.ctx)

	s.NoError(err)
	s.reporter.AssertExpectations(s.T())
}
