package json

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/mocks"
)

func TestReport_EncodesRunOutcome(t *testing.T) {
	r, err := NewReporter(Config{}, mocks.NopLogger{})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	r.writer = buf

	err = r.Report(context.Background(), domain.Report{
		ResourceType: domain.TypeModelEndpoints,
		Mode:         domain.ModeDelete,
		Checked:      3,
		Unauthorized: []domain.Resource{{ID: "rogue", Name: "rogue", State: "READY"}},
		Summary:      domain.ActionSummary{Deleted: []string{"rogue"}},
	})
	require.NoError(t, err)

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, domain.TypeModelEndpoints, decoded.ResourceType)
	assert.Equal(t, 3, decoded.Checked)
	assert.Equal(t, 1, decoded.Violations)
	require.Len(t, decoded.Unauthorized, 1)
	assert.Equal(t, "rogue", decoded.Unauthorized[0].ID)
	assert.Equal(t, []string{"rogue"}, decoded.Summary.Deleted)
}

func TestReport_EmptyViolationsStillValidJSON(t *testing.T) {
	r, err := NewReporter(Config{}, mocks.NopLogger{})
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	r.writer = buf

	require.NoError(t, r.Report(context.Background(), domain.Report{
		ResourceType: domain.TypeApps,
		Mode:         domain.ModeAlert,
	}))

	var decoded jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Zero(t, decoded.Violations)
	assert.NotNil(t, decoded.Unauthorized)
}
