package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceDetails(t *testing.T) {
	t.Parallel()

	r := Resource{
		ID:      "ep-1",
		Name:    "churn-model",
		State:   "READY",
		Creator: "ana@corp.com",
		Created: "2023-11-14T22:13:20Z",
	}
	assert.Equal(t,
		"Name: churn-model | State: READY | Creator: ana@corp.com | Created: 2023-11-14T22:13:20Z",
		r.Details())
}

func TestResourceDetailsOmitsEmptyCreated(t *testing.T) {
	t.Parallel()

	r := Resource{Name: "app-x", State: "RUNNING", Creator: "bob@corp.com"}
	assert.Equal(t, "Name: app-x | State: RUNNING | Creator: bob@corp.com", r.Details())
}

func TestNewWhitelist(t *testing.T) {
	t.Parallel()

	wl := NewWhitelist("prod endpoints", []string{"a", "b", "a"}, true)

	assert.Equal(t, 2, wl.Size())
	assert.True(t, wl.Allows("a"))
	assert.True(t, wl.Allows("b"))
	assert.False(t, wl.Allows("c"))
	assert.True(t, wl.IgnoreDatabricksManaged)
}

func TestWhitelistEmptyAllowsNothing(t *testing.T) {
	t.Parallel()

	wl := NewWhitelist("", nil, false)
	assert.Equal(t, 0, wl.Size())
	assert.False(t, wl.Allows(""))
}

func TestReportUnauthorizedIDsPreservesOrder(t *testing.T) {
	t.Parallel()

	rep := Report{Unauthorized: []Resource{{ID: "z"}, {ID: "a"}, {ID: "m"}}}
	assert.Equal(t, []string{"z", "a", "m"}, rep.UnauthorizedIDs())
}

func TestActionSummaryPartialFailure(t *testing.T) {
	t.Parallel()

	assert.False(t, ActionSummary{Deleted: []string{"a"}}.PartialFailure())
	assert.True(t, ActionSummary{Deleted: []string{"a"}, Failed: []string{"b"}}.PartialFailure())
}
