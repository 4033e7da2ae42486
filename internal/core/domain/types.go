package domain

// ResourceType identifies one monitored Databricks resource category. The
// string value doubles as the --resource-type flag value and the whitelist
// file name.
type ResourceType string

const (
	TypeModelEndpoints ResourceType = "model_endpoints"
	TypeApps           ResourceType = "apps"
)

func (rt ResourceType) String() string {
	return string(rt)
}

// ActionMode selects what happens to unauthorized resources.
type ActionMode string

const (
	// ModeAlert fails the run with the full violation list. The hosting job
	// scheduler turns that failure into an email notification.
	ModeAlert ActionMode = "alert"
	// ModeDelete removes unauthorized resources, best effort per item.
	ModeDelete ActionMode = "delete"
)

func (m ActionMode) String() string {
	return string(m)
}
