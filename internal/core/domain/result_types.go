package domain

// ActionSummary aggregates per-item outcomes of a delete-mode run.
type ActionSummary struct {
	Deleted     []string `json:"deleted,omitempty"`
	Failed      []string `json:"failed,omitempty"`
	WouldDelete []string `json:"would_delete,omitempty"`
}

func (s ActionSummary) PartialFailure() bool {
	return len(s.Failed) > 0
}

// Report is the transient outcome of a single run, handed to the reporter
// and discarded afterwards.
type Report struct {
	ResourceType ResourceType  `json:"resource_type"`
	Mode         ActionMode    `json:"action_mode"`
	DryRun       bool          `json:"dry_run"`
	Checked      int           `json:"checked"`
	Unauthorized []Resource    `json:"unauthorized"`
	Summary      ActionSummary `json:"summary"`
}

// UnauthorizedIDs returns the violation ids in enumeration order.
func (r Report) UnauthorizedIDs() []string {
	ids := make([]string, 0, len(r.Unauthorized))
	for _, res := range r.Unauthorized {
		ids = append(ids, res.ID)
	}
	return ids
}
