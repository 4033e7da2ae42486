package domain

import (
	"fmt"
	"strings"
)

// Resource is one live platform resource, fetched fresh every run.
type Resource struct {
	ID      string
	Name    string
	State   string
	Creator string
	Created string

	// DatabricksManaged marks resources created by the platform itself
	// rather than by a workspace user.
	DatabricksManaged bool
}

// Details renders a one-line human-readable description used in logs,
// reports and the alert failure message.
func (r Resource) Details() string {
	parts := []string{
		fmt.Sprintf("Name: %s", r.Name),
		fmt.Sprintf("State: %s", r.State),
		fmt.Sprintf("Creator: %s", r.Creator),
	}
	if r.Created != "" {
		parts = append(parts, fmt.Sprintf("Created: %s", r.Created))
	}
	return strings.Join(parts, " | ")
}
