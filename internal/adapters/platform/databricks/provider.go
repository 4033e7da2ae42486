package databricks

import (
	"github.com/databricks/databricks-sdk-go"

	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// NewClient builds a workspace client using the SDK's unified auth chain
// (env vars, config profiles, notebook-native auth). profile, when set,
// selects a named profile from ~/.databrickscfg.
func NewClient(profile string) (*databricks.WorkspaceClient, error) {
	cfg := &databricks.Config{}
	if profile != "" {
		cfg.Profile = profile
	}

	w, err := databricks.NewWorkspaceClient(cfg)
	if err != nil {
		return nil, apperrors.WrapUserFacing(err, apperrors.CodePlatformAuthError,
			"failed to initialize Databricks workspace client",
			"Check DATABRICKS_HOST/DATABRICKS_TOKEN or the --profile entry in ~/.databrickscfg.")
	}
	return w, nil
}
