package whitelist

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

// WriteDefault writes an object-form whitelist for resourceType into dir,
// seeding it with ids (typically the resources currently live in the
// workspace). Returns the path of the written file.
func WriteDefault(dir string, resourceType domain.ResourceType, ids []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeWhitelistWrite, fmt.Sprintf("failed to create whitelist directory %s", dir))
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.json", resourceType))

	if ids == nil {
		ids = []string{}
	}
	payload := documentJSON{
		Description: fmt.Sprintf("Whitelist for %s", resourceType),
		Whitelist:   &ids,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeWhitelistWrite, "failed to encode whitelist")
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeWhitelistWrite, fmt.Sprintf("failed to write whitelist %s", path))
	}
	return path, nil
}
