package whitelist

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

const (
	// workspaceWhitelistDir is the Databricks workspace-files mount; inside a
	// job it reads like a local path.
	workspaceWhitelistDir = "/Workspace/config/whitelists"
	localWhitelistDir     = "config/whitelists"
)

// Loader resolves a whitelist document for a resource type. Resolution order:
// explicit override path, packaged default, workspace path, local fallback.
// The first source that exists wins; an existing but malformed source fails
// the load rather than falling through. No packaged defaults ship with the
// binary: the workspace directory is the path admins curate, and a packaged
// file for a type would permanently shadow it.
type Loader struct {
	packaged     fs.FS
	workspaceDir string
	localDir     string
	logger       ports.Logger
}

type LoaderOption func(*Loader)

// WithPackagedFS supplies a packaged-defaults filesystem, consulted between
// the override path and the workspace directory.
func WithPackagedFS(fsys fs.FS) LoaderOption {
	return func(l *Loader) {
		if fsys != nil {
			l.packaged = fsys
		}
	}
}

// WithWorkspaceDir overrides the workspace-scoped whitelist directory.
func WithWorkspaceDir(dir string) LoaderOption {
	return func(l *Loader) {
		if dir != "" {
			l.workspaceDir = dir
		}
	}
}

// WithLocalDir overrides the local fallback whitelist directory.
func WithLocalDir(dir string) LoaderOption {
	return func(l *Loader) {
		if dir != "" {
			l.localDir = dir
		}
	}
}

func NewLoader(logger ports.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		workspaceDir: workspaceWhitelistDir,
		localDir:     localWhitelistDir,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves and parses the whitelist for resourceType. overridePath, when
// non-empty, is tried first.
func (l *Loader) Load(ctx context.Context, resourceType domain.ResourceType, overridePath string) (domain.Whitelist, error) {
	fileName := fmt.Sprintf("%s.json", resourceType)

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		switch {
		case err == nil:
			l.logger.Infof(ctx, "Loading whitelist from override path: %s", overridePath)
			return l.parseSource(ctx, overridePath, data, resourceType)
		case os.IsNotExist(err):
			l.logger.Warnf(ctx, "Override whitelist path %s does not exist, trying other sources", overridePath)
		default:
			return domain.Whitelist{}, apperrors.Wrap(err, apperrors.CodeConfigReadError, fmt.Sprintf("failed to read whitelist override %s", overridePath))
		}
	}

	if l.packaged != nil {
		if data, err := fs.ReadFile(l.packaged, fileName); err == nil {
			l.logger.Infof(ctx, "Loading packaged whitelist for %s", resourceType)
			return l.parseSource(ctx, "packaged:"+fileName, data, resourceType)
		}
	}

	for _, dir := range []string{l.workspaceDir, l.localDir} {
		path := filepath.Join(dir, fileName)
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			l.logger.Infof(ctx, "Loading whitelist from: %s", path)
			return l.parseSource(ctx, path, data, resourceType)
		case os.IsNotExist(err):
			continue
		default:
			return domain.Whitelist{}, apperrors.Wrap(err, apperrors.CodeConfigReadError, fmt.Sprintf("failed to read whitelist %s", path))
		}
	}

	return domain.Whitelist{}, apperrors.NewUserFacing(
		apperrors.CodeWhitelistNotFound,
		fmt.Sprintf("no whitelist found for resource type %q", resourceType),
		"Create a whitelist file or pass --whitelist-path.",
	)
}

func (l *Loader) parseSource(ctx context.Context, source string, data []byte, resourceType domain.ResourceType) (domain.Whitelist, error) {
	doc, err := Parse(data)
	if err != nil {
		l.logger.Errorf(ctx, err, "Failed to parse whitelist %s", source)
		return domain.Whitelist{}, err
	}
	l.logger.Infof(ctx, "Loaded %d whitelisted ids for %s", doc.Size(), resourceType)
	if doc.IgnoreDatabricksManaged {
		l.logger.Infof(ctx, "Configured to ignore Databricks-managed %s", resourceType)
	}
	return doc, nil
}
