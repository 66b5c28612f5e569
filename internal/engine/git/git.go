// Package git wraps the git command line for reading staged changes and managing the hook.
package git

import (
	"context"
)

// Service abstracts git operations for testability.
type Service interface {
	// StagedDiff returns the unified diff of staged changes (git diff --cached).
	StagedDiff(ctx context.Context) (string, error)

	// InstallHook creates a pre-commit hook script in .git/hooks/.
	InstallHook(ctx context.Context) error
	// RemoveHook removes the aireview pre-commit hook.
	RemoveHook(ctx context.Context) error
}
