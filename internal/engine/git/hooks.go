package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/aireview/internal/platform/logger"
)

// HookMarker identifies a pre-commit hook written by aireview.
const HookMarker = "# aireview-managed"

const hookScript = `#!/bin/sh
` + HookMarker + `
# Installed by 'aireview install'. Run 'aireview uninstall' to remove.
exec aireview
`

// ErrForeignHook is returned when a pre-commit hook exists that aireview did not write.
var ErrForeignHook = errors.New("pre-commit hook is not managed by aireview")

// InstallHook writes the aireview pre-commit hook. Installing twice is a no-op;
// an existing hook written by something else is left untouched and reported.
func (s *ExecService) InstallHook(ctx context.Context) error {
	log := logger.FromContext(ctx)

	hookPath, err := s.preCommitPath(ctx)
	if err != nil {
		return err
	}
	log.Debug("installing pre-commit hook", "path", hookPath)

	managed, err := isManagedHook(hookPath)
	switch {
	case err == nil && managed:
		log.Info("hook already installed, skipping", "path", hookPath)
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s exists; remove it first or back it up", ErrForeignHook, hookPath)
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("reading hook: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0o750); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}
	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil { // #nosec G306 -- hook must be executable
		return fmt.Errorf("writing hook script: %w", err)
	}

	log.Info("pre-commit hook installed", "path", hookPath)
	return nil
}

// RemoveHook deletes the aireview pre-commit hook. A missing hook is not an error;
// a hook written by something else is refused with ErrForeignHook.
func (s *ExecService) RemoveHook(ctx context.Context) error {
	log := logger.FromContext(ctx)

	hookPath, err := s.preCommitPath(ctx)
	if err != nil {
		return err
	}

	managed, err := isManagedHook(hookPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("no pre-commit hook found, nothing to remove")
			return nil
		}
		return fmt.Errorf("reading hook: %w", err)
	}
	if !managed {
		return fmt.Errorf("%w: refusing to remove %s", ErrForeignHook, hookPath)
	}

	if err := os.Remove(hookPath); err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}

	log.Info("pre-commit hook removed", "path", hookPath)
	return nil
}

// preCommitPath asks git where hooks live, so core.hooksPath and worktrees are honored.
func (s *ExecService) preCommitPath(ctx context.Context) (string, error) {
	out, err := s.runGit(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("locating hooks directory: %w", err)
	}

	hooksDir := strings.TrimSpace(out)
	if !filepath.IsAbs(hooksDir) && s.WorkDir != "" {
		hooksDir = filepath.Join(s.WorkDir, hooksDir)
	}
	return filepath.Join(hooksDir, "pre-commit"), nil
}

func isManagedHook(path string) (bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from git rev-parse
	if err != nil {
		return false, err
	}
	return strings.Contains(string(data), HookMarker), nil
}
