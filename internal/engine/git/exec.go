package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/irahardianto/aireview/internal/platform/logger"
)

// ExecService implements Service by running git commands via os/exec.
type ExecService struct {
	// WorkDir is the working directory for git commands.
	// If empty, the current directory is used.
	WorkDir string
}

// NewExecService creates a new ExecService with the given working directory.
func NewExecService(workDir string) *ExecService {
	return &ExecService{WorkDir: workDir}
}

// StagedDiff returns the raw diff of staged changes. The text is not parsed.
func (s *ExecService) StagedDiff(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting staged diff", "dir", s.WorkDir)

	out, err := s.runGit(ctx, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("getting staged diff: %w", err)
	}

	log.Debug("staged diff read", "bytes", len(out))
	return out, nil
}

// runGit executes a git command and returns its stdout.
func (s *ExecService) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) // #nosec G204 -- args are controlled by the application, not user input
	cmd.Dir = s.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w (stderr: %s)", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return stdout.String(), nil
}
