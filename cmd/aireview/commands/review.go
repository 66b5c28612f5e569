package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/irahardianto/aireview/internal/engine/config"
	"github.com/irahardianto/aireview/internal/engine/confirm"
	"github.com/irahardianto/aireview/internal/engine/formatter"
	"github.com/irahardianto/aireview/internal/engine/git"
	"github.com/irahardianto/aireview/internal/engine/llm"
	"github.com/irahardianto/aireview/internal/platform/logger"
)

// runReview wires real infrastructure and delegates to Reviewer.Execute.
// This is a composition root: it instantiates production dependencies.
func runReview(ctx context.Context, stdout io.Writer, opts ReviewOpts) error {
	log := logger.FromContext(ctx)

	projectDir, err := getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(ctx, filepath.Join(projectDir, ".env"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagNoColor {
		cfg.OutputColor = false
	}

	reviewer := &Reviewer{
		Config:       cfg,
		Git:          git.NewExecService(projectDir),
		NewCompleter: llm.NewCompleter,
		Prompter:     confirm.NewLinePrompter(confirm.TerminalInput(os.Stdin), stdout),
		Formatter:    formatter.NewCLIFormatter(cfg.OutputColor),
		WriteFile:    os.WriteFile,
		Stdout:       stdout,
	}

	outcome, err := reviewer.Execute(ctx, opts)
	if err != nil {
		return err
	}
	log.Debug("review finished", "outcome", outcome)
	return nil
}

// getwd is a variable for testability (defaults to os.Getwd).
var getwd = os.Getwd
