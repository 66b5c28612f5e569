package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/irahardianto/aireview/internal/engine/config"
	"github.com/irahardianto/aireview/internal/engine/confirm"
	"github.com/irahardianto/aireview/internal/engine/formatter"
	"github.com/irahardianto/aireview/internal/engine/git"
	"github.com/irahardianto/aireview/internal/engine/llm"
	"github.com/irahardianto/aireview/internal/platform/logger"
)

// ErrCommitCanceled is returned when the user declines to commit after findings.
// Its message has already been printed; callers only set the exit status.
var ErrCommitCanceled = errors.New("commit canceled")

// Outcome describes why a review let the commit proceed.
type Outcome int

const (
	// OutcomeNoChanges means nothing was staged and no review ran.
	OutcomeNoChanges Outcome = iota
	// OutcomeClear means the model reported no issues.
	OutcomeClear
	// OutcomeApproved means the user chose to commit despite findings.
	OutcomeApproved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoChanges:
		return "no-changes"
	case OutcomeClear:
		return "clear"
	case OutcomeApproved:
		return "approved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Console messages of the review flow.
const (
	msgNoChanges   = "No staged changes to review."
	msgRunning     = "--- Running AI code review ---"
	msgClear       = "No issues found, proceeding with commit."
	msgIssuesFound = "AI found potential issues."
	confirmPrompt  = "Do you want to proceed with the commit? (y/n): "
	msgProceeding  = "Proceeding with commit..."
	msgCanceled    = "Commit canceled. Please fix the issues and try again."
)

// ReviewOpts holds per-invocation options for the review.
type ReviewOpts struct {
	// SARIFPath, when set, also writes the review as a SARIF log to this file.
	SARIFPath string
}

// Reviewer runs the staged-diff review with injected dependencies.
// This struct enables testing the flow without git, network or a terminal.
type Reviewer struct {
	// Config is resolved once before the run and never modified.
	Config config.Config

	// Git produces the staged diff.
	Git git.Service

	// NewCompleter builds the LLM client; it is only called when there is a diff to review.
	NewCompleter func(cfg config.Config) (llm.Completer, error)

	// Prompter asks for confirmation when the review has findings.
	Prompter confirm.Prompter

	// Formatter renders the transcript.
	Formatter *formatter.CLIFormatter

	// WriteFile persists the optional SARIF report.
	WriteFile func(name string, data []byte, perm fs.FileMode) error

	// Stdout receives the review transcript.
	Stdout io.Writer
}

// Execute runs the review once: validate config, read the staged diff, request one
// completion, print it and decide. A nil error means the commit may proceed.
func (r *Reviewer) Execute(ctx context.Context, opts ReviewOpts) (Outcome, error) {
	log := logger.FromContext(ctx)

	// 1. Credentials first: nothing else runs without them.
	if err := r.Config.Validate(); err != nil {
		return 0, err
	}

	// 2. Read the staged diff.
	diff, err := r.Git.StagedDiff(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get git diff: %w", err)
	}
	if strings.TrimSpace(diff) == "" {
		fmt.Fprintln(r.Stdout, msgNoChanges)
		return OutcomeNoChanges, nil
	}

	fmt.Fprintf(r.Stdout, "\n%s\n\n", msgRunning)

	// 3. One completion request, no retry.
	completer, err := r.NewCompleter(r.Config)
	if err != nil {
		return 0, fmt.Errorf("AI review failed: %w", err)
	}

	log.Info("review started", "provider", r.Config.Provider, "model", r.Config.Model, "diff_bytes", len(diff))
	start := time.Now()

	review, err := completer.Complete(ctx, llm.BuildPrompt(diff))
	if err != nil {
		return 0, fmt.Errorf("AI review failed: %w", err)
	}

	result := formatter.ReviewResult{
		Provider:   string(r.Config.Provider),
		Model:      r.Config.Model,
		Review:     review,
		Clear:      llm.IsClear(review),
		DurationMs: time.Since(start).Milliseconds(),
	}
	log.Info("review complete", "clear", result.Clear, "duration_ms", result.DurationMs)

	// 4. Display.
	fmt.Fprint(r.Stdout, r.Formatter.Format(result))
	r.writeSARIF(ctx, opts.SARIFPath, result)

	// 5. Gate.
	if result.Clear {
		fmt.Fprintf(r.Stdout, "\n%s\n", r.Formatter.Success(msgClear))
		return OutcomeClear, nil
	}

	fmt.Fprintf(r.Stdout, "\n%s\n", r.Formatter.Warning(msgIssuesFound))

	proceed, err := r.Prompter.Confirm(ctx, confirmPrompt)
	if err != nil {
		log.Warn("could not read confirmation, treating as no", "error", err)
		proceed = false
	}

	if proceed {
		fmt.Fprintln(r.Stdout, r.Formatter.Success(msgProceeding))
		return OutcomeApproved, nil
	}

	fmt.Fprintln(r.Stdout, r.Formatter.Failure(msgCanceled))
	return 0, ErrCommitCanceled
}

// writeSARIF saves the report when a path was given. Failures never change the outcome.
func (r *Reviewer) writeSARIF(ctx context.Context, path string, result formatter.ReviewResult) {
	if path == "" {
		return
	}
	log := logger.FromContext(ctx)

	doc := formatter.NewSARIFFormatter().Format(result)
	if err := r.WriteFile(path, []byte(doc), 0o644); err != nil { // #nosec G306 -- report, not sensitive
		log.Warn("failed to write SARIF report", "path", path, "error", err)
		return
	}
	log.Info("SARIF report written", "path", path)
}
