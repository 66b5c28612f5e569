// Package commands implements the CLI commands for aireview.
package commands

import (
	"github.com/irahardianto/aireview/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagVerbose bool
	flagLogJSON bool
	flagNoColor bool
	flagSARIF   string
)

// rootCmd reviews the staged diff when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "aireview",
	Short: "AI review of staged changes before a git commit",
	Long: `aireview sends the staged git diff to a language model, prints its review and
decides whether the commit may proceed.

If the model reports no issues the command exits 0. Otherwise it asks whether to
proceed and exits 1 unless the answer is "y". Run 'aireview install' to use it as
a git pre-commit hook.

Environment:
  OPENAI_API_KEY       credential for the default openai provider (required)
  AI_REVIEW_MODEL      model identifier (default gpt-4.1-mini)
  AI_REVIEW_PROVIDER   openai or gemini
  GEMINI_API_KEY       credential for the gemini provider
  OPENAI_BASE_URL      OpenAI-compatible endpoint
  AI_REVIEW_NO_COLOR   disable colored status lines`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		l := logger.New(cmd.ErrOrStderr(), flagVerbose, flagLogJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runReview(cmd.Context(), cmd.OutOrStdout(), ReviewOpts{SARIFPath: flagSARIF})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug details to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagLogJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&flagSARIF, "sarif", "", "Also write the review as a SARIF report to this file")
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return rootCmd.Execute()
}
