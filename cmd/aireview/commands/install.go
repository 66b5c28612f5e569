package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/irahardianto/aireview/internal/engine/git"
	"github.com/irahardianto/aireview/internal/platform/logger"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install aireview as the git pre-commit hook",
	Long: `Write a pre-commit hook that runs aireview before every commit.
An existing hook that aireview did not write is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectDir, err := getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		return installHook(cmd.Context(), git.NewExecService(projectDir), cmd.OutOrStdout())
	},
}

// installHook performs the install workflow with injected dependencies for testability.
func installHook(ctx context.Context, gitSvc git.Service, out io.Writer) error {
	log := logger.FromContext(ctx)
	log.Debug("install started")

	if err := gitSvc.InstallHook(ctx); err != nil {
		return fmt.Errorf("installing hook: %w", err)
	}

	fmt.Fprintln(out, "🔒 aireview pre-commit hook installed")
	return nil
}

func init() {
	rootCmd.AddCommand(installCmd)
}
