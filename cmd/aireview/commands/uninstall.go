package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/irahardianto/aireview/internal/engine/git"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the aireview git pre-commit hook",
	Long:  `Remove the pre-commit hook written by 'aireview install'. Other hooks are never removed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		projectDir, err := getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		return uninstallHook(cmd.Context(), git.NewExecService(projectDir), cmd.OutOrStdout())
	},
}

func uninstallHook(ctx context.Context, gitSvc git.Service, out io.Writer) error {
	if err := gitSvc.RemoveHook(ctx); err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}

	fmt.Fprintln(out, "🔓 aireview pre-commit hook removed")
	return nil
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
