package cli

import (
	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newRmCmd creates the rm command
func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <owner/repo:path>",
		Aliases: []string{"remove"},
		Short:   "Remove a file from a repository",
		Long: `Remove a single file from a repository.

  gitup rm user/repo:old-notes.txt

Only files can be removed. Removing a directory is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCtx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			return actions.RemoveAction(cmd.Context(), runtimeCtx, actions.RemoveOptions{
				Target: args[0],
			})
		},
	}

	return cmd
}
