package cli

import (
	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newLsCmd creates the ls command
func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ls [owner/repo[:path]]",
		Aliases: []string{"list"},
		Short:   "List repositories or repository contents",
		Long: `List the contents of a repository path, or your repositories.

  gitup ls :.                # your repositories
  gitup ls user/repo         # files at the repository root
  gitup ls user/repo:docs    # files under docs
  gitup ls .                 # contents of the repository behind origin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCtx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			target := ""
			if len(args) > 0 {
				target = args[0]
			}

			return actions.ListAction(cmd.Context(), runtimeCtx, actions.ListOptions{
				Target: target,
			})
		},
	}

	return cmd
}
