package cli

import (
	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newCopyCmd creates the copy command
func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "copy <source> <destination>",
		Aliases: []string{"cp"},
		Short:   "Copy files to or from a repository",
		Long: `Copy files between the local filesystem and a repository.

The direction is inferred from the arguments: a local source uploads,
a repository source downloads. Directories are copied recursively.

  gitup copy ./site user/repo:public        # upload a folder
  gitup copy report.pdf user/repo           # upload a single file
  gitup copy user/repo:docs ./docs          # download a folder
  gitup copy user/repo:README.md .          # download a file`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCtx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			return actions.CopyAction(cmd.Context(), runtimeCtx, actions.CopyOptions{
				Source:      args[0],
				Destination: args[1],
			})
		},
	}

	return cmd
}
