package cli

import (
	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newSendCmd creates the send command
func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <file> <owner/repo[:path]>",
		Short: "Upload a file to a repository",
		Long: `Upload a single local file to a repository.

When the destination path is omitted or ends with a slash, the file
keeps its local name:

  gitup send notes.txt user/repo            # becomes notes.txt at the root
  gitup send notes.txt user/repo:docs/      # becomes docs/notes.txt
  gitup send notes.txt user/repo:docs/n.md  # renamed to docs/n.md`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCtx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}

			return actions.SendAction(cmd.Context(), runtimeCtx, actions.SendOptions{
				File:        args[0],
				Destination: args[1],
			})
		},
	}

	return cmd
}
