package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/config"
	"github.com/lhabacuc/gitup/internal/tui"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitup",
		Short: "Manage GitHub repository files from the command line",
		Long: `gitup maps everyday file operations onto GitHub repositories so you can
upload, download, list, and remove files without cloning anything.

Examples:
  gitup login                                  # Authenticate with GitHub
  gitup ls :.                                  # List your repositories
  gitup ls user/repo                           # List files in the repository root
  gitup ls user/repo:folder                    # List files in a folder
  gitup send file.txt user/repo                # Upload a file to the root
  gitup send file.txt user/repo:docs/          # Upload a file into a folder
  gitup copy ./folder user/repo:backup         # Upload a whole folder
  gitup copy user/repo:file.txt ./local/       # Download a file
  gitup rm user/repo:file.txt                  # Remove a file

Addresses take the form owner/repo[:path]. Inside a cloned repository,
"." resolves to the repository behind the origin remote.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if mode, err := config.ColorMode(); err == nil {
				tui.ApplyColorMode(mode)
			}
		},
	}

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newLsCmd())

	return rootCmd
}
