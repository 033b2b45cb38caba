package cli

import (
	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newLogoutCmd creates the logout command
func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved GitHub token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runtimeCtx := runtime.NewLocalContext()
			return actions.LogoutAction(runtimeCtx)
		},
	}
}
