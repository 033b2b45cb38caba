package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lhabacuc/gitup/internal/actions"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// newLoginCmd creates the login command
func newLoginCmd() *cobra.Command {
	var (
		withToken bool
		host      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with GitHub",
		Long: `Authenticate with GitHub using a personal access token.

The token is verified against the API before it is saved, so a typo
never replaces a working credential. Use --with-token to read the
token from standard input instead of an interactive prompt:

  echo "$GITHUB_TOKEN" | gitup login --with-token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if withToken {
				var err error
				token, err = readTokenFromStdin()
				if err != nil {
					return fmt.Errorf("failed to read token from stdin: %w", err)
				}
				if token == "" {
					return fmt.Errorf("no token provided on stdin")
				}
			}

			runtimeCtx := runtime.NewLocalContext()
			return actions.LoginAction(cmd.Context(), runtimeCtx, actions.LoginOptions{
				Token: token,
				Host:  host,
			})
		},
	}

	cmd.Flags().BoolVar(&withToken, "with-token", false, "Read the token from standard input")
	cmd.Flags().StringVar(&host, "host", "", "GitHub API base URL for GitHub Enterprise")

	return cmd
}

// readTokenFromStdin reads a token piped to standard input. A terminal
// stdin yields an empty token rather than blocking on user input.
func readTokenFromStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}

	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
