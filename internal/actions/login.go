package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/lhabacuc/gitup/internal/config"
	"github.com/lhabacuc/gitup/internal/credential"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/github"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
)

// LoginOptions contains options for the login command
type LoginOptions struct {
	// Token is a token supplied via --with-token, skipping the prompt
	Token string
	// Host is a GitHub Enterprise hostname to persist before authenticating
	Host string
}

// LoginAction verifies a personal access token against the API and saves it
func LoginAction(ctx context.Context, runtimeCtx *runtime.Context, opts LoginOptions) error {
	splog := runtimeCtx.Splog

	if opts.Host != "" {
		if err := config.SetHost(opts.Host); err != nil {
			return fmt.Errorf("failed to save host: %w", err)
		}
		splog.Debug("Using host %s", opts.Host)
	}

	token := strings.TrimSpace(opts.Token)
	if token == "" {
		if credential.Exists() {
			replace, err := confirmReplaceToken()
			if err != nil {
				return err
			}
			if !replace {
				splog.Info("Keeping the existing token.")
				return nil
			}
		}

		splog.Info("To authenticate, you need a GitHub personal access token.")
		splog.Dim("Generate one at https://github.com/settings/tokens with the repo scope.")
		splog.Newline()

		prompted, err := promptToken()
		if err != nil {
			return err
		}
		token = strings.TrimSpace(prompted)
	}

	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	client, err := github.NewRealClient(ctx, token)
	if err != nil {
		return err
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start("Verifying token...")
	login, err := client.Viewer(ctx)
	spinner.Stop()
	if err != nil {
		return gituperrors.WithHint(
			fmt.Errorf("authentication failed: %w", err),
			"Check that the token is correct and has the required scopes.",
		)
	}

	if err := credential.Save(token); err != nil {
		return err
	}

	splog.Success("Authenticated as %s", login)
	return nil
}
