package actions

import (
	"context"
	"fmt"
	"os"

	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/github"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
)

// SendOptions contains options for the send command
type SendOptions struct {
	File        string
	Destination string
}

// SendAction uploads one local file to a repository, creating or updating
// the remote path.
func SendAction(ctx context.Context, runtimeCtx *runtime.Context, opts SendOptions) error {
	splog := runtimeCtx.Splog

	addr, err := resolveAddress(opts.Destination)
	if err != nil {
		return gituperrors.WithHint(err, "Expected format: owner/repo[:path]")
	}

	info, err := os.Stat(opts.File)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", opts.File)
		}
		return fmt.Errorf("failed to read %s: %w", opts.File, err)
	}
	if info.IsDir() {
		return gituperrors.WithHint(
			fmt.Errorf("%s is a directory", opts.File),
			"Use 'gitup copy' to upload a directory.",
		)
	}

	remotePath := remoteTargetPath(addr.Path, opts.File)

	content, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.File, err)
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start(fmt.Sprintf("Uploading %s...", remotePath))
	created, err := github.Upload(ctx, runtimeCtx.GitHub, addr.Owner, addr.Repo, remotePath, content)
	spinner.Stop()
	if err != nil {
		return err
	}

	if created {
		splog.Success("Created %s in %s", remotePath, addr.Repository())
	} else {
		splog.Success("Updated %s in %s", remotePath, addr.Repository())
	}
	return nil
}
