package actions

import (
	"context"
	"errors"
	"fmt"

	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
)

// RemoveOptions contains options for the rm command
type RemoveOptions struct {
	Target string
}

// RemoveAction deletes one remote file. Directory paths are rejected.
func RemoveAction(ctx context.Context, runtimeCtx *runtime.Context, opts RemoveOptions) error {
	splog := runtimeCtx.Splog

	addr, err := resolveAddress(opts.Target)
	if err != nil {
		return gituperrors.WithHint(err, "Expected format: owner/repo:path")
	}
	if addr.Path == "" {
		return gituperrors.WithHint(
			fmt.Errorf("no file to remove in %s", opts.Target),
			"Example: gitup rm owner/repo:file.txt",
		)
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start(fmt.Sprintf("Connecting to %s...", addr.Repository()))
	file, _, err := runtimeCtx.GitHub.GetContents(ctx, addr.Owner, addr.Repo, addr.Path)
	if err != nil {
		spinner.Stop()
		if errors.Is(err, gituperrors.ErrPathNotFound) {
			return gituperrors.WithHint(err, "Check that the file path is correct.")
		}
		return err
	}
	if file == nil {
		spinner.Stop()
		return gituperrors.WithHint(
			fmt.Errorf("Cannot remove directory: %s", addr.Path),
			"You must specify a file to remove.",
		)
	}

	spinner.Update(fmt.Sprintf("Removing %s...", addr.Path))
	err = runtimeCtx.GitHub.DeleteFile(ctx, addr.Owner, addr.Repo, addr.Path, file.SHA)
	spinner.Stop()
	if err != nil {
		return err
	}

	splog.Success("Removed %s from %s", addr.Path, addr.Repository())
	return nil
}
