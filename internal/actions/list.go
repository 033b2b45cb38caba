package actions

import (
	"context"
	"errors"
	"fmt"

	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
)

// ListOptions contains options for the ls command
type ListOptions struct {
	// Target is owner/repo[:path], or empty / the literal ":." to list
	// the authenticated user's repositories
	Target string
}

// ListAction lists directory contents of a repository, or the user's
// repositories when no target is given.
func ListAction(ctx context.Context, runtimeCtx *runtime.Context, opts ListOptions) error {
	// ":." keeps its meaning of "my repositories" and is checked before
	// any address parsing
	if opts.Target == "" || opts.Target == ":." {
		return listRepositories(ctx, runtimeCtx)
	}
	return listContents(ctx, runtimeCtx, opts.Target)
}

func listRepositories(ctx context.Context, runtimeCtx *runtime.Context) error {
	splog := runtimeCtx.Splog

	spinner := tui.NewSpinner(splog)
	spinner.Start("Fetching repositories...")
	login, err := runtimeCtx.GitHub.Viewer(ctx)
	if err != nil {
		spinner.Stop()
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}
	repos, err := runtimeCtx.GitHub.ListRepositories(ctx)
	spinner.Stop()
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	if len(repos) == 0 {
		splog.Info("No repositories found")
		return nil
	}

	splog.Info("Repositories for %s:", login)
	for _, repo := range repos {
		visibility := tui.ColorGreen("public")
		if repo.Private {
			visibility = tui.ColorYellow("private")
		}
		splog.Info("  %s (%s)", repo.FullName, visibility)
	}
	return nil
}

func listContents(ctx context.Context, runtimeCtx *runtime.Context, target string) error {
	splog := runtimeCtx.Splog

	addr, err := resolveAddress(target)
	if err != nil {
		return gituperrors.WithHint(err,
			"Valid forms: gitup ls, gitup ls owner/repo, gitup ls owner/repo:folder")
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start(fmt.Sprintf("Connecting to %s...", addr.Repository()))
	file, dir, err := runtimeCtx.GitHub.GetContents(ctx, addr.Owner, addr.Repo, addr.Path)
	spinner.Stop()
	if err != nil {
		if errors.Is(err, gituperrors.ErrPathNotFound) {
			return gituperrors.WithHint(err,
				"Check that the repository and path exist and that you have access.")
		}
		return err
	}

	displayPath := addr.Path
	if displayPath == "" {
		displayPath = "/"
	}
	splog.Info("Contents of %s:%s:", addr.Repository(), displayPath)

	if file != nil {
		splog.Info("  📄 %s", file.Name)
		return nil
	}

	for _, entry := range dir {
		if entry.IsDir() {
			splog.Info("  📁 %s", tui.ColorBlue(entry.Name))
		} else {
			splog.Info("  📄 %s", entry.Name)
		}
	}
	return nil
}
