package actions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lhabacuc/gitup/internal/addressing"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/github"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
)

// CopyOptions contains options for the copy command
type CopyOptions struct {
	Source      string
	Destination string
}

// CopyAction copies files between the local filesystem and a repository.
// A source starting with "." or containing no ":" is local, making the
// copy an upload; otherwise the source is remote and the copy downloads.
func CopyAction(ctx context.Context, runtimeCtx *runtime.Context, opts CopyOptions) error {
	if addressing.IsLocal(opts.Source) {
		return copyUpload(ctx, runtimeCtx, opts.Source, opts.Destination)
	}
	return copyDownload(ctx, runtimeCtx, opts.Source, opts.Destination)
}

func copyUpload(ctx context.Context, runtimeCtx *runtime.Context, src, dst string) error {
	addr, err := resolveAddress(dst)
	if err != nil {
		return gituperrors.WithHint(err, "For an upload, the destination must be owner/repo[:path]")
	}

	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source not found: %s", src)
		}
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	if info.IsDir() {
		return uploadDirectory(ctx, runtimeCtx, src, addr)
	}
	return uploadFile(ctx, runtimeCtx, src, addr)
}

// uploadFile uploads a single local file, defaulting the remote path to
// the file's base name.
func uploadFile(ctx context.Context, runtimeCtx *runtime.Context, src string, addr *addressing.Address) error {
	splog := runtimeCtx.Splog

	remotePath := remoteTargetPath(addr.Path, src)

	content, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
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

// uploadDirectory uploads every regular file under src, preserving the
// relative structure below addr.Path. The first failure aborts; files
// already uploaded stay uploaded.
func uploadDirectory(ctx context.Context, runtimeCtx *runtime.Context, src string, addr *addressing.Address) error {
	splog := runtimeCtx.Splog

	var files []string
	err := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", src, err)
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start(fmt.Sprintf("Uploading %d files to %s...", len(files), addr.Repository()))
	for _, file := range files {
		rel, err := filepath.Rel(src, file)
		if err != nil {
			spinner.Stop()
			return err
		}
		destPath := path.Join(addr.Path, filepath.ToSlash(rel))

		content, err := os.ReadFile(file)
		if err != nil {
			spinner.Stop()
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		spinner.Update(fmt.Sprintf("Uploading %s...", destPath))
		if _, err := github.Upload(ctx, runtimeCtx.GitHub, addr.Owner, addr.Repo, destPath, content); err != nil {
			spinner.Stop()
			return fmt.Errorf("failed to upload %s: %w", destPath, err)
		}
	}
	spinner.Stop()

	splog.Success("Uploaded %d files to %s", len(files), addr.Repository())
	return nil
}

func copyDownload(ctx context.Context, runtimeCtx *runtime.Context, src, dst string) error {
	splog := runtimeCtx.Splog

	addr, err := resolveAddress(src)
	if err != nil {
		return gituperrors.WithHint(err, "For a download, the source must be owner/repo:path")
	}

	spinner := tui.NewSpinner(splog)
	spinner.Start(fmt.Sprintf("Connecting to %s...", addr.Repository()))
	file, dir, err := runtimeCtx.GitHub.GetContents(ctx, addr.Owner, addr.Repo, addr.Path)
	if err != nil {
		spinner.Stop()
		if errors.Is(err, gituperrors.ErrPathNotFound) {
			return gituperrors.WithHint(err, "Check that the path exists in the repository and that you have access.")
		}
		return err
	}

	if file != nil {
		localPath := filepath.Join(dst, file.Name)
		spinner.Update(fmt.Sprintf("Downloading %s...", file.Path))
		data, err := runtimeCtx.GitHub.ReadFile(ctx, addr.Owner, addr.Repo, file.Path)
		spinner.Stop()
		if err != nil {
			return err
		}
		if err := writeLocalFile(localPath, data); err != nil {
			return err
		}
		splog.Success("Downloaded %s to %s", file.Name, localPath)
		return nil
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		spinner.Stop()
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	count, err := downloadTree(ctx, runtimeCtx, addr, dir, dst, spinner)
	spinner.Stop()
	if err != nil {
		return err
	}

	splog.Success("Downloaded %d files to %s", count, dst)
	return nil
}

// downloadTree recreates the remote directory tree under dst, recursing
// into subdirectories. It returns the number of files written.
func downloadTree(ctx context.Context, runtimeCtx *runtime.Context, addr *addressing.Address, entries []github.Entry, dst string, spinner tui.Spinner) (int, error) {
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			_, subdir, err := runtimeCtx.GitHub.GetContents(ctx, addr.Owner, addr.Repo, entry.Path)
			if err != nil {
				return count, err
			}
			n, err := downloadTree(ctx, runtimeCtx, addr, subdir, dst, spinner)
			count += n
			if err != nil {
				return count, err
			}
			continue
		}

		local := filepath.Join(dst, filepath.FromSlash(relativeTo(addr.Path, entry.Path)))
		spinner.Update(fmt.Sprintf("Downloading %s...", entry.Path))
		data, err := runtimeCtx.GitHub.ReadFile(ctx, addr.Owner, addr.Repo, entry.Path)
		if err != nil {
			return count, err
		}
		if err := writeLocalFile(local, data); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// relativeTo strips the downloaded root from a repository path
func relativeTo(base, repoPath string) string {
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return repoPath
	}
	return strings.TrimPrefix(repoPath, base+"/")
}

func writeLocalFile(localPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(localPath), err)
	}
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	return nil
}
