package github

import (
	"context"
	"errors"

	gituperrors "github.com/lhabacuc/gitup/internal/errors"
)

// Upload writes content to path in the repository. A new path is
// created; an existing file is replaced, guarded by its prior SHA.
// The returned flag reports whether the file was created.
func Upload(ctx context.Context, client Client, owner, repo, path string, content []byte) (created bool, err error) {
	file, _, err := client.GetContents(ctx, owner, repo, path)
	switch {
	case err == nil && file != nil:
		if err := client.UpdateFile(ctx, owner, repo, path, content, file.SHA); err != nil {
			return false, err
		}
		return false, nil

	case err == nil:
		// The path exists and is a directory
		return false, gituperrors.NewIsDirectoryError(path)

	case errors.Is(err, gituperrors.ErrPathNotFound):
		if err := client.CreateFile(ctx, owner, repo, path, content); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, err
	}
}
