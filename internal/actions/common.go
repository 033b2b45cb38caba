package actions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lhabacuc/gitup/internal/addressing"
	"github.com/lhabacuc/gitup/internal/gitremote"
)

// resolveAddress parses a remote address, resolving the "." identifier to
// the owner/repo of the current directory's origin remote.
func resolveAddress(addr string) (*addressing.Address, error) {
	identifier, path := addressing.Split(addr)
	if identifier != "." {
		return addressing.Parse(addr)
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	info, err := gitremote.Origin(dir)
	if err != nil {
		return nil, err
	}

	return &addressing.Address{
		Owner: info.Owner,
		Repo:  info.Repo,
		Path:  path,
	}, nil
}

// remoteTargetPath resolves where an upload lands. An empty path or one
// ending in "/" names a directory, so the local file name is appended.
func remoteTargetPath(remotePath, localFile string) string {
	if remotePath == "" || strings.HasSuffix(remotePath, "/") {
		return remotePath + filepath.Base(localFile)
	}
	return remotePath
}
