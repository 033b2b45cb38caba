// Package github provides a client for interacting with the GitHub API.
package github

import "context"

// Entry contains information about one file or directory in a repository.
// This is a simplified struct to avoid coupling to go-github library
type Entry struct {
	Name string
	Path string
	Type string // "file" or "dir"
	SHA  string
	Size int
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Type == "dir"
}

// RepositoryInfo contains information about a repository
// This is a simplified struct to avoid coupling to go-github library
type RepositoryInfo struct {
	Name     string
	FullName string
	Private  bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// Viewer returns the login of the authenticated user
	Viewer(ctx context.Context) (string, error)

	// ListRepositories lists all repositories of the authenticated user
	ListRepositories(ctx context.Context) ([]RepositoryInfo, error)

	// GetContents fetches the entry at path. Exactly one of file and dir
	// is set: a file path yields file, a directory path yields its
	// entries. A missing path yields an error satisfying ErrPathNotFound.
	GetContents(ctx context.Context, owner, repo, path string) (file *Entry, dir []Entry, err error)

	// ReadFile returns the decoded content of the file at path
	ReadFile(ctx context.Context, owner, repo, path string) ([]byte, error)

	// CreateFile creates a new file at path
	CreateFile(ctx context.Context, owner, repo, path string, content []byte) error

	// UpdateFile replaces the file at path, guarded by the prior content SHA
	UpdateFile(ctx context.Context, owner, repo, path string, content []byte, sha string) error

	// DeleteFile removes the file at path, guarded by the prior content SHA
	DeleteFile(ctx context.Context, owner, repo, path, sha string) error
}
