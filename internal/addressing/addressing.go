// Package addressing parses the owner/repo:path addresses that gitup
// commands accept for remote files and directories.
package addressing

import (
	"strings"

	"github.com/lhabacuc/gitup/internal/errors"
)

// Address identifies a file or directory inside a GitHub repository.
// An empty Path refers to the repository root.
type Address struct {
	Owner string
	Repo  string
	Path  string
}

// Split separates an address into its repository identifier and path.
// Only the first ':' delimits; everything after it, colons included,
// belongs to the path. An address without ':' has an empty path.
func Split(addr string) (identifier, path string) {
	if idx := strings.Index(addr, ":"); idx >= 0 {
		return addr[:idx], addr[idx+1:]
	}
	return addr, ""
}

// Parse parses addr into an Address. The repository identifier before
// the first ':' must be owner/repo with exactly one slash and a
// non-empty owner and repo.
func Parse(addr string) (*Address, error) {
	identifier, path := Split(addr)

	owner, repo, err := splitIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	return &Address{
		Owner: owner,
		Repo:  repo,
		Path:  path,
	}, nil
}

func splitIdentifier(identifier string) (owner, repo string, err error) {
	if strings.Count(identifier, "/") != 1 {
		return "", "", errors.NewInvalidAddressError(identifier, "expected owner/repo")
	}

	parts := strings.SplitN(identifier, "/", 2)
	owner, repo = parts[0], parts[1]
	if owner == "" || repo == "" {
		return "", "", errors.NewInvalidAddressError(identifier, "owner and repo must not be empty")
	}

	return owner, repo, nil
}

// Repository returns the owner/repo identifier.
func (a *Address) Repository() string {
	return a.Owner + "/" + a.Repo
}

// String returns the canonical owner/repo:path form.
func (a *Address) String() string {
	return a.Repository() + ":" + a.Path
}

// IsLocal reports whether a copy argument names a local filesystem path
// rather than a repository address. Arguments that start with '.' or
// contain no ':' are local.
func IsLocal(arg string) bool {
	return strings.HasPrefix(arg, ".") || !strings.Contains(arg, ":")
}
