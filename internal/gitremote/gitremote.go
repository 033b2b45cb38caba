// Package gitremote resolves the GitHub repository behind the current
// working directory, so commands can accept "." in place of owner/repo.
package gitremote

import (
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/lhabacuc/gitup/internal/errors"
)

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// Origin resolves the origin remote of the git repository enclosing dir
func Origin(dir string) (*RepoInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: not inside a git repository", errors.ErrRemoteNotFound)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return nil, fmt.Errorf("%w: repository has no origin remote", errors.ErrRemoteNotFound)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: origin remote has no URL", errors.ErrRemoteNotFound)
	}

	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL parses a git remote URL and extracts hostname, owner, and repo.
// Supports both github.com and GitHub Enterprise URLs.
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.company.com/owner/repo.git
func ParseRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, ".git")
	remoteURL = strings.TrimPrefix(remoteURL, "ssh://")

	var hostname, path string

	if at := strings.Index(remoteURL, "@"); at >= 0 {
		// SSH format: git@hostname:owner/repo or git@hostname/owner/repo
		hostAndPath := remoteURL[at+1:]

		if colon := strings.Index(hostAndPath, ":"); colon >= 0 {
			hostname = hostAndPath[:colon]
			path = hostAndPath[colon+1:]
		} else if slash := strings.Index(hostAndPath, "/"); slash >= 0 {
			hostname = hostAndPath[:slash]
			path = hostAndPath[slash+1:]
		} else {
			return nil, fmt.Errorf("invalid SSH remote URL: missing path")
		}
	} else {
		// HTTPS format: https://hostname/owner/repo
		remoteURL = strings.TrimPrefix(remoteURL, "https://")
		remoteURL = strings.TrimPrefix(remoteURL, "http://")

		if slash := strings.Index(remoteURL, "/"); slash >= 0 {
			hostname = remoteURL[:slash]
			path = remoteURL[slash+1:]
		} else {
			return nil, fmt.Errorf("invalid HTTPS remote URL: missing path")
		}
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid remote URL: path must be owner/repo")
	}
	owner := parts[len(parts)-2]
	repo := parts[len(parts)-1]

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}
