package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/lhabacuc/gitup/internal/config"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	client *github.Client
}

// NewRealClient creates a Client authenticated with token, talking to
// the configured GitHub host (github.com unless overridden).
func NewRealClient(ctx context.Context, token string) (*RealClient, error) {
	host, err := config.Host()
	if err != nil {
		return nil, fmt.Errorf("failed to determine GitHub host: %w", err)
	}

	client, err := createGitHubClient(ctx, host, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &RealClient{client: client}, nil
}

// NewClientFromGitHub wraps an already-configured go-github client.
// Tests use this to point the client at a mock server.
func NewClientFromGitHub(client *github.Client) *RealClient {
	return &RealClient{client: client}
}

// createGitHubClient creates a GitHub client configured for the given hostname
// Supports both github.com and GitHub Enterprise instances
func createGitHubClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	// A host given with an explicit scheme is used verbatim as the API
	// base URL. Integration tests point this at a local server.
	if strings.Contains(hostname, "://") {
		baseURL, err := url.Parse(strings.TrimSuffix(hostname, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL %s: %w", hostname, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = baseURL
		return client, nil
	}

	// Configure for GitHub Enterprise if not github.com
	if hostname != "github.com" {
		// GitHub Enterprise API endpoints
		// REST API: https://hostname/api/v3/
		// Upload API: https://hostname/api/uploads/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}

		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}
	// For github.com, the default URLs are already correct

	return client, nil
}

// Viewer returns the login of the authenticated user
func (c *RealClient) Viewer(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}

	if user.Login == nil {
		return "", fmt.Errorf("authenticated user has no login")
	}

	return *user.Login, nil
}

// ListRepositories lists all repositories of the authenticated user
func (c *RealClient) ListRepositories(ctx context.Context) ([]RepositoryInfo, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var repositories []RepositoryInfo
	for {
		repos, resp, err := c.client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories: %w", err)
		}

		for _, repo := range repos {
			repositories = append(repositories, toRepositoryInfo(repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repositories, nil
}

// GetContents fetches the file or directory entry at path
func (c *RealClient) GetContents(ctx context.Context, owner, repo, path string) (*Entry, []Entry, error) {
	file, dir, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, gituperrors.NewPathNotFoundError(owner+"/"+repo, path)
		}
		return nil, nil, fmt.Errorf("failed to get contents of %s: %w", path, err)
	}

	if file != nil {
		entry := toEntry(file)
		return &entry, nil, nil
	}

	entries := make([]Entry, 0, len(dir))
	for _, item := range dir {
		entries = append(entries, toEntry(item))
	}

	return nil, entries, nil
}

// ReadFile returns the decoded content of the file at path
func (c *RealClient) ReadFile(ctx context.Context, owner, repo, path string) ([]byte, error) {
	file, _, _, err := c.client.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, gituperrors.NewPathNotFoundError(owner+"/"+repo, path)
		}
		return nil, fmt.Errorf("failed to get contents of %s: %w", path, err)
	}

	if file == nil {
		return nil, gituperrors.NewIsDirectoryError(path)
	}

	content, err := file.GetContent()
	if err == nil && (content != "" || file.GetSize() == 0) {
		return []byte(content), nil
	}

	// Files above the contents API size limit come back truncated;
	// fall back to the raw download endpoint.
	reader, _, err := c.client.Repositories.DownloadContents(ctx, owner, repo, path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return data, nil
}

// CreateFile creates a new file at path
func (c *RealClient) CreateFile(ctx context.Context, owner, repo, path string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Add %s", path)),
		Content: content,
	}

	_, _, err := c.client.Repositories.CreateFile(ctx, owner, repo, path, opts)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	return nil
}

// UpdateFile replaces the file at path, guarded by the prior content SHA
func (c *RealClient) UpdateFile(ctx context.Context, owner, repo, path string, content []byte, sha string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Update %s", path)),
		Content: content,
		SHA:     github.String(sha),
	}

	_, _, err := c.client.Repositories.UpdateFile(ctx, owner, repo, path, opts)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}

	return nil
}

// DeleteFile removes the file at path, guarded by the prior content SHA
func (c *RealClient) DeleteFile(ctx context.Context, owner, repo, path, sha string) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Remove %s", path)),
		SHA:     github.String(sha),
	}

	_, _, err := c.client.Repositories.DeleteFile(ctx, owner, repo, path, opts)
	if err != nil {
		if isNotFound(err) {
			return gituperrors.NewPathNotFoundError(owner+"/"+repo, path)
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}

	return nil
}

// toEntry converts a github.RepositoryContent to an Entry
func toEntry(content *github.RepositoryContent) Entry {
	entry := Entry{}

	if content.Name != nil {
		entry.Name = *content.Name
	}
	if content.Path != nil {
		entry.Path = *content.Path
	}
	if content.Type != nil {
		entry.Type = *content.Type
	}
	if content.SHA != nil {
		entry.SHA = *content.SHA
	}
	if content.Size != nil {
		entry.Size = *content.Size
	}

	return entry
}

// toRepositoryInfo converts a github.Repository to a RepositoryInfo
func toRepositoryInfo(repo *github.Repository) RepositoryInfo {
	info := RepositoryInfo{}

	if repo.Name != nil {
		info.Name = *repo.Name
	}
	if repo.FullName != nil {
		info.FullName = *repo.FullName
	}
	if repo.Private != nil {
		info.Private = *repo.Private
	}

	return info
}

// isNotFound reports whether err is a GitHub 404 response
func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
