package testhelpers

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Login is the authenticated user's login for the /user endpoint
	Login string
	// Repositories returned by the repository listing endpoint
	Repositories []*github.Repository
	// Files maps in-repo paths to file contents for the contents endpoints
	Files map[string]string
	// Commits records commit messages of content mutations (for testing)
	Commits []string
	// Owner and Repo for the mock server
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Login: "octocat",
		Files: make(map[string]string),
		Owner: "owner",
		Repo:  "repo",
	}
}

// BlobSHA returns the git blob SHA of content, matching what the mock
// server reports for files.
func BlobSHA(content string) string {
	h := sha1.New()
	fmt.Fprintf(h, "blob %d", len(content))
	h.Write([]byte{0})
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil))
}

// NewMockGitHubServer creates an httptest server that mocks the GitHub
// user, repository listing, and repository contents endpoints.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()

	// GET /user (authenticated user)
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"login": config.Login})
	})

	// GET /user/repos (repository listing)
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		repos := config.Repositories
		if repos == nil {
			repos = []*github.Repository{}
		}
		writeJSON(w, http.StatusOK, repos)
	})

	// Contents endpoints: GET/PUT/DELETE /repos/{owner}/{repo}/contents/{path}
	contentsPrefix := "/repos/" + config.Owner + "/" + config.Repo + "/contents/"
	mux.HandleFunc(contentsPrefix, func(w http.ResponseWriter, r *http.Request) {
		path := strings.Trim(strings.TrimPrefix(r.URL.Path, contentsPrefix), "/")

		switch r.Method {
		case http.MethodGet:
			config.handleGetContents(w, path)
		case http.MethodPut:
			config.handlePutContents(w, r, path)
		case http.MethodDelete:
			config.handleDeleteContents(w, r, path)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	owner := config.Owner
	repo := config.Repo
	if owner == "" {
		owner = "owner"
	}
	if repo == "" {
		repo = "repo"
	}

	return client, owner, repo
}

func (c *MockGitHubServerConfig) handleGetContents(w http.ResponseWriter, path string) {
	if content, ok := c.Files[path]; ok && path != "" {
		writeJSON(w, http.StatusOK, fileContentJSON(path, content))
		return
	}

	entries, found := c.directoryEntries(path)
	if !found {
		writeGitHubError(w, http.StatusNotFound, "Not Found")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (c *MockGitHubServerConfig) handlePutContents(w http.ResponseWriter, r *http.Request, path string) {
	var body struct {
		Message string  `json:"message"`
		Content string  `json:"content"`
		SHA     *string `json:"sha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeGitHubError(w, http.StatusBadRequest, "Problems parsing JSON")
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(body.Content)
	if err != nil {
		writeGitHubError(w, http.StatusBadRequest, "content is not valid Base64")
		return
	}

	existing, exists := c.Files[path]

	if body.SHA == nil {
		// Create: the path must not already exist
		if exists {
			writeGitHubError(w, http.StatusUnprocessableEntity,
				`Invalid request. "sha" wasn't supplied.`)
			return
		}
		c.Files[path] = string(decoded)
		c.Commits = append(c.Commits, body.Message)
		writeJSON(w, http.StatusCreated, contentResponseJSON(path, string(decoded)))
		return
	}

	// Update: the prior SHA must match
	if !exists {
		writeGitHubError(w, http.StatusNotFound, "Not Found")
		return
	}
	if *body.SHA != BlobSHA(existing) {
		writeGitHubError(w, http.StatusConflict, path+" does not match "+*body.SHA)
		return
	}
	c.Files[path] = string(decoded)
	c.Commits = append(c.Commits, body.Message)
	writeJSON(w, http.StatusOK, contentResponseJSON(path, string(decoded)))
}

func (c *MockGitHubServerConfig) handleDeleteContents(w http.ResponseWriter, r *http.Request, path string) {
	var body struct {
		Message string  `json:"message"`
		SHA     *string `json:"sha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeGitHubError(w, http.StatusBadRequest, "Problems parsing JSON")
		return
	}

	existing, exists := c.Files[path]
	if !exists {
		writeGitHubError(w, http.StatusNotFound, "Not Found")
		return
	}
	if body.SHA == nil || *body.SHA != BlobSHA(existing) {
		writeGitHubError(w, http.StatusConflict, path+" does not match the expected sha")
		return
	}

	delete(c.Files, path)
	c.Commits = append(c.Commits, body.Message)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"commit": map[string]interface{}{"sha": BlobSHA(existing)},
	})
}

// directoryEntries returns the direct children of dir. The second
// return reports whether the directory exists; the repository root
// always does, other directories only while files live under them.
func (c *MockGitHubServerConfig) directoryEntries(dir string) ([]map[string]interface{}, bool) {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}

	seen := make(map[string]bool)
	entries := []map[string]interface{}{}
	found := dir == ""

	for path, content := range c.Files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		found = true

		rest := strings.TrimPrefix(path, prefix)
		name, _, isNested := strings.Cut(rest, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if isNested {
			entries = append(entries, map[string]interface{}{
				"type": "dir",
				"name": name,
				"path": prefix + name,
				"sha":  BlobSHA(prefix + name),
				"size": 0,
			})
		} else {
			entries = append(entries, map[string]interface{}{
				"type": "file",
				"name": name,
				"path": path,
				"sha":  BlobSHA(content),
				"size": len(content),
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i]["name"].(string) < entries[j]["name"].(string)
	})

	return entries, found
}

func fileContentJSON(path, content string) map[string]interface{} {
	return map[string]interface{}{
		"type":     "file",
		"encoding": "base64",
		"name":     baseName(path),
		"path":     path,
		"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		"sha":      BlobSHA(content),
		"size":     len(content),
	}
}

func contentResponseJSON(path, content string) map[string]interface{} {
	return map[string]interface{}{
		"content": map[string]interface{}{
			"name": baseName(path),
			"path": path,
			"sha":  BlobSHA(content),
			"size": len(content),
		},
		"commit": map[string]interface{}{
			"sha": BlobSHA(path + content),
		},
	}
}

func baseName(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeGitHubError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"message": message})
}
