// Package credential stores the GitHub access token that gitup
// authenticates with. The token lives in a plaintext file in the user's
// home directory and is created by login and removed by logout.
package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lhabacuc/gitup/internal/errors"
)

const tokenFileName = ".gitup_token"

// TokenPath returns the location of the token file. GITUP_TOKEN_FILE
// overrides the default ~/.gitup_token.
func TokenPath() (string, error) {
	if path := os.Getenv("GITUP_TOKEN_FILE"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(home, tokenFileName), nil
}

// Load returns the stored access token. The GITUP_TOKEN environment
// variable takes precedence over the token file. A missing token yields
// ErrNotAuthenticated.
func Load() (string, error) {
	if token := strings.TrimSpace(os.Getenv("GITUP_TOKEN")); token != "" {
		return token, nil
	}

	path, err := TokenPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WithHint(errors.ErrNotAuthenticated, "Run 'gitup login' to authenticate.")
		}
		return "", fmt.Errorf("failed to read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errors.WithHint(errors.ErrNotAuthenticated, "Run 'gitup login' to authenticate.")
	}

	return token, nil
}

// Save writes the token to the token file, readable only by the user.
func Save(token string) error {
	path, err := TokenPath()
	if err != nil {
		return err
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("refusing to save an empty token")
	}

	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Exists reports whether a token file is present on disk.
func Exists() bool {
	path, err := TokenPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Delete removes the token file. Deleting an absent token returns an
// error satisfying os.IsNotExist.
func Delete() error {
	path, err := TokenPath()
	if err != nil {
		return err
	}

	return os.Remove(path)
}
