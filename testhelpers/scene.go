package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with an isolated home for gitup's
// credential, configuration, and log files, plus a scratch directory
// for local files.
// NOTE: NewScene is NOT safe for parallel tests as it uses t.Setenv.
type Scene struct {
	Dir        string
	TokenFile  string
	ConfigFile string
	LogFile    string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene and points the GITUP_* environment
// variables into it. Cleanup is automatic via t.Cleanup().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gitup-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	scene := &Scene{
		Dir:        filepath.Join(tmpDir, "work"),
		TokenFile:  filepath.Join(tmpDir, "token"),
		ConfigFile: filepath.Join(tmpDir, "config.json"),
		LogFile:    filepath.Join(tmpDir, "gitup.log"),
	}

	if err := os.MkdirAll(scene.Dir, 0755); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create work dir: %v", err)
	}

	t.Setenv("GITUP_TOKEN", "")
	t.Setenv("GITUP_HOST", "")
	t.Setenv("GITUP_TOKEN_FILE", scene.TokenFile)
	t.Setenv("GITUP_CONFIG_FILE", scene.ConfigFile)
	t.Setenv("GITUP_LOG_FILE", scene.LogFile)

	// Run custom setup if provided
	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// SeedToken writes a token file so commands find a stored credential.
func (s *Scene) SeedToken(token string) error {
	return os.WriteFile(s.TokenFile, []byte(token), 0600)
}

// WriteLocalFile creates a file under the scene's scratch directory and
// returns its absolute path.
func (s *Scene) WriteLocalFile(relPath, content string) (string, error) {
	path := filepath.Join(s.Dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
