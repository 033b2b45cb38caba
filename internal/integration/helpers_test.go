package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhabacuc/gitup/testhelpers"
)

// =============================================================================
// Test Shell - A helper to make integration tests read like terminal sessions
// =============================================================================

// TestShell wraps a test scene and a mock GitHub server, and provides a
// fluent interface for running gitup commands. Tests using this read like
// a series of terminal commands.
type TestShell struct {
	t          *testing.T
	scene      *testhelpers.Scene
	config     *testhelpers.MockGitHubServerConfig
	binaryPath string
	lastOutput string
}

// NewTestShell creates a shell-like test environment that is already
// logged in, talking to a mock server hosting octocat/hello.
func NewTestShell(t *testing.T, binaryPath string) *TestShell {
	t.Helper()
	shell := NewTestShellLoggedOut(t, binaryPath)
	require.NoError(t, shell.scene.SeedToken("integration-token"))
	return shell
}

// NewTestShellLoggedOut creates a shell-like test environment with no
// stored credential, for exercising the login flow itself.
func NewTestShellLoggedOut(t *testing.T, binaryPath string) *TestShell {
	t.Helper()

	scene := testhelpers.NewScene(t, nil)

	config := testhelpers.NewMockGitHubServerConfig()
	config.Owner = "octocat"
	config.Repo = "hello"
	server := testhelpers.NewMockGitHubServer(t, config)
	t.Setenv("GITUP_HOST", server.URL)
	t.Setenv("GITUP_TEST_NO_INTERACTIVE", "1")

	return &TestShell{t: t, scene: scene, config: config, binaryPath: binaryPath}
}

// Scene returns the underlying test scene for direct access when needed.
func (s *TestShell) Scene() *testhelpers.Scene {
	return s.scene
}

// Config returns the mock server config for seeding or inspecting
// repository state directly.
func (s *TestShell) Config() *testhelpers.MockGitHubServerConfig {
	return s.config
}

// Dir returns the working directory of the test shell.
func (s *TestShell) Dir() string {
	return s.scene.Dir
}

// =============================================================================
// Command Execution
// =============================================================================

// Run executes a gitup CLI command (e.g., "send notes.txt octocat/hello")
func (s *TestShell) Run(args string) *TestShell {
	s.t.Helper()
	parts := splitArgs(args)
	cmd := exec.Command(s.binaryPath, parts...)
	cmd.Dir = s.scene.Dir
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.NoError(s.t, err, "$ gitup %s\n%s", args, s.lastOutput)
	return s
}

// RunExpectError executes a gitup CLI command and expects it to fail.
func (s *TestShell) RunExpectError(args string) *TestShell {
	s.t.Helper()
	parts := splitArgs(args)
	cmd := exec.Command(s.binaryPath, parts...)
	cmd.Dir = s.scene.Dir
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.Error(s.t, err, "$ gitup %s (expected error)\n%s", args, s.lastOutput)
	return s
}

// RunWithStdin executes a gitup CLI command with the given standard input.
func (s *TestShell) RunWithStdin(args, stdin string) *TestShell {
	s.t.Helper()
	parts := splitArgs(args)
	cmd := exec.Command(s.binaryPath, parts...)
	cmd.Dir = s.scene.Dir
	cmd.Stdin = strings.NewReader(stdin)
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	require.NoError(s.t, err, "$ gitup %s\n%s", args, s.lastOutput)
	return s
}

// =============================================================================
// File Operations
// =============================================================================

// WriteLocal creates a file under the shell's working directory.
func (s *TestShell) WriteLocal(relPath, content string) *TestShell {
	s.t.Helper()
	_, err := s.scene.WriteLocalFile(relPath, content)
	require.NoError(s.t, err, "failed to write %s", relPath)
	return s
}

// SeedRemote places a file directly into the mock repository.
func (s *TestShell) SeedRemote(path, content string) *TestShell {
	s.t.Helper()
	s.config.Files[path] = content
	return s
}

// =============================================================================
// Output Inspection
// =============================================================================

// Output returns the last command's output
func (s *TestShell) Output() string {
	return s.lastOutput
}

// OutputContains asserts the last output contains the given string
func (s *TestShell) OutputContains(substr string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastOutput, substr)
	return s
}

// OutputNotContains asserts the last output does NOT contain the given string
func (s *TestShell) OutputNotContains(substr string) *TestShell {
	s.t.Helper()
	require.NotContains(s.t, s.lastOutput, substr)
	return s
}

// =============================================================================
// Assertions
// =============================================================================

// RemoteFileEquals asserts a file in the mock repository has the given content.
func (s *TestShell) RemoteFileEquals(path, content string) *TestShell {
	s.t.Helper()
	got, ok := s.config.Files[path]
	require.True(s.t, ok, "expected %s to exist in the repository", path)
	require.Equal(s.t, content, got)
	return s
}

// NoRemoteFile asserts a path does not exist in the mock repository.
func (s *TestShell) NoRemoteFile(path string) *TestShell {
	s.t.Helper()
	require.NotContains(s.t, s.config.Files, path)
	return s
}

// LocalFileEquals asserts a file under the working directory has the given content.
func (s *TestShell) LocalFileEquals(relPath, content string) *TestShell {
	s.t.Helper()
	data, err := os.ReadFile(filepath.Join(s.scene.Dir, filepath.FromSlash(relPath)))
	require.NoError(s.t, err, "failed to read %s", relPath)
	require.Equal(s.t, content, string(data))
	return s
}

// CommitMessages asserts the mock repository saw exactly these commit
// messages, in order.
func (s *TestShell) CommitMessages(messages ...string) *TestShell {
	s.t.Helper()
	require.Equal(s.t, messages, s.config.Commits)
	return s
}

// =============================================================================
// Utility Functions
// =============================================================================

// splitArgs splits a command string into args, respecting quotes
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, r := range s {
		switch {
		case r == '"' || r == '\'':
			switch {
			case inQuote && r == quoteChar:
				inQuote = false
			case !inQuote:
				inQuote = true
				quoteChar = r
			default:
				current.WriteRune(r)
			}
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
