package actions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lhabacuc/gitup/internal/github"
	"github.com/lhabacuc/gitup/internal/runtime"
	"github.com/lhabacuc/gitup/internal/tui"
	"github.com/lhabacuc/gitup/testhelpers"
)

// chdir changes the working directory for the duration of the test and
// restores it at cleanup, like testing.T.Chdir, which needs a newer Go
// toolchain than this module builds with.
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	if !filepath.IsAbs(dir) {
		if dir, err = os.Getwd(); err != nil {
			t.Fatalf("Failed to get working directory: %v", err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			panic("chdir: failed to restore working directory: " + err.Error())
		}
	})
}

// newTestContext builds a runtime context backed by a mock GitHub server,
// capturing console output in the returned buffer.
func newTestContext(t *testing.T, config *testhelpers.MockGitHubServerConfig) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	client, _, _ := testhelpers.NewMockGitHubClient(t, config)

	var buf bytes.Buffer
	runtimeCtx := &runtime.Context{
		Splog:  tui.NewSplogWithWriter(&buf),
		GitHub: github.NewClientFromGitHub(client),
	}
	return runtimeCtx, &buf
}

// helloRepoConfig returns a mock server config for octocat/hello
// preloaded with the sample file tree.
func helloRepoConfig() *testhelpers.MockGitHubServerConfig {
	config := testhelpers.NewMockGitHubServerConfig()
	config.Owner = "octocat"
	config.Repo = "hello"
	config.Files = testhelpers.SampleFileTree()
	return config
}

// emptyRepoConfig returns a mock server config for octocat/hello with no
// files, for upload tests.
func emptyRepoConfig() *testhelpers.MockGitHubServerConfig {
	config := testhelpers.NewMockGitHubServerConfig()
	config.Owner = "octocat"
	config.Repo = "hello"
	return config
}
