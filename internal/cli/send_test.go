package cli_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhabacuc/gitup/testhelpers"
)

func TestSendCommand(t *testing.T) {
	binaryPath := getGitupBinary(t)

	t.Run("uploads a file end to end", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.SeedToken("test-token"))

		config := testhelpers.NewMockGitHubServerConfig()
		config.Owner = "octocat"
		config.Repo = "hello"
		server := testhelpers.NewMockGitHubServer(t, config)
		t.Setenv("GITUP_HOST", server.URL)

		_, err := scene.WriteLocalFile("notes.txt", "remember this\n")
		require.NoError(t, err)

		cmd := exec.Command(binaryPath, "send", "notes.txt", "octocat/hello:docs/")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "send failed: %s", output)
		require.Contains(t, string(output), "Created docs/notes.txt in octocat/hello")
		require.Equal(t, "remember this\n", config.Files["docs/notes.txt"])
		require.Equal(t, []string{"Add docs/notes.txt"}, config.Commits)
	})

	t.Run("missing local file exits with code 1", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.SeedToken("test-token"))

		cmd := exec.Command(binaryPath, "send", "missing.txt", "octocat/hello")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.Error(t, err)

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 1, exitErr.ExitCode())
		require.Contains(t, string(output), "gitup ERR! file not found: missing.txt")
	})
}
