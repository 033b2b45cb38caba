package cli_test

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhabacuc/gitup/testhelpers"
)

func TestLogoutCommand(t *testing.T) {
	binaryPath := getGitupBinary(t)

	t.Run("removes the saved token", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.SeedToken("stored-token"))

		cmd := exec.Command(binaryPath, "logout")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "logout failed: %s", output)
		require.Contains(t, string(output), "Logged out.")
		require.NoFileExists(t, scene.TokenFile)
	})

	t.Run("succeeds when not logged in", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		cmd := exec.Command(binaryPath, "logout")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "logout failed: %s", output)
		require.Contains(t, string(output), "Not logged in.")
	})
}
