package actions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lhabacuc/gitup/internal/actions"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/testhelpers"
)

func TestRemoveAction(t *testing.T) {
	t.Run("removes a file using its blob sha", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		config := helloRepoConfig()
		runtimeCtx, out := newTestContext(t, config)

		err := actions.RemoveAction(context.Background(), runtimeCtx, actions.RemoveOptions{
			Target: "octocat/hello:docs/guide.md",
		})
		require.NoError(t, err)

		require.NotContains(t, config.Files, "docs/guide.md")
		require.Contains(t, config.Commits, "Remove docs/guide.md")
		require.Contains(t, out.String(), "Removed docs/guide.md from octocat/hello")
	})

	t.Run("rejects a directory path", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		config := helloRepoConfig()
		runtimeCtx, _ := newTestContext(t, config)

		err := actions.RemoveAction(context.Background(), runtimeCtx, actions.RemoveOptions{
			Target: "octocat/hello:docs",
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Cannot remove directory: docs")

		// Nothing was deleted
		require.Contains(t, config.Files, "docs/guide.md")
		require.Empty(t, config.Commits)
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())

		err := actions.RemoveAction(context.Background(), runtimeCtx, actions.RemoveOptions{
			Target: "octocat/hello:ghost.txt",
		})
		require.ErrorIs(t, err, gituperrors.ErrPathNotFound)
		require.NotEmpty(t, gituperrors.HintsFrom(err))
	})

	t.Run("requires a path", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())

		err := actions.RemoveAction(context.Background(), runtimeCtx, actions.RemoveOptions{
			Target: "octocat/hello",
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "no file to remove")
		require.NotEmpty(t, gituperrors.HintsFrom(err))
	})

	t.Run("rejects a malformed target", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())

		err := actions.RemoveAction(context.Background(), runtimeCtx, actions.RemoveOptions{
			Target: "nope:file.txt",
		})
		require.ErrorIs(t, err, gituperrors.ErrInvalidAddress)
	})
}
