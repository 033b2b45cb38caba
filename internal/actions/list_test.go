package actions_test

import (
	"context"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/require"

	"github.com/lhabacuc/gitup/internal/actions"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/testhelpers"
)

func TestListAction_Repositories(t *testing.T) {
	newRepoListConfig := func() *testhelpers.MockGitHubServerConfig {
		config := testhelpers.NewMockGitHubServerConfig()
		config.Repositories = []*github.Repository{
			testhelpers.NewSampleRepository(testhelpers.PublicRepoData("hello")),
			testhelpers.NewSampleRepository(testhelpers.PrivateRepoData("secret")),
		}
		return config
	}

	t.Run("lists the user's repositories with no target", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, newRepoListConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Repositories for octocat:")
		require.Contains(t, out.String(), "octocat/hello (public)")
		require.Contains(t, out.String(), "octocat/secret (private)")
	})

	t.Run("treats the literal :. as the repositories listing", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, newRepoListConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{Target: ":."})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Repositories for octocat:")
	})

	t.Run("reports when there are no repositories", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, testhelpers.NewMockGitHubServerConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{})
		require.NoError(t, err)

		require.Contains(t, out.String(), "No repositories found")
	})
}

func TestListAction_Contents(t *testing.T) {
	t.Run("lists a directory with file and folder entries", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, helloRepoConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: "octocat/hello:docs",
		})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Contents of octocat/hello:docs:")
		require.Contains(t, out.String(), "📄 guide.md")
		require.Contains(t, out.String(), "📁 img")
	})

	t.Run("lists the repository root as /", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, helloRepoConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: "octocat/hello",
		})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Contents of octocat/hello:/:")
		require.Contains(t, out.String(), "📄 README.md")
		require.Contains(t, out.String(), "📁 docs")
		require.Contains(t, out.String(), "📁 src")
	})

	t.Run("lists a file path as its single entry", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, helloRepoConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: "octocat/hello:README.md",
		})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Contents of octocat/hello:README.md:")
		require.Contains(t, out.String(), "📄 README.md")
		require.NotContains(t, out.String(), "📁")
	})

	t.Run("rejects a missing path with hints", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: "octocat/hello:ghost",
		})
		require.ErrorIs(t, err, gituperrors.ErrPathNotFound)
		require.NotEmpty(t, gituperrors.HintsFrom(err))
	})

	t.Run("rejects a malformed target", func(t *testing.T) {
		testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: "onlyowner:docs",
		})
		require.ErrorIs(t, err, gituperrors.ErrInvalidAddress)
		require.NotEmpty(t, gituperrors.HintsFrom(err))
	})

	t.Run("resolves . to the origin remote of the working directory", func(t *testing.T) {
		s := testhelpers.NewScene(t, nil)
		runtimeCtx, out := newTestContext(t, helloRepoConfig())

		repo, err := gogit.PlainInit(s.Dir, false)
		require.NoError(t, err)
		_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:octocat/hello.git"},
		})
		require.NoError(t, err)
		chdir(t, s.Dir)

		err = actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: ".:docs",
		})
		require.NoError(t, err)

		require.Contains(t, out.String(), "Contents of octocat/hello:docs:")
	})

	t.Run("fails for . outside a git repository", func(t *testing.T) {
		s := testhelpers.NewScene(t, nil)
		runtimeCtx, _ := newTestContext(t, helloRepoConfig())
		chdir(t, s.Dir)

		err := actions.ListAction(context.Background(), runtimeCtx, actions.ListOptions{
			Target: ".",
		})
		require.ErrorIs(t, err, gituperrors.ErrRemoteNotFound)
	})
}
