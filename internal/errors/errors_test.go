package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	gituperrors "github.com/lhabacuc/gitup/internal/errors"
)

func TestTypedErrors(t *testing.T) {
	t.Run("invalid address matches its sentinel", func(t *testing.T) {
		err := gituperrors.NewInvalidAddressError("nope", "expected owner/repo")
		require.ErrorIs(t, err, gituperrors.ErrInvalidAddress)
		require.Equal(t, `invalid repository address "nope": expected owner/repo`, err.Error())
	})

	t.Run("path not found matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("failed to list: %w", gituperrors.NewPathNotFoundError("octocat/hello", "docs/gone.md"))
		require.ErrorIs(t, err, gituperrors.ErrPathNotFound)
		require.Contains(t, err.Error(), "docs/gone.md does not exist in octocat/hello")
	})

	t.Run("is directory matches its sentinel", func(t *testing.T) {
		err := gituperrors.NewIsDirectoryError("docs")
		require.ErrorIs(t, err, gituperrors.ErrIsDirectory)
		require.Equal(t, "docs is a directory", err.Error())
	})
}

func TestHintedError(t *testing.T) {
	t.Run("keeps the message and carries hints", func(t *testing.T) {
		base := errors.New("boom")
		err := gituperrors.WithHint(base, "Try again.", "Or check the address.")
		require.EqualError(t, err, "boom")
		require.Equal(t, []string{"Try again.", "Or check the address."}, gituperrors.HintsFrom(err))
		require.ErrorIs(t, err, base)
	})

	t.Run("hints survive further wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", gituperrors.WithHint(errors.New("inner"), "A hint."))
		require.Equal(t, []string{"A hint."}, gituperrors.HintsFrom(err))
	})

	t.Run("unhinted errors have no hints", func(t *testing.T) {
		require.Nil(t, gituperrors.HintsFrom(errors.New("plain")))
	})
}
