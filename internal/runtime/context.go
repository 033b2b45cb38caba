package runtime

import (
	"context"

	"github.com/lhabacuc/gitup/internal/credential"
	"github.com/lhabacuc/gitup/internal/github"
	"github.com/lhabacuc/gitup/internal/tui"
)

// Context provides access to the GitHub client and output for commands
type Context struct {
	Splog  *tui.Splog
	GitHub github.Client
}

// NewContext creates a new context with the given GitHub client
func NewContext(client github.Client) *Context {
	return &Context{
		Splog:  newSplog(),
		GitHub: client,
	}
}

// NewLocalContext creates a context without a GitHub client, for commands
// that manage credentials themselves and must work before login.
func NewLocalContext() *Context {
	return &Context{
		Splog: newSplog(),
	}
}

// newSplog builds the logger with file logging enabled, falling back to
// console-only logging when the log file cannot be opened.
func newSplog() *tui.Splog {
	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		return tui.NewSplog()
	}
	return splog
}

// GetContext creates the context for commands that talk to GitHub. It loads
// the stored token and builds an authenticated client. Commands run before
// 'gitup login' get ErrNotAuthenticated here.
func GetContext(ctx context.Context) (*Context, error) {
	token, err := credential.Load()
	if err != nil {
		return nil, err
	}

	client, err := github.NewRealClient(ctx, token)
	if err != nil {
		return nil, err
	}

	return NewContext(client), nil
}
