package actions

import (
	"fmt"
	"os"

	"github.com/lhabacuc/gitup/internal/credential"
	"github.com/lhabacuc/gitup/internal/runtime"
)

// LogoutAction deletes the persisted token. A missing token is not an error.
func LogoutAction(runtimeCtx *runtime.Context) error {
	splog := runtimeCtx.Splog

	if err := credential.Delete(); err != nil {
		if os.IsNotExist(err) {
			splog.Info("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}

	splog.Success("Logged out.")
	return nil
}
