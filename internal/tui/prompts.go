package tui

import (
	"fmt"
	"os"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITUP_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITUP_TEST_NO_INTERACTIVE is set)")

// CheckInteractiveAllowed returns an error if interactive mode is disabled for testing
func CheckInteractiveAllowed() error {
	if os.Getenv("GITUP_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}
