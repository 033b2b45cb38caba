package actions

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/lhabacuc/gitup/internal/tui"
)

// promptToken asks for a personal access token with hidden input
func promptToken() (string, error) {
	if err := tui.CheckInteractiveAllowed(); err != nil {
		return "", err
	}

	var token string
	prompt := &survey.Password{
		Message: "GitHub token:",
	}
	if err := survey.AskOne(prompt, &token); err != nil {
		return "", fmt.Errorf("canceled")
	}

	return token, nil
}

// confirmReplaceToken asks before replacing an already saved token
func confirmReplaceToken() (bool, error) {
	if err := tui.CheckInteractiveAllowed(); err != nil {
		return false, err
	}

	var replace bool
	prompt := &survey.Confirm{
		Message: "A token is already saved. Replace it?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &replace); err != nil {
		return false, fmt.Errorf("canceled")
	}

	return replace, nil
}
