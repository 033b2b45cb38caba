package main

import (
	"os"

	"github.com/lhabacuc/gitup/internal/cli"
	gituperrors "github.com/lhabacuc/gitup/internal/errors"
	"github.com/lhabacuc/gitup/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		splog := tui.NewSplog()
		splog.Error("%v", err)
		for _, hint := range gituperrors.HintsFrom(err) {
			splog.Dim("%s", hint)
		}
		os.Exit(1)
	}
}
