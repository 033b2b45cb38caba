package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If GITUP_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.gitup/logs/gitup.log
func GetLogFilePath() string {
	if customPath := os.Getenv("GITUP_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "gitup.log"
	}

	logDir := filepath.Join(homeDir, ".gitup", "logs")
	logFile := filepath.Join(logDir, "gitup.log")

	return logFile
}
