// Package tui provides the terminal user interface for gitup.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Progress spinners for API calls (using bubbletea)
//   - The interactive-prompt gate used by the login flow
package tui
