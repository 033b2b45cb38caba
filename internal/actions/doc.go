// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a gitup command (login, logout, send, copy,
// rm, ls) and orchestrates operations across the credential, addressing,
// and github packages.
//
// Key patterns:
//   - Actions accept a context.Context for API calls plus a runtime.Context
//     which provides the GitHub client and Splog
//   - Actions are stateless - credentials and config live on disk
//   - Actions handle user interaction through the tui package
package actions
