// Package errors provides sentinel errors and custom error types for the gitup application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotAuthenticated indicates that no access token is available
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidAddress indicates a malformed repository address
	ErrInvalidAddress = errors.New("invalid repository address")

	// ErrRemoteNotFound indicates that no usable git remote was found
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrPathNotFound indicates that a path does not exist in the repository
	ErrPathNotFound = errors.New("path not found")

	// ErrIsDirectory indicates an operation that only accepts files was given a directory
	ErrIsDirectory = errors.New("is a directory")
)

// InvalidAddressError represents a repository address that could not be parsed
type InvalidAddressError struct {
	Address string
	Reason  string
}

func (e *InvalidAddressError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid repository address %q: %s", e.Address, e.Reason)
	}
	return fmt.Sprintf("invalid repository address %q", e.Address)
}

// Is returns true if the target error is ErrInvalidAddress
func (e *InvalidAddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// NewInvalidAddressError creates a new InvalidAddressError
func NewInvalidAddressError(address string, reason string) *InvalidAddressError {
	return &InvalidAddressError{
		Address: address,
		Reason:  reason,
	}
}

// PathNotFoundError represents an error when a path does not exist in a repository
type PathNotFoundError struct {
	Repository string
	Path       string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist in %s", e.Path, e.Repository)
}

// Is returns true if the target error is ErrPathNotFound
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// NewPathNotFoundError creates a new PathNotFoundError
func NewPathNotFoundError(repository string, path string) *PathNotFoundError {
	return &PathNotFoundError{
		Repository: repository,
		Path:       path,
	}
}

// IsDirectoryError represents an error when a file operation hits a directory
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s is a directory", e.Path)
}

// Is returns true if the target error is ErrIsDirectory
func (e *IsDirectoryError) Is(target error) bool {
	return target == ErrIsDirectory
}

// NewIsDirectoryError creates a new IsDirectoryError
func NewIsDirectoryError(path string) *IsDirectoryError {
	return &IsDirectoryError{Path: path}
}

// HintedError wraps an error with extra lines of advice for the user.
// The CLI prints each hint on its own line below the error message.
type HintedError struct {
	Err   error
	Hints []string
}

func (e *HintedError) Error() string {
	return e.Err.Error()
}

func (e *HintedError) Unwrap() error {
	return e.Err
}

// WithHint wraps err with advice lines to show the user
func WithHint(err error, hints ...string) *HintedError {
	return &HintedError{
		Err:   err,
		Hints: hints,
	}
}

// HintsFrom extracts hint lines from err, if any
func HintsFrom(err error) []string {
	var hinted *HintedError
	if errors.As(err, &hinted) {
		return hinted.Hints
	}
	return nil
}
