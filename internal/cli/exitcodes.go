package cli

import (
	"errors"

	"github.com/yaklabco/markscan/internal/configloader"
	"github.com/yaklabco/markscan/pkg/runner"
)

// Exit codes for markscan.
const (
	// ExitSuccess indicates every file was scanned.
	ExitSuccess = 0

	// ExitScanFailures indicates at least one file could not be scanned.
	ExitScanFailures = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ErrScanFailures is returned when one or more files could not be scanned.
var ErrScanFailures = errors.New("scan failures")

// ErrInvalidUsage wraps errors caused by bad flags or arguments.
var ErrInvalidUsage = errors.New("invalid usage")

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result.HasFailures() {
		return ExitScanFailures
	}
	return ExitSuccess
}

// ExitCodeFromError maps a command error to an exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrScanFailures):
		return ExitScanFailures
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
