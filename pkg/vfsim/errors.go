package vfsim

import (
	"errors"
	"strings"
)

// Sentinel errors for process-level failures.
// Command failures inside a script (missing paths, name collisions) are
// reported on the error sink and never surface here.
//
// Example usage:
//
//	err := cli.Execute()
//	if errors.Is(err, vfsim.ErrScriptNotFound) {
//	    // the script path was wrong
//	}
var (
	// ErrScriptNotFound indicates the command script could not be opened.
	ErrScriptNotFound = errors.New("script not found")

	// ErrInvalidConfig indicates vfsim.yaml is malformed or fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputFailed indicates an output or error sink could not be created or written.
	ErrOutputFailed = errors.New("output failed")
)

// usageErrorPatterns are substrings of cobra's argument and flag errors.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"missing required argument",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrScriptNotFound):
		return ExitScriptNotFound
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrOutputFailed):
		return ExitOutputError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
