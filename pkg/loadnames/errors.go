package loadnames

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := loader.Run(ctx, cfg)
//	if errors.Is(err, loadnames.ErrFileAccess) {
//	    // names file could not be opened or read
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFileAccess indicates the names file is missing or unreadable.
	ErrFileAccess = errors.New("file access failed")

	// ErrNetwork indicates a transport-level failure while sending a record:
	// connection refused, DNS failure, reset, timeout.
	ErrNetwork = errors.New("network error")
)

// usageErrorPrefixes are the message prefixes cobra and pflag use for
// command-line misuse.
var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"bad flag syntax",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFileAccess):
		return ExitFileAccessError
	case errors.Is(err, ErrNetwork):
		return ExitNetworkError
	}

	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	// Transport errors that escaped wrapping still get the network code.
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitNetworkError
	}

	return ExitGeneralError
}
