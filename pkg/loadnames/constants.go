package loadnames

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // All names were loaded
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or flags
	ExitNetworkError    = 11 // A POST to the endpoint failed at the transport level
	ExitFileAccessError = 20 // Names file missing or unreadable
)

// Defaults target the demo customer endpoint on a local server.
const (
	DefaultInputPath = "names.txt"
	DefaultScheme    = "http"
	DefaultHost      = "localhost"
	DefaultPort      = 8080
	DefaultPath      = "/sdrdemo/rest/customer"

	// DefaultCompletionMessage is printed to stdout after the last record.
	DefaultCompletionMessage = "All done!"

	// EmailDomain is appended to every derived address.
	EmailDomain = "example.com"

	// ContentTypeJSON is the Content-Type of every POST.
	ContentTypeJSON = "application/json"

	// RequestIDHeader carries a per-request UUID so endpoint logs can be correlated.
	RequestIDHeader = "X-Request-ID"
)

const (
	// DefaultTimeout of zero means requests never time out.
	// A hung endpoint stalls the run until it is interrupted.
	DefaultTimeout time.Duration = 0

	// DefaultRetryAttempts of zero keeps fail-fast semantics: the first
	// network error ends the run.
	DefaultRetryAttempts = 0

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 10 * time.Second
)
