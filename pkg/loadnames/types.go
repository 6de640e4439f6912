package loadnames

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Record is the name/email pair derived from one input line.
// Field order matches the JSON body the endpoint receives.
type Record struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Endpoint identifies the HTTP resource records are POSTed to.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

// DefaultEndpoint returns the endpoint the loader targets when nothing is configured.
func DefaultEndpoint() Endpoint {
	return Endpoint{
		Scheme: DefaultScheme,
		Host:   DefaultHost,
		Port:   DefaultPort,
		Path:   DefaultPath,
	}
}

// URL renders the endpoint as an absolute URL string.
func (e Endpoint) URL() string {
	scheme := e.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}
	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(e.Host, strconv.Itoa(e.Port)),
		Path:   e.Path,
	}
	return u.String()
}

// Validate checks the endpoint fields. Errors wrap ErrInvalidConfig.
func (e Endpoint) Validate() error {
	var errs []error

	if strings.TrimSpace(e.Host) == "" {
		errs = append(errs, fmt.Errorf("host is required: %w", ErrInvalidConfig))
	}
	if e.Port < 1 || e.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range 1-65535: %w", e.Port, ErrInvalidConfig))
	}
	if !strings.HasPrefix(e.Path, "/") {
		errs = append(errs, fmt.Errorf("path %q must start with '/': %w", e.Path, ErrInvalidConfig))
	}
	switch e.Scheme {
	case "", "http", "https":
	default:
		errs = append(errs, fmt.Errorf("scheme %q not supported: %w", e.Scheme, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadConfig contains all parameters needed for one loader run.
type LoadConfig struct {
	// InputPath is the newline-delimited names file
	InputPath string

	// Endpoint is where records are POSTed
	Endpoint Endpoint

	// Timeout bounds each request; zero disables the timeout
	Timeout time.Duration

	// RetryAttempts is the number of retries per record on transient
	// network errors; zero keeps fail-fast behavior
	RetryAttempts int

	// CompletionMessage is printed to stdout after the last record;
	// empty means DefaultCompletionMessage
	CompletionMessage string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.InputPath == "" {
		errs = append(errs, fmt.Errorf("InputPath is required: %w", ErrInvalidConfig))
	}

	if err := c.Endpoint.Validate(); err != nil {
		errs = append(errs, err)
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	if c.RetryAttempts < 0 {
		errs = append(errs, fmt.Errorf("retry attempts cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary reports what a run did.
type Summary struct {
	// Lines is the number of lines consumed from the input
	Lines int

	// Sent is the number of records the endpoint acknowledged at the transport level
	Sent int
}
