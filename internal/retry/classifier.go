package retry

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// NetworkErrorClassifier implements ErrorClassifier for HTTP transport errors.
type NetworkErrorClassifier struct{}

// NewNetworkErrorClassifier creates a new network error classifier.
func NewNetworkErrorClassifier() *NetworkErrorClassifier {
	return &NetworkErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *NetworkErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// The user asked to stop.
	if errors.Is(err, context.Canceled) {
		return false
	}

	if c.isSyscallError(err) {
		return true
	}

	if c.isTimeout(err) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.IsTemporary || dnsErr.IsTimeout
	}

	return c.matchesTransientMessage(err)
}

func (c *NetworkErrorClassifier) isSyscallError(err error) bool {
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ECONNABORTED,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
		syscall.EPIPE,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func (c *NetworkErrorClassifier) isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// matchesTransientMessage catches transport errors that reach us only as text.
func (c *NetworkErrorClassifier) matchesTransientMessage(err error) bool {
	errMsg := strings.ToLower(err.Error())

	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"network is unreachable",
		"i/o timeout",
		"server closed idle connection",
		"unexpected eof",
	}

	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

var _ loadnames.ErrorClassifier = (*NetworkErrorClassifier)(nil)
