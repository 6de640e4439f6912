package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// Sender POSTs records to a fixed endpoint through one shared client.
// The response is never inspected: every status code counts as delivered.
type Sender struct {
	client *http.Client
	url    string
	logger loadnames.Logger
	newID  func() string
}

// NewSender creates a Sender for endpoint.
// Panics if client or logger is nil.
func NewSender(client *http.Client, endpoint loadnames.Endpoint, logger loadnames.Logger) *Sender {
	if client == nil {
		panic("client cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Sender{
		client: client,
		url:    endpoint.URL(),
		logger: logger,
		newID:  uuid.NewString,
	}
}

// URL returns the endpoint address records are sent to.
func (s *Sender) URL() string {
	return s.url
}

// Send POSTs rec and waits for the response.
// Transport failures wrap loadnames.ErrNetwork; cancellation returns the context error.
func (s *Sender) Send(ctx context.Context, rec loadnames.Record) error {
	requestID := s.newID()

	req, err := BuildRequest(ctx, s.url, rec, requestID)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("POST %s: %w", s.url, err)
		}
		return fmt.Errorf("POST %s: %w: %w", s.url, loadnames.ErrNetwork, err)
	}

	// Drain so the connection goes back to the pool for the next record.
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	s.logger.Verbose("POST %s -> %d (request %s)", s.url, resp.StatusCode, requestID)
	return nil
}

var _ loadnames.RecordSender = (*Sender)(nil)
