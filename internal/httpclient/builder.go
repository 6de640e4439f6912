package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// EncodeRecord renders rec as a compact JSON object. HTML characters are
// left unescaped so the body carries the name exactly as read.
func EncodeRecord(rec loadnames.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// BuildRequest builds the POST carrying rec to endpointURL.
func BuildRequest(ctx context.Context, endpointURL string, rec loadnames.Record, requestID string) (*http.Request, error) {
	payload, err := EncodeRecord(rec)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpointURL, err)
	}

	req.Header.Set("Content-Type", loadnames.ContentTypeJSON)
	if requestID != "" {
		req.Header.Set(loadnames.RequestIDHeader, requestID)
	}

	return req, nil
}
