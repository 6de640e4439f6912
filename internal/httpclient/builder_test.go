package httpclient

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

func TestEncodeRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  loadnames.Record
		want string
	}{
		{
			name: "plain",
			rec:  loadnames.Record{Name: "Jane Doe", Email: "doe.jane@example.com"},
			want: `{"name":"Jane Doe","email":"doe.jane@example.com"}`,
		},
		{
			name: "quotes and backslashes escaped",
			rec:  loadnames.Record{Name: `Jo "JJ" \ Doe`, Email: "x@example.com"},
			want: `{"name":"Jo \"JJ\" \\ Doe","email":"x@example.com"}`,
		},
		{
			name: "html characters left alone",
			rec:  loadnames.Record{Name: "A&B <C>", Email: "<c>.a&b@example.com"},
			want: `{"name":"A&B <C>","email":"<c>.a&b@example.com"}`,
		},
		{
			name: "control characters escaped",
			rec:  loadnames.Record{Name: "Ja\tne\r", Email: "e@example.com"},
			want: `{"name":"Ja\tne\r","email":"e@example.com"}`,
		},
		{
			name: "empty name",
			rec:  loadnames.Record{Name: "", Email: "@example.com"},
			want: `{"name":"","email":"@example.com"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeRecord(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestBuildRequest(t *testing.T) {
	rec := loadnames.Record{Name: "Jane Doe", Email: "doe.jane@example.com"}

	req, err := BuildRequest(context.Background(), "http://localhost:8080/sdrdemo/rest/customer", rec, "req-1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "localhost:8080", req.URL.Host)
	assert.Equal(t, "/sdrdemo/rest/customer", req.URL.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "req-1", req.Header.Get("X-Request-ID"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Jane Doe","email":"doe.jane@example.com"}`, string(body))
	assert.Equal(t, int64(len(body)), req.ContentLength)
}

func TestBuildRequest_NoRequestID(t *testing.T) {
	req, err := BuildRequest(context.Background(), "http://localhost:8080/c", loadnames.Record{}, "")
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("X-Request-ID"))
}

func TestBuildRequest_InvalidURL(t *testing.T) {
	_, err := BuildRequest(context.Background(), "http://bad host:80/\x7f", loadnames.Record{}, "")
	require.Error(t, err)
}

func TestNew_DefaultConfig(t *testing.T) {
	client := New(DefaultConfig())

	assert.Zero(t, client.Timeout, "requests must not time out by default")
	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 1, tr.MaxIdleConnsPerHost)
}
