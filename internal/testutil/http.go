package testutil

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"testing"

	"github.com/realworld-go/conduit-sdk-go/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExtractQuery(t *testing.T, fullURL string) url.Values {
	t.Helper()
	parsed, err := url.Parse(fullURL)
	assert.NoError(t, err)
	return parsed.Query()
}

// DecodeJSONBody reads a request body and decodes it into a generic map
// so tests can assert on the exact JSON envelope being sent.
func DecodeJSONBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	require.NotNil(t, r, "request has no body")
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

type FakeHTTPClient struct {
	DoFunc func(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

func (f *FakeHTTPClient) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	return f.DoFunc(ctx, req)
}
