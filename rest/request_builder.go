package rest

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/internal/httpx"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

type requestBuilder struct {
	inner   *httpx.RequestBuilder
	client  *Client
	hasBody bool
}

func newRequestBuilder(c *Client) *requestBuilder {
	return &requestBuilder{
		inner:  httpx.NewRequestBuilder(c.apiRoot),
		client: c,
	}
}

func (b *requestBuilder) WithMethod(method string) *requestBuilder {
	b.inner = b.inner.WithMethod(method)
	return b
}

func (b *requestBuilder) WithPath(path string) *requestBuilder {
	b.inner = b.inner.WithPath(path)
	return b
}

func (b *requestBuilder) WithQuery(query url.Values) *requestBuilder {
	b.inner = b.inner.WithQuery(query)
	return b
}

func (b *requestBuilder) WithBody(body []byte) *requestBuilder {
	b.inner = b.inner.WithBody(bytes.NewReader(body))
	b.hasBody = true
	return b
}

// Build assembles the request. The token is read here, not at service
// construction, so a SetToken between calls affects every later request.
func (b *requestBuilder) Build() *transport.Request {
	headers := make(http.Header)
	if b.hasBody {
		headers.Set("Content-Type", "application/json")
	}
	if token := b.client.Token(); token != "" {
		headers.Set("Authorization", "Token "+token)
	}
	if len(headers) > 0 {
		b.inner.WithHeaders(headers)
	}
	return b.inner.Build()
}
