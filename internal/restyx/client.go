package restyx

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// Client adapts a resty.Client to the transport.HTTPClient interface.
type Client struct {
	client *resty.Client
}

// New creates a resty-backed transport with the given request timeout.
func New(timeout time.Duration) *Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return &Client{client: c}
}

// NewWithClient wraps an already configured resty.Client.
func NewWithClient(c *resty.Client) *Client {
	return &Client{client: c}
}

// Do executes the request through resty.
func (c *Client) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	r := c.client.R().SetContext(ctx)

	if req.Headers != nil {
		for k, vs := range req.Headers {
			for _, v := range vs {
				r.Header.Add(k, v)
			}
		}
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.FullURL)
	if err != nil {
		return nil, err
	}

	return &transport.Response{
		Body:       resp.Body(),
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
	}, nil
}
