package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/realworld-go/conduit-sdk-go/internal/testutil"
	"github.com/realworld-go/conduit-sdk-go/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedArticlesService_buildQuery(t *testing.T) {
	t.Run("no page", func(t *testing.T) {
		q := NewClient().NewFeedArticlesService().buildQuery()
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "0", q.Get("offset"))
	})

	t.Run("page 3", func(t *testing.T) {
		q := NewClient().NewFeedArticlesService().Page(3).buildQuery()
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "30", q.Get("offset"))
	})
}

func TestFeedArticlesService_Do(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/articles/feed")
			assert.Equal(t, "Token t", req.Headers.Get("Authorization"))

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"articles":[],"articlesCount":0}`),
			}, nil
		},
	}

	list, err := NewClient().WithHTTPClient(fakeClient).WithToken("t").
		NewFeedArticlesService().
		Do(context.Background())

	require.NoError(t, err)
	assert.Empty(t, list.Articles)
}
