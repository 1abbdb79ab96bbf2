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

func TestAddCommentService_Do(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Contains(t, req.FullURL, "/articles/foobar/comments")

			body := testutil.DecodeJSONBody(t, req.Body)
			comment, ok := body["comment"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "Nice post!", comment["body"])

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"comment":{"id":1,"body":"Nice post!","author":{"username":"jake"}}}`),
			}, nil
		},
	}

	comment, err := NewClient().WithHTTPClient(fakeClient).WithToken("t").
		NewAddCommentService().
		Slug("foobar").
		Body("Nice post!").
		Do(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, comment.ID)
	assert.Equal(t, "jake", comment.Author.Username)
}

func TestGetCommentsService_Do(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/articles/foobar/comments")

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"comments":[{"id":1,"body":"first"},{"id":2,"body":"second"}]}`),
			}, nil
		},
	}

	comments, err := NewClient().WithHTTPClient(fakeClient).
		NewGetCommentsService().
		Slug("foobar").
		Do(context.Background())

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[1].Body)
}

func TestDeleteCommentService_Do(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodDelete, req.Method)
			assert.Contains(t, req.FullURL, "/articles/BeepBoop/comments/173")
			assert.Nil(t, req.Body)

			return &transport.Response{StatusCode: 200, Body: []byte(`{}`)}, nil
		},
	}

	err := NewClient().WithHTTPClient(fakeClient).WithToken("t").
		NewDeleteCommentService().
		Slug("BeepBoop").
		ID(173).
		Do(context.Background())

	assert.NoError(t, err)
}
