package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/realworld-go/conduit-sdk-go/internal/testutil"
	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsService_Do(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Contains(t, req.FullURL, "/tags")
			assert.Empty(t, req.Headers.Get("Authorization"))

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"tags":["reactjs","angularjs"]}`),
			}, nil
		},
	}

	tags, err := NewClient().WithHTTPClient(fakeClient).
		NewTagsService().
		Do(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"reactjs", "angularjs"}, tags)
}

func TestTagsService_Do_TransportError(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return nil, errors.New("host unreachable")
		},
	}

	tags, err := NewClient().WithHTTPClient(fakeClient).
		NewTagsService().
		Do(context.Background())

	assert.Nil(t, tags)

	var sdkErr *sdkerr.SDKError
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, sdkerr.ErrRequestFailed, sdkErr.Kind())
	assert.Contains(t, sdkErr.Cause().Error(), "host unreachable")
}
