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

func TestLoginService_validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		svc := NewClient().NewLoginService().Email("jake@jake.jake").Password("jakejake")
		assert.NoError(t, svc.validate())
	})

	t.Run("missing email", func(t *testing.T) {
		svc := NewClient().NewLoginService().Password("jakejake")
		err := svc.validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email is required")
	})

	t.Run("missing password", func(t *testing.T) {
		svc := NewClient().NewLoginService().Email("jake@jake.jake")
		err := svc.validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "password is required")
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := NewClient().NewLoginService().validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email is required")
		assert.Contains(t, err.Error(), "password is required")
	})
}

func TestLoginService_Do_MissingFieldsIssueNoRequest(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			t.Fatal("no request should be issued")
			return nil, nil
		},
	}

	svc := NewClient().WithHTTPClient(fakeClient).NewLoginService().Email("jake@jake.jake")

	user, err := svc.Do(context.Background())
	assert.Nil(t, user)

	var sdkErr *sdkerr.SDKError
	require.ErrorAs(t, err, &sdkErr)
	assert.Equal(t, sdkerr.ErrValidation, sdkErr.Kind())
	assert.Contains(t, sdkErr.Message(), "password is required")
}

func TestLoginService_Do_Success(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Contains(t, req.FullURL, "/users/login")
			assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))
			assert.Empty(t, req.Headers.Get("Authorization"))

			body := testutil.DecodeJSONBody(t, req.Body)
			user, ok := body["user"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "jake@jake.jake", user["email"])
			assert.Equal(t, "jakejake", user["password"])

			return &transport.Response{
				StatusCode: 200,
				Body:       []byte(`{"user":{"email":"jake@jake.jake","token":"jwt.token.here","username":"jake"}}`),
			}, nil
		},
	}

	svc := NewClient().WithHTTPClient(fakeClient).NewLoginService().
		Email("jake@jake.jake").
		Password("jakejake")

	user, err := svc.Do(context.Background())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jake", user.Username)
	assert.Equal(t, "jwt.token.here", user.Token)
}

func TestLoginService_Do_Errors(t *testing.T) {
	type testCase struct {
		name     string
		setup    func() transport.HTTPClient
		wantKind error
	}

	cases := []testCase{
		{
			name: "client fails",
			setup: func() transport.HTTPClient {
				return &testutil.FakeHTTPClient{
					DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
						return nil, errors.New("network is down")
					},
				}
			},
			wantKind: sdkerr.ErrRequestFailed,
		},
		{
			name: "bad status",
			setup: func() transport.HTTPClient {
				return &testutil.FakeHTTPClient{
					DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
						return &transport.Response{
							StatusCode: 422,
							Body:       []byte(`{"errors":{"email or password":["is invalid"]}}`),
						}, nil
					},
				}
			},
			wantKind: sdkerr.ErrAPIError,
		},
		{
			name: "decode fails",
			setup: func() transport.HTTPClient {
				return &testutil.FakeHTTPClient{
					DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
						return &transport.Response{
							StatusCode: 200,
							Body:       []byte(`{invalid json}`),
						}, nil
					},
				}
			},
			wantKind: sdkerr.ErrDecodeError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewClient().WithHTTPClient(tc.setup()).NewLoginService().
				Email("jake@jake.jake").
				Password("jakejake")

			user, err := svc.Do(context.Background())

			assert.Nil(t, user)
			assert.Error(t, err)

			var sdkErr *sdkerr.SDKError
			assert.ErrorAs(t, err, &sdkErr)
			assert.Equal(t, tc.wantKind, sdkErr.Kind())
		})
	}
}

func TestLoginService_Do_APIErrorIsInspectable(t *testing.T) {
	fakeClient := &testutil.FakeHTTPClient{
		DoFunc: func(ctx context.Context, req *transport.Request) (*transport.Response, error) {
			return &transport.Response{
				StatusCode: 422,
				Body:       []byte(`{"errors":{"email or password":["is invalid"]}}`),
			}, nil
		},
	}

	svc := NewClient().WithHTTPClient(fakeClient).NewLoginService().
		Email("jake@jake.jake").
		Password("wrong")

	_, err := svc.Do(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, []string{"is invalid"}, apiErr.Errors["email or password"])
}
