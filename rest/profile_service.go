package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// GetProfileService fetches the public profile of a user.
type GetProfileService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	username   string
}

// Username sets the username to look up.
func (s *GetProfileService) Username(username string) *GetProfileService {
	s.username = username
	return s
}

// Do executes the service.
func (s *GetProfileService) Do(ctx context.Context) (*Profile, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/profiles/" + url.PathEscape(s.username)).
		Build()

	op := "GetProfileService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}

	decoded, err := decodeResponse[profileResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &decoded.Profile, nil
}
