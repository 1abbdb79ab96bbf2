package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// FollowUserService follows a user. Requires a token.
type FollowUserService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	username   string
}

// Username sets the user to follow.
func (s *FollowUserService) Username(username string) *FollowUserService {
	s.username = username
	return s
}

// Do executes the service and returns the updated profile.
func (s *FollowUserService) Do(ctx context.Context) (*Profile, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/profiles/" + url.PathEscape(s.username) + "/follow").
		Build()

	op := "FollowUserService.Do"
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

// UnfollowUserService unfollows a user. Requires a token.
type UnfollowUserService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	username   string
}

// Username sets the user to unfollow.
func (s *UnfollowUserService) Username(username string) *UnfollowUserService {
	s.username = username
	return s
}

// Do executes the service and returns the updated profile.
func (s *UnfollowUserService) Do(ctx context.Context) (*Profile, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodDelete).
		WithPath("/profiles/" + url.PathEscape(s.username) + "/follow").
		Build()

	op := "UnfollowUserService.Do"
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
