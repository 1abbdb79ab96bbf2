package rest

import (
	"context"
	"net/http"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// CurrentUserService fetches the user owning the current token.
type CurrentUserService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
}

// Do executes the service.
func (s *CurrentUserService) Do(ctx context.Context) (*User, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/user").
		Build()

	op := "CurrentUserService.Do"
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

	decoded, err := decodeResponse[userResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &decoded.User, nil
}

// UserUpdate carries the fields to change on the authenticated user.
// Nil fields are omitted from the request.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
}

// UpdateUserService updates the authenticated user. No client-side
// validation is performed; the backend rejects bad fields with a 422.
type UpdateUserService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	update     UserUpdate
}

// Email sets a new email.
func (s *UpdateUserService) Email(email string) *UpdateUserService {
	s.update.Email = &email
	return s
}

// Username sets a new username.
func (s *UpdateUserService) Username(username string) *UpdateUserService {
	s.update.Username = &username
	return s
}

// Password sets a new password.
func (s *UpdateUserService) Password(password string) *UpdateUserService {
	s.update.Password = &password
	return s
}

// Bio sets a new bio.
func (s *UpdateUserService) Bio(bio string) *UpdateUserService {
	s.update.Bio = &bio
	return s
}

// Image sets a new image URL.
func (s *UpdateUserService) Image(image string) *UpdateUserService {
	s.update.Image = &image
	return s
}

// Do executes the service.
func (s *UpdateUserService) Do(ctx context.Context) (*User, error) {
	op := "UpdateUserService.Do"
	body, err := encodeBody(struct {
		User UserUpdate `json:"user"`
	}{User: s.update}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPut).
		WithPath("/user").
		WithBody(body).
		Build()

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

	decoded, err := decodeResponse[userResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &decoded.User, nil
}
