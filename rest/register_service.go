package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// RegisterService creates a new user account.
type RegisterService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	username   string
	email      string
	password   string
}

// Username sets the username for the new account.
func (s *RegisterService) Username(username string) *RegisterService {
	s.username = username
	return s
}

// Email sets the email for the new account.
func (s *RegisterService) Email(email string) *RegisterService {
	s.email = email
	return s
}

// Password sets the password for the new account.
func (s *RegisterService) Password(password string) *RegisterService {
	s.password = password
	return s
}

// Validate validates the service parameters.
func (s *RegisterService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("RegisterService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service. Missing fields fail before any request is issued.
func (s *RegisterService) Do(ctx context.Context) (*User, error) {
	op := "RegisterService.Do"
	if err := s.validate(); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}

	type registration struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	body, err := encodeBody(struct {
		User registration `json:"user"`
	}{User: registration{Username: s.username, Email: s.email, Password: s.password}}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/users").
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

func (s *RegisterService) validate() error {
	var errs []string
	if s.username == "" {
		errs = append(errs, "username is required")
	}
	if s.email == "" {
		errs = append(errs, "email is required")
	}
	if s.password == "" {
		errs = append(errs, "password is required")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
