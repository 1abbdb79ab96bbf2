package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// LoginService authenticates an existing user with email and password.
type LoginService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	email      string
	password   string
}

// Email sets the email for the login.
func (s *LoginService) Email(email string) *LoginService {
	s.email = email
	return s
}

// Password sets the password for the login.
func (s *LoginService) Password(password string) *LoginService {
	s.password = password
	return s
}

// Validate validates the service parameters.
func (s *LoginService) Validate() error {
	if err := s.validate(); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp("LoginService.Validate").
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}
	return nil
}

// Do executes the service. Missing credentials fail before any request
// is issued.
func (s *LoginService) Do(ctx context.Context) (*User, error) {
	op := "LoginService.Do"
	if err := s.validate(); err != nil {
		return nil, sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrValidation).
			WithMessage(err.Error())
	}

	type credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	body, err := encodeBody(struct {
		User credentials `json:"user"`
	}{User: credentials{Email: s.email, Password: s.password}}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/users/login").
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

func (s *LoginService) validate() error {
	var errs []string
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
