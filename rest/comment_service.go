package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// AddCommentService posts a comment on an article. Requires a token.
type AddCommentService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
	body       string
}

// Slug sets the article to comment on.
func (s *AddCommentService) Slug(slug string) *AddCommentService {
	s.slug = slug
	return s
}

// Body sets the comment text.
func (s *AddCommentService) Body(body string) *AddCommentService {
	s.body = body
	return s
}

// Do executes the service.
func (s *AddCommentService) Do(ctx context.Context) (*Comment, error) {
	op := "AddCommentService.Do"

	type draft struct {
		Body string `json:"body"`
	}
	body, err := encodeBody(struct {
		Comment draft `json:"comment"`
	}{Comment: draft{Body: s.body}}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/articles/" + url.PathEscape(s.slug) + "/comments").
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

	decoded, err := decodeResponse[commentResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &decoded.Comment, nil
}

// GetCommentsService lists the comments on an article.
type GetCommentsService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
}

// Slug sets the article whose comments to list.
func (s *GetCommentsService) Slug(slug string) *GetCommentsService {
	s.slug = slug
	return s
}

// Do executes the service.
func (s *GetCommentsService) Do(ctx context.Context) ([]Comment, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/articles/" + url.PathEscape(s.slug) + "/comments").
		Build()

	op := "GetCommentsService.Do"
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

	decoded, err := decodeResponse[commentsResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return decoded.Comments, nil
}

// DeleteCommentService deletes a comment by id. Requires a token.
type DeleteCommentService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
	id         int
}

// Slug sets the article the comment belongs to.
func (s *DeleteCommentService) Slug(slug string) *DeleteCommentService {
	s.slug = slug
	return s
}

// ID sets the id of the comment to delete.
func (s *DeleteCommentService) ID(id int) *DeleteCommentService {
	s.id = id
	return s
}

// Do executes the service. The backend returns no body on success.
func (s *DeleteCommentService) Do(ctx context.Context) error {
	path := fmt.Sprintf("/articles/%s/comments/%d", url.PathEscape(s.slug), s.id)
	req := s.reqBuilder.
		WithMethod(http.MethodDelete).
		WithPath(path).
		Build()

	op := "DeleteCommentService.Do"
	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrRequestFailed).
			WithCause(err)
	}

	if err := checkResponseError(resp.StatusCode, resp.Body); err != nil {
		return sdkerr.NewSDKError().
			WithSubsys(subsys).
			WithOp(op).
			WithKind(sdkerr.ErrAPIError).
			WithCause(err)
	}
	return nil
}
