package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// ArticleUpdate carries the fields to change on an existing article.
// Nil fields are omitted from the request.
type ArticleUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Body        *string `json:"body,omitempty"`
}

// UpdateArticleService updates an existing article. Requires a token.
type UpdateArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
	update     ArticleUpdate
}

// Slug sets the slug of the article to update.
func (s *UpdateArticleService) Slug(slug string) *UpdateArticleService {
	s.slug = slug
	return s
}

// Title sets a new title.
func (s *UpdateArticleService) Title(title string) *UpdateArticleService {
	s.update.Title = &title
	return s
}

// Description sets a new description.
func (s *UpdateArticleService) Description(description string) *UpdateArticleService {
	s.update.Description = &description
	return s
}

// Body sets a new body.
func (s *UpdateArticleService) Body(body string) *UpdateArticleService {
	s.update.Body = &body
	return s
}

// Do executes the service.
func (s *UpdateArticleService) Do(ctx context.Context) (*Article, error) {
	op := "UpdateArticleService.Do"
	body, err := encodeBody(struct {
		Article ArticleUpdate `json:"article"`
	}{Article: s.update}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPut).
		WithPath("/articles/" + url.PathEscape(s.slug)).
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

	decoded, err := decodeResponse[articleResponse](resp.Body, op)
	if err != nil {
		return nil, err
	}
	return &decoded.Article, nil
}
