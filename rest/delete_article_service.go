package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// DeleteArticleService deletes an article. Requires a token.
type DeleteArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
}

// Slug sets the slug of the article to delete.
func (s *DeleteArticleService) Slug(slug string) *DeleteArticleService {
	s.slug = slug
	return s
}

// Do executes the service. The backend returns no body on success.
func (s *DeleteArticleService) Do(ctx context.Context) error {
	req := s.reqBuilder.
		WithMethod(http.MethodDelete).
		WithPath("/articles/" + url.PathEscape(s.slug)).
		Build()

	op := "DeleteArticleService.Do"
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
