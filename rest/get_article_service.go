package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// GetArticleService fetches a single article by slug.
type GetArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
}

// Slug sets the article slug.
func (s *GetArticleService) Slug(slug string) *GetArticleService {
	s.slug = slug
	return s
}

// Do executes the service.
func (s *GetArticleService) Do(ctx context.Context) (*Article, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/articles/" + url.PathEscape(s.slug)).
		Build()

	op := "GetArticleService.Do"
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
