package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// FavoriteArticleService favorites an article. Requires a token.
type FavoriteArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
}

// Slug sets the article to favorite.
func (s *FavoriteArticleService) Slug(slug string) *FavoriteArticleService {
	s.slug = slug
	return s
}

// Do executes the service and returns the updated article.
func (s *FavoriteArticleService) Do(ctx context.Context) (*Article, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/articles/" + url.PathEscape(s.slug) + "/favorite").
		Build()

	op := "FavoriteArticleService.Do"
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

// UnfavoriteArticleService removes an article from favorites. Requires a
// token.
type UnfavoriteArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	slug       string
}

// Slug sets the article to unfavorite.
func (s *UnfavoriteArticleService) Slug(slug string) *UnfavoriteArticleService {
	s.slug = slug
	return s
}

// Do executes the service and returns the updated article.
func (s *UnfavoriteArticleService) Do(ctx context.Context) (*Article, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodDelete).
		WithPath("/articles/" + url.PathEscape(s.slug) + "/favorite").
		Build()

	op := "UnfavoriteArticleService.Do"
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
