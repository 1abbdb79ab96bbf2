package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

const feedPageSize = 10

// FeedArticlesService lists articles by authors the current user follows.
// Requires a token.
type FeedArticlesService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	page       *int
}

// Page selects the zero-based page. Unset means the first page.
func (s *FeedArticlesService) Page(page int) *FeedArticlesService {
	s.page = &page
	return s
}

// Do executes the service.
func (s *FeedArticlesService) Do(ctx context.Context) (*ArticleList, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/articles/feed").
		WithQuery(s.buildQuery()).
		Build()

	op := "FeedArticlesService.Do"
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

	return decodeResponse[ArticleList](resp.Body, op)
}

func (s *FeedArticlesService) buildQuery() url.Values {
	page := 0
	if s.page != nil {
		page = *s.page
	}

	q := make(url.Values)
	q.Add("limit", strconv.Itoa(feedPageSize))
	q.Add("offset", strconv.Itoa(page*feedPageSize))
	return q
}
