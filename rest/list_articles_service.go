package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// ListArticlesService lists articles globally, newest first. Filters are
// mutually exclusive by convention; with several set the page size follows
// tag, then author, then favorited.
//
// The page size is bound to the filter: 20 unfiltered, 10 by tag, 5 by
// author, 20 by favoriting user. offset is always page * size.
type ListArticlesService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	tag        *string
	author     *string
	favorited  *string
	page       *int
}

// Tag restricts the list to articles carrying the tag.
func (s *ListArticlesService) Tag(tag string) *ListArticlesService {
	s.tag = &tag
	return s
}

// Author restricts the list to articles written by the user.
func (s *ListArticlesService) Author(author string) *ListArticlesService {
	s.author = &author
	return s
}

// FavoritedBy restricts the list to articles favorited by the user.
func (s *ListArticlesService) FavoritedBy(username string) *ListArticlesService {
	s.favorited = &username
	return s
}

// Page selects the zero-based page. Unset means the first page.
func (s *ListArticlesService) Page(page int) *ListArticlesService {
	s.page = &page
	return s
}

// Do executes the service.
func (s *ListArticlesService) Do(ctx context.Context) (*ArticleList, error) {
	req := s.reqBuilder.
		WithMethod(http.MethodGet).
		WithPath("/articles").
		WithQuery(s.buildQuery()).
		Build()

	op := "ListArticlesService.Do"
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

func (s *ListArticlesService) pageSize() int {
	switch {
	case s.tag != nil:
		return 10
	case s.author != nil:
		return 5
	case s.favorited != nil:
		return 20
	default:
		return 20
	}
}

func (s *ListArticlesService) buildQuery() url.Values {
	q := make(url.Values)
	if s.tag != nil {
		q.Add("tag", *s.tag)
	}
	if s.author != nil {
		q.Add("author", *s.author)
	}
	if s.favorited != nil {
		q.Add("favorited", *s.favorited)
	}

	size := s.pageSize()
	page := 0
	if s.page != nil {
		page = *s.page
	}
	q.Add("limit", strconv.Itoa(size))
	q.Add("offset", strconv.Itoa(page*size))
	return q
}
