package rest

import (
	"context"
	"net/http"

	"github.com/realworld-go/conduit-sdk-go/sdkerr"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// ArticleDraft carries the fields of a new article.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList,omitempty"`
}

// CreateArticleService publishes a new article. Requires a token. No
// client-side validation; missing fields come back as a 422 from the
// backend.
type CreateArticleService struct {
	client     transport.HTTPClient
	reqBuilder *requestBuilder
	draft      ArticleDraft
}

// Title sets the article title.
func (s *CreateArticleService) Title(title string) *CreateArticleService {
	s.draft.Title = title
	return s
}

// Description sets the article description.
func (s *CreateArticleService) Description(description string) *CreateArticleService {
	s.draft.Description = description
	return s
}

// Body sets the article body.
func (s *CreateArticleService) Body(body string) *CreateArticleService {
	s.draft.Body = body
	return s
}

// TagList sets the article tags.
func (s *CreateArticleService) TagList(tags ...string) *CreateArticleService {
	s.draft.TagList = tags
	return s
}

// Do executes the service.
func (s *CreateArticleService) Do(ctx context.Context) (*Article, error) {
	op := "CreateArticleService.Do"
	body, err := encodeBody(struct {
		Article ArticleDraft `json:"article"`
	}{Article: s.draft}, op)
	if err != nil {
		return nil, err
	}

	req := s.reqBuilder.
		WithMethod(http.MethodPost).
		WithPath("/articles").
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
