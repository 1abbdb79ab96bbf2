package rest

import (
	"strings"

	"github.com/realworld-go/conduit-sdk-go/internal/httpx"
	"github.com/realworld-go/conduit-sdk-go/transport"
)

// Client holds the configuration shared by every Conduit API service:
// the API root, the optional bearer token and the transport. Services are
// created through the New*Service constructors and executed with Do.
type Client struct {
	apiRoot string
	token   string
	http    transport.HTTPClient
}

// NewClient creates a Client pointed at the production API root.
func NewClient() *Client {
	return &Client{
		apiRoot: defaultAPIRoot,
		http:    httpx.NewDefaultHTTPClient(),
	}
}

// WithAPIRoot overrides the base URL for all requests.
func (c *Client) WithAPIRoot(root string) *Client {
	c.apiRoot = strings.TrimRight(root, "/")
	return c
}

// WithToken sets the bearer token at construction time.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// WithHTTPClient sets the transport for all services created afterwards.
func (c *Client) WithHTTPClient(client transport.HTTPClient) *Client {
	c.http = client
	return c
}

// SetToken replaces the stored credential. The token is read each time a
// request is built; mutation is expected between calls, not during them.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently stored credential, empty if none was set.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) newRequestBuilder() *requestBuilder {
	return newRequestBuilder(c)
}

// NewLoginService authenticates an existing user.
func (c *Client) NewLoginService() *LoginService {
	return &LoginService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewRegisterService creates a new user account.
func (c *Client) NewRegisterService() *RegisterService {
	return &RegisterService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewCurrentUserService fetches the authenticated user.
func (c *Client) NewCurrentUserService() *CurrentUserService {
	return &CurrentUserService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewUpdateUserService updates the authenticated user.
func (c *Client) NewUpdateUserService() *UpdateUserService {
	return &UpdateUserService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewGetProfileService fetches a profile by username.
func (c *Client) NewGetProfileService() *GetProfileService {
	return &GetProfileService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewFollowUserService follows a user.
func (c *Client) NewFollowUserService() *FollowUserService {
	return &FollowUserService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewUnfollowUserService unfollows a user.
func (c *Client) NewUnfollowUserService() *UnfollowUserService {
	return &UnfollowUserService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewListArticlesService lists articles, optionally filtered by tag,
// author or favoriting user.
func (c *Client) NewListArticlesService() *ListArticlesService {
	return &ListArticlesService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewFeedArticlesService lists articles by followed authors.
func (c *Client) NewFeedArticlesService() *FeedArticlesService {
	return &FeedArticlesService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewGetArticleService fetches a single article by slug.
func (c *Client) NewGetArticleService() *GetArticleService {
	return &GetArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewCreateArticleService publishes a new article.
func (c *Client) NewCreateArticleService() *CreateArticleService {
	return &CreateArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewUpdateArticleService updates an existing article.
func (c *Client) NewUpdateArticleService() *UpdateArticleService {
	return &UpdateArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewDeleteArticleService deletes an article.
func (c *Client) NewDeleteArticleService() *DeleteArticleService {
	return &DeleteArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewAddCommentService posts a comment on an article.
func (c *Client) NewAddCommentService() *AddCommentService {
	return &AddCommentService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewGetCommentsService lists the comments on an article.
func (c *Client) NewGetCommentsService() *GetCommentsService {
	return &GetCommentsService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewDeleteCommentService deletes a comment.
func (c *Client) NewDeleteCommentService() *DeleteCommentService {
	return &DeleteCommentService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewFavoriteArticleService favorites an article.
func (c *Client) NewFavoriteArticleService() *FavoriteArticleService {
	return &FavoriteArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewUnfavoriteArticleService removes an article from favorites.
func (c *Client) NewUnfavoriteArticleService() *UnfavoriteArticleService {
	return &UnfavoriteArticleService{client: c.http, reqBuilder: c.newRequestBuilder()}
}

// NewTagsService lists all tags.
func (c *Client) NewTagsService() *TagsService {
	return &TagsService{client: c.http, reqBuilder: c.newRequestBuilder()}
}
