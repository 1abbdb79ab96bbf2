package rest

import "time"

// User is the authenticated account returned by login, register and the
// user endpoints. Token is the bearer credential for subsequent requests.
type User struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Profile is the public view of a user.
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

// Article represents a published article.
type Article struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Body           string    `json:"body"`
	TagList        []string  `json:"tagList"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	Favorited      bool      `json:"favorited"`
	FavoritesCount int       `json:"favoritesCount"`
	Author         Profile   `json:"author"`
}

// ArticleList is a page of articles with the total count across pages.
type ArticleList struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int       `json:"articlesCount"`
}

// Comment represents a comment on an article.
type Comment struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Body      string    `json:"body"`
	Author    Profile   `json:"author"`
}

type userResponse struct {
	User User `json:"user"`
}

type profileResponse struct {
	Profile Profile `json:"profile"`
}

type articleResponse struct {
	Article Article `json:"article"`
}

type commentResponse struct {
	Comment Comment `json:"comment"`
}

type commentsResponse struct {
	Comments []Comment `json:"comments"`
}

type tagsResponse struct {
	Tags []string `json:"tags"`
}
