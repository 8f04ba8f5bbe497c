package posts

import (
	"time"
)

// Post represents a blog post row with its author's username joined in.
// Visibility is the audience gate: public posts are readable by anyone,
// restricted posts only by their audience user and their author.
type Post struct {
	ID             int64      `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Body           string     `json:"body" db:"body"`
	Visibility     Visibility `json:"-" db:"visibility"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	AuthorID       int64      `json:"authorId" db:"author_id"`
	AuthorUsername string     `json:"authorUsername" db:"username"`
}

// CreatePostRequest represents input for creating a new post.
// Visibility carries the raw form value: the "NULL" token for a public post,
// or the decimal id of the one user allowed to read it.
type CreatePostRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Visibility string `json:"visibility"`
}

// UpdatePostRequest represents input for editing an existing post
type UpdatePostRequest struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	Visibility string `json:"visibility"`
}
