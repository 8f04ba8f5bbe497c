package comments

import (
	"time"
)

// Comment represents a comment row. Comments carry no author reference:
// anyone who can reach a post may comment on it, and moderation is delegated
// to the parent post's author.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// CommentDetail is a comment joined with its parent post's author, the
// identity comment deletion is gated on.
type CommentDetail struct {
	Comment
	PostAuthorID int64 `json:"postAuthorId" db:"post_author_id"`
}

// CreateCommentRequest represents input for commenting on a post
type CreateCommentRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
