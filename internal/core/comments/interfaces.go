package comments

import "context"

// Repository defines the data access interface for comments
type Repository interface {
	// ListByPost returns all comments on a post, newest first.
	// No visibility filtering happens here: once a post is readable, all of
	// its comments are.
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// GetDetail retrieves a comment joined with its parent post's author.
	// Returns ErrCommentNotFound when no row matches.
	GetDetail(ctx context.Context, id int64) (*CommentDetail, error)

	// Create inserts a comment and populates its ID and CreatedAt
	Create(ctx context.Context, comment *Comment) error

	// Delete removes a comment row
	Delete(ctx context.Context, id int64) error
}
