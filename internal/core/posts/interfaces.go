package posts

import (
	"context"

	"Inkwell/internal/core/users"
)

// Sanitizer strips unsafe markup from user-submitted HTML before storage.
// The concrete policy lives in internal/markup.
type Sanitizer interface {
	Sanitize(html string) string
}

// Service defines the business logic interface for posts
type Service interface {
	// ListPosts returns every post the viewer may read, newest first,
	// with author usernames joined in
	ListPosts(ctx context.Context, viewer *users.User) ([]*Post, error)

	// GetPost fetches one post by id regardless of visibility.
	// Returns ErrNotFound when no row exists. When requireAuthor is true
	// the write policy is enforced and ErrNotAuthorized is returned for
	// anyone but the author. When requireAuthor is false the caller is
	// responsible for applying CanView; the read routes report a
	// CanView failure as not found so restricted posts don't leak
	// their existence.
	GetPost(ctx context.Context, id int64, viewer *users.User, requireAuthor bool) (*Post, error)

	// CreatePost validates the request, sanitizes the body, and stores a
	// new post authored by the viewer
	CreatePost(ctx context.Context, viewer *users.User, req CreatePostRequest) (*Post, error)

	// UpdatePost rewrites title, body, and visibility of the viewer's own
	// post. The body is stored exactly as submitted; only CreatePost runs
	// the sanitizer.
	UpdatePost(ctx context.Context, viewer *users.User, id int64, req UpdatePostRequest) (*Post, error)

	// DeletePost removes the viewer's own post. Its comments go with it
	// through the schema's cascade.
	DeletePost(ctx context.Context, viewer *users.User, id int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// List returns posts visible to the given viewer, newest first.
	// A nil viewerID means anonymous: public posts only. Otherwise public
	// posts, posts whose audience is the viewer, and the viewer's own posts.
	List(ctx context.Context, viewerID *int64) ([]*Post, error)

	// GetByID retrieves one post with its author joined, regardless of
	// visibility. Callers apply the policy predicates.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create inserts a post and populates its ID and CreatedAt
	Create(ctx context.Context, post *Post) error

	// Update rewrites title, body, and visibility of an existing post
	Update(ctx context.Context, post *Post) error

	// Delete removes a post row; comment rows follow via ON DELETE CASCADE
	Delete(ctx context.Context, id int64) error
}
