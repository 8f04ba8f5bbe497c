package posts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/core/users"
)

type postService struct {
	repo      Repository
	sanitizer Sanitizer
	logger    *slog.Logger
}

// NewPostService creates a new post service.
// The sanitizer cleans post bodies on create; update stores bodies verbatim.
func NewPostService(repo Repository, sanitizer Sanitizer, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// ListPosts returns every post the viewer may read, newest first
func (s *postService) ListPosts(ctx context.Context, viewer *users.User) ([]*Post, error) {
	var viewerID *int64
	if viewer != nil {
		viewerID = &viewer.ID
	}

	list, err := s.repo.List(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return list, nil
}

// GetPost fetches one post by id and optionally enforces the write policy
func (s *postService) GetPost(ctx context.Context, id int64, viewer *users.User, requireAuthor bool) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	if requireAuthor && !CanMutatePost(viewer, post) {
		return nil, ErrNotAuthorized
	}

	return post, nil
}

// CreatePost validates the request, sanitizes the body, and stores a new post
func (s *postService) CreatePost(ctx context.Context, viewer *users.User, req CreatePostRequest) (*Post, error) {
	if viewer == nil {
		return nil, ErrNotAuthorized
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "Title is required.")
	}

	visibility, err := ParseVisibility(req.Visibility)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Title:          req.Title,
		Body:           s.sanitizer.Sanitize(req.Body),
		Visibility:     visibility,
		AuthorID:       viewer.ID,
		AuthorUsername: viewer.Username,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"postID", post.ID,
		"authorID", viewer.ID,
		"visibility", post.Visibility.String())
	return post, nil
}

// UpdatePost rewrites title, body, and visibility of the viewer's own post.
// The body is stored exactly as submitted; only CreatePost runs the sanitizer.
func (s *postService) UpdatePost(ctx context.Context, viewer *users.User, id int64, req UpdatePostRequest) (*Post, error) {
	post, err := s.GetPost(ctx, id, viewer, true)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, NewValidationError("title", "Title is required.")
	}

	visibility, err := ParseVisibility(req.Visibility)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Body = req.Body
	post.Visibility = visibility

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}

	s.logger.Info("post updated",
		"postID", post.ID,
		"authorID", viewer.ID,
		"visibility", post.Visibility.String())
	return post, nil
}

// DeletePost removes the viewer's own post; comments cascade with it
func (s *postService) DeletePost(ctx context.Context, viewer *users.User, id int64) error {
	if _, err := s.GetPost(ctx, id, viewer, true); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	s.logger.Info("post deleted", "postID", id, "authorID", viewer.ID)
	return nil
}
