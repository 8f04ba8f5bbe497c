package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/core/posts"
	"Inkwell/internal/core/users"
)

// Service defines the business logic interface for comment operations
type Service interface {
	// ListByPost returns all comments on a post, newest first
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// Create validates the request and stores a comment on the post.
	// The viewer may be nil: anonymous visitors comment too. The body is
	// stored exactly as submitted; only post creation runs the sanitizer.
	Create(ctx context.Context, viewer *users.User, postID int64, req CreateCommentRequest) (*Comment, error)

	// Delete removes a comment if the viewer authored its parent post.
	// Returns the parent post's id so callers can redirect back to it.
	Delete(ctx context.Context, viewer *users.User, commentID int64) (int64, error)
}

type commentService struct {
	commentRepo Repository
	postRepo    posts.Repository
	logger      *slog.Logger
}

// NewCommentService creates a new comment service.
// The post repository backs the parent-post existence check on create.
func NewCommentService(commentRepo Repository, postRepo posts.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// ListByPost returns all comments on a post, newest first
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	list, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	return list, nil
}

// Create validates the request and stores a comment on the post.
// The parent post is fetched for existence only; its visibility is not
// re-checked here, so any caller holding a valid post id may comment.
func (s *commentService) Create(ctx context.Context, viewer *users.User, postID int64, req CreateCommentRequest) (*Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post %d: %w", postID, err)
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	comment := &Comment{
		Title:  req.Title,
		Body:   req.Body,
		PostID: post.ID,
	}

	// The existence check above and this insert are two independent
	// statements. A post deleted in between surfaces as a foreign key
	// violation from the store.
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment on post %d: %w", postID, err)
	}

	var commenter any = "anonymous"
	if viewer != nil {
		commenter = viewer.ID
	}
	s.logger.Info("comment created",
		"commentID", comment.ID,
		"postID", post.ID,
		"commenter", commenter)
	return comment, nil
}

// Delete removes a comment if the viewer authored its parent post
func (s *commentService) Delete(ctx context.Context, viewer *users.User, commentID int64) (int64, error) {
	detail, err := s.commentRepo.GetDetail(ctx, commentID)
	if err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			return 0, ErrCommentNotFound
		}
		return 0, fmt.Errorf("failed to fetch comment %d: %w", commentID, err)
	}

	if !CanDelete(viewer, detail) {
		return 0, ErrNotAuthorized
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return 0, fmt.Errorf("failed to delete comment %d: %w", commentID, err)
	}

	s.logger.Info("comment deleted",
		"commentID", commentID,
		"postID", detail.PostID,
		"postAuthorID", detail.PostAuthorID)
	return detail.PostID, nil
}
