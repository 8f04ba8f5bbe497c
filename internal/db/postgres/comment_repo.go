package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Inkwell/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// ListByPost returns all comments on a post, newest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, title, body, created_at, post_id
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var list []*comments.Comment
	for rows.Next() {
		comment := &comments.Comment{}
		if err := rows.Scan(&comment.ID, &comment.Title, &comment.Body,
			&comment.CreatedAt, &comment.PostID); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		list = append(list, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return list, nil
}

// GetDetail retrieves a comment joined with its parent post's author.
// The join feeds the deletion gate: only the post's author may remove
// comments under it.
func (r *postgresCommentRepo) GetDetail(ctx context.Context, id int64) (*comments.CommentDetail, error) {
	query := `
		SELECT c.id, c.title, c.body, c.created_at, c.post_id, p.author_id
		FROM comments c
		JOIN posts p ON c.post_id = p.id
		WHERE c.id = $1`

	detail := &comments.CommentDetail{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&detail.ID, &detail.Title, &detail.Body, &detail.CreatedAt,
			&detail.PostID, &detail.PostAuthorID)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment detail: %w", err)
	}

	return detail, nil
}

// Create inserts a comment and populates its ID and CreatedAt
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (title, body, post_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, comment.Title, comment.Body, comment.PostID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// Delete removes a comment row
func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
