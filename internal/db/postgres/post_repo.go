package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"Inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// List returns posts visible to the given viewer, newest first.
// The visibility rule lives in the WHERE clause: anonymous viewers get
// public rows only; a logged-in viewer additionally gets rows restricted
// to them and rows they authored. Identical timestamps fall back to id
// descending so the order stays deterministic.
func (r *postgresPostRepo) List(ctx context.Context, viewerID *int64) ([]*posts.Post, error) {
	var rows *sql.Rows
	var err error

	if viewerID != nil {
		query := `
			SELECT p.id, p.title, p.body, p.visibility, p.created_at, p.author_id, u.username
			FROM posts p
			JOIN users u ON p.author_id = u.id
			WHERE p.visibility IS NULL OR p.visibility = $1 OR p.author_id = $1
			ORDER BY p.created_at DESC, p.id DESC`
		rows, err = r.db.QueryContext(ctx, query, *viewerID)
	} else {
		query := `
			SELECT p.id, p.title, p.body, p.visibility, p.created_at, p.author_id, u.username
			FROM posts p
			JOIN users u ON p.author_id = u.id
			WHERE p.visibility IS NULL
			ORDER BY p.created_at DESC, p.id DESC`
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("WARN: failed to close rows: %v", err)
		}
	}()

	var list []*posts.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		list = append(list, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return list, nil
}

// GetByID retrieves one post with its author joined, regardless of visibility
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, p.visibility, p.created_at, p.author_id, u.username
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Create inserts a post and populates its ID and CreatedAt
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, body, visibility, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Body, post.Visibility.NullInt64(), post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Update rewrites title, body, and visibility of an existing post
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, body = $3, visibility = $4
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Body, post.Visibility.NullInt64())
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// Delete removes a post row; comment rows follow via ON DELETE CASCADE
func (r *postgresPostRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(s scanner) (*posts.Post, error) {
	post := &posts.Post{}
	var visibility sql.NullInt64

	err := s.Scan(&post.ID, &post.Title, &post.Body, &visibility,
		&post.CreatedAt, &post.AuthorID, &post.AuthorUsername)
	if err != nil {
		return nil, err
	}

	post.Visibility = posts.VisibilityFromNull(visibility)
	return post, nil
}
