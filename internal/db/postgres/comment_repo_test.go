package postgres

import (
	"context"
	"testing"

	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestComment(t *testing.T, repo comments.Repository, postID int64, title string) *comments.Comment {
	t.Helper()
	comment := &comments.Comment{
		Title:  title,
		Body:   "body of " + title,
		PostID: postID,
	}
	require.NoError(t, repo.Create(context.Background(), comment))
	return comment
}

func TestCommentRepo_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, userRepo, "author")
	post := createTestPost(t, postRepo, author, "post", posts.Public())
	other := createTestPost(t, postRepo, author, "other", posts.Public())

	first := createTestComment(t, commentRepo, post.ID, "first")
	second := createTestComment(t, commentRepo, post.ID, "second")
	createTestComment(t, commentRepo, other.ID, "elsewhere")

	list, err := commentRepo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first, and only this post's comments
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCommentRepo_ListByPost_Empty(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)

	author := createTestUser(t, userRepo, "author")
	post := createTestPost(t, postRepo, author, "quiet", posts.Public())

	list, err := commentRepo.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCommentRepo_GetDetail(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, userRepo, "author")
	post := createTestPost(t, postRepo, author, "post", posts.Public())
	comment := createTestComment(t, commentRepo, post.ID, "hello")

	detail, err := commentRepo.GetDetail(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, comment.ID, detail.ID)
	assert.Equal(t, post.ID, detail.PostID)
	// The parent post's author rides along for the deletion gate
	assert.Equal(t, author.ID, detail.PostAuthorID)
}

func TestCommentRepo_GetDetail_NotFound(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)

	_, err := commentRepo.GetDetail(context.Background(), 9999)
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)
}

func TestCommentRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, userRepo, "author")
	post := createTestPost(t, postRepo, author, "post", posts.Public())
	comment := createTestComment(t, commentRepo, post.ID, "doomed")

	require.NoError(t, commentRepo.Delete(ctx, comment.ID))

	_, err := commentRepo.GetDetail(ctx, comment.ID)
	assert.ErrorIs(t, err, comments.ErrCommentNotFound)

	assert.ErrorIs(t, commentRepo.Delete(ctx, comment.ID), comments.ErrCommentNotFound)
}

func TestCommentRepo_CascadeOnPostDelete(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	author := createTestUser(t, userRepo, "author")
	post := createTestPost(t, postRepo, author, "post", posts.Public())
	createTestComment(t, commentRepo, post.ID, "one")
	createTestComment(t, commentRepo, post.ID, "two")

	// Deleting the post must take its comments with it
	require.NoError(t, postRepo.Delete(ctx, post.ID))

	list, err := commentRepo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments`).Scan(&count))
	assert.Zero(t, count)
}

func TestCommentRepo_CreateOnMissingPost(t *testing.T) {
	db := setupTestDB(t)
	commentRepo := NewCommentRepository(db)

	// The comment insert is a second, independent statement after the post
	// existence check; when the post vanished in between the foreign key
	// violation surfaces as a plain store error
	err := commentRepo.Create(context.Background(), &comments.Comment{
		Title:  "orphan",
		Body:   "b",
		PostID: 9999,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert comment")
}
