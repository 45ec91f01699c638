package repository

import (
	"context"
	"testing"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_CreateAndGet(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t)
	post := &models.Post{Title: "Hello", Body: "First post", UserID: user.ID}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Title)
	assert.Equal(t, user.Name, found.User.Name)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	repo := NewPostRepository(testDB)

	_, err := repo.GetByID(context.Background(), 999999)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestPostRepository_GetByUser(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	author := createTestUser(t)
	other := createTestUser(t)
	createTestPost(t, author.ID)
	createTestPost(t, author.ID)
	createTestPost(t, other.ID)

	posts, err := repo.GetByUser(ctx, author.ID, 20, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, author.ID, p.UserID)
	}
}

func TestPostRepository_LikeToggleLifecycle(t *testing.T) {
	repo := NewPostRepository(testDB)
	ctx := context.Background()

	author := createTestUser(t)
	liker := createTestUser(t)
	post := createTestPost(t, author.ID)

	// Not liked yet
	like, err := repo.GetLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	assert.Nil(t, like)

	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: liker.ID, PostID: post.ID}))

	like, err = repo.GetLike(ctx, liker.ID, post.ID)
	require.NoError(t, err)
	require.NotNil(t, like)

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Unlike
	require.NoError(t, repo.DeleteLike(ctx, liker.ID, post.ID))

	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPostRepository_DeleteCascadeRemovesLikesAndComments(t *testing.T) {
	repo := NewPostRepository(testDB)
	commentRepo := NewCommentRepository(testDB)
	ctx := context.Background()

	author := createTestUser(t)
	fan := createTestUser(t)
	post := createTestPost(t, author.ID)

	require.NoError(t, repo.CreateLike(ctx, &models.Like{UserID: fan.ID, PostID: post.ID}))
	require.NoError(t, commentRepo.Create(ctx, &models.Comment{
		Content: "nice one",
		UserID:  fan.ID,
		PostID:  post.ID,
	}))

	require.NoError(t, repo.DeleteCascade(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	require.Error(t, err)

	likes, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)

	comments, err := commentRepo.GetByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostRepository_DeleteCascadeNotFound(t *testing.T) {
	repo := NewPostRepository(testDB)

	err := repo.DeleteCascade(context.Background(), 999999)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
