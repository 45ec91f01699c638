package server

import (
	"fmt"
	"testing"

	"linkup/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPost(t *testing.T, token, title, body string) models.Post {
	t.Helper()
	resp := doRequest(t, fiber.MethodPost, "/api/posts", token, fiber.Map{
		"title": title,
		"body":  body,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	return post
}

func TestCreatePostValidation(t *testing.T) {
	token, _ := signupUser(t)

	resp := doRequest(t, fiber.MethodPost, "/api/posts", token, fiber.Map{"body": "no title"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, fiber.MethodPost, "/api/posts", token, fiber.Map{"title": "no body"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostLifecycle(t *testing.T) {
	tokenOwner, ownerID := signupUser(t)
	tokenOther, _ := signupUser(t)

	post := createPost(t, tokenOwner, "Launch day", "We shipped the thing.")
	assert.Equal(t, ownerID, post.UserID)
	assert.True(t, post.CanEdit)
	assert.Zero(t, post.LikesCount)

	// Anonymous read: no derived ownership
	resp := doRequest(t, fiber.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fetched models.Post
	decodeBody(t, resp, &fetched)
	assert.False(t, fetched.CanEdit)
	assert.False(t, fetched.IsLikedByCurrentUser)

	// Another user likes it
	resp = doRequest(t, fiber.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), tokenOther, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &fetched)
	assert.Equal(t, int64(1), fetched.LikesCount)
	assert.True(t, fetched.IsLikedByCurrentUser)

	// The owner is notified of the like
	resp = doRequest(t, fiber.MethodGet, "/api/notifications", tokenOwner, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notifications []models.Notification
	decodeBody(t, resp, &notifications)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.NotificationTypePostLike, notifications[0].Type)
	assert.Equal(t, post.ID, notifications[0].Metadata.PostID)

	// Toggling again removes the like silently
	resp = doRequest(t, fiber.MethodPost, fmt.Sprintf("/api/posts/%d/like", post.ID), tokenOther, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &fetched)
	assert.Zero(t, fetched.LikesCount)
	assert.False(t, fetched.IsLikedByCurrentUser)

	// Edits are owner-gated
	resp = doRequest(t, fiber.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID), tokenOther, fiber.Map{
		"title": "hijacked", "body": "nope",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, fiber.MethodPut, fmt.Sprintf("/api/posts/%d", post.ID), tokenOwner, fiber.Map{
		"title": "Launch day, updated", "body": "We shipped more.",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Launch day, updated", fetched.Title)
}

func TestDeletePostCascades(t *testing.T) {
	tokenOwner, _ := signupUser(t)
	tokenOther, _ := signupUser(t)

	post := createPost(t, tokenOwner, "Soon gone", "Delete me.")

	resp := doRequest(t, fiber.MethodPost,
		fmt.Sprintf("/api/posts/%d/like", post.ID), tokenOther, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doRequest(t, fiber.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), tokenOther, fiber.Map{"content": "rip"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Deletion is owner-gated
	resp = doRequest(t, fiber.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), tokenOther, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, fiber.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), tokenOwner, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, fiber.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, fiber.MethodGet, fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPublicFeed(t *testing.T) {
	token, _ := signupUser(t)
	createPost(t, token, "Feed entry", "Visible to everyone.")

	resp := doRequest(t, fiber.MethodGet, "/api/posts", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	assert.NotEmpty(t, posts)
}

func TestCommentLifecycle(t *testing.T) {
	tokenOwner, _ := signupUser(t)
	tokenOther, _ := signupUser(t)

	post := createPost(t, tokenOwner, "Discussion", "Say something.")

	resp := doRequest(t, fiber.MethodPost,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), tokenOther, fiber.Map{"content": "first!"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var comment models.Comment
	decodeBody(t, resp, &comment)
	assert.True(t, comment.CanEdit)

	// The post owner is notified
	resp = doRequest(t, fiber.MethodGet, "/api/notifications", tokenOwner, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notifications []models.Notification
	decodeBody(t, resp, &notifications)
	require.NotEmpty(t, notifications)
	assert.Equal(t, models.NotificationTypePostComment, notifications[0].Type)
	assert.Equal(t, comment.ID, notifications[0].Metadata.CommentID)

	// Comment edits are author-gated
	resp = doRequest(t, fiber.MethodPut,
		fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), tokenOwner,
		fiber.Map{"content": "edited by post owner"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, fiber.MethodPut,
		fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), tokenOther,
		fiber.Map{"content": "edited"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &comment)
	assert.Equal(t, "edited", comment.Content)

	// The post owner may moderate the comment away
	resp = doRequest(t, fiber.MethodDelete,
		fmt.Sprintf("/api/posts/%d/comments/%d", post.ID, comment.ID), tokenOwner, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, fiber.MethodGet,
		fmt.Sprintf("/api/posts/%d/comments", post.ID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var comments []models.Comment
	decodeBody(t, resp, &comments)
	assert.Empty(t, comments)
}
