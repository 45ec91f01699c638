package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_GetForUserNewestFirstWithCap(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t)

	for i := 0; i < 12; i++ {
		n := &models.Notification{
			UserID:  user.ID,
			Type:    models.NotificationTypeFriendRequest,
			Content: fmt.Sprintf("notification %d", i),
		}
		// Stagger timestamps so the ordering is deterministic
		n.CreatedAt = time.Now().Add(time.Duration(i) * time.Millisecond)
		require.NoError(t, repo.Create(ctx, n))
	}

	notifications, err := repo.GetForUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 10)
	assert.Equal(t, "notification 11", notifications[0].Content)
	assert.Equal(t, "notification 2", notifications[9].Content)
}

func TestNotificationRepository_UnreadCountAndMarkRead(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t)

	first := &models.Notification{UserID: user.ID, Type: models.NotificationTypePostLike, Content: "a"}
	second := &models.Notification{UserID: user.ID, Type: models.NotificationTypePostLike, Content: "b"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	count, err := repo.CountUnread(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkRead(ctx, first.ID))

	count, err = repo.CountUnread(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.MarkAllRead(ctx, user.ID))

	count, err = repo.CountUnread(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationRepository_DeleteByIDsScopedToOwner(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t)
	other := createTestUser(t)

	mine := &models.Notification{UserID: owner.ID, Type: models.NotificationTypePostLike, Content: "mine"}
	theirs := &models.Notification{UserID: other.ID, Type: models.NotificationTypePostLike, Content: "theirs"}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	// Deleting both IDs as the owner only removes the owner's row
	deleted, err := repo.DeleteByIDs(ctx, owner.ID, []uint{mine.ID, theirs.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.GetForUser(ctx, other.ID, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "theirs", remaining[0].Content)
}

func TestNotificationRepository_DeleteRead(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t)

	read := &models.Notification{UserID: user.ID, Type: models.NotificationTypePostComment, Content: "read", Read: true}
	unread := &models.Notification{UserID: user.ID, Type: models.NotificationTypePostComment, Content: "unread"}
	require.NoError(t, repo.Create(ctx, read))
	require.NoError(t, repo.Create(ctx, unread))

	deleted, err := repo.DeleteRead(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	remaining, err := repo.GetForUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "unread", remaining[0].Content)
}

func TestNotificationRepository_ResolveFriendRequest(t *testing.T) {
	repo := NewNotificationRepository(testDB)
	ctx := context.Background()

	sender := createTestUser(t)
	receiver := createTestUser(t)

	notification := &models.Notification{
		UserID:  receiver.ID,
		Type:    models.NotificationTypeFriendRequest,
		Content: sender.Name + " sent you a friend request",
		Metadata: models.NotificationMetadata{
			FriendshipID: 42,
			SenderID:     sender.ID,
			Status:       models.FriendshipStatusPending,
		},
	}
	require.NoError(t, repo.Create(ctx, notification))

	unrelated := &models.Notification{
		UserID:   receiver.ID,
		Type:     models.NotificationTypeFriendRequest,
		Content:  "other request",
		Metadata: models.NotificationMetadata{FriendshipID: 43, Status: models.FriendshipStatusPending},
	}
	require.NoError(t, repo.Create(ctx, unrelated))

	require.NoError(t, repo.ResolveFriendRequest(ctx, receiver.ID, 42, models.FriendshipStatusAccepted))

	resolved, err := repo.GetByID(ctx, notification.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusAccepted, resolved.Metadata.Status)
	assert.True(t, resolved.Read)

	untouched, err := repo.GetByID(ctx, unrelated.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendshipStatusPending, untouched.Metadata.Status)
	assert.False(t, untouched.Read)
}
