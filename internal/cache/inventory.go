package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix                = "user:%d"
	UnreadMessagesKeyPrefix      = "user:%d:unread_messages"
	UnreadNotificationsKeyPrefix = "user:%d:unread_notifications"
)

const (
	UserTTL = 5 * time.Minute
	// Unread counts are polled aggressively by clients; a short TTL keeps
	// them fresh without hitting the database on every poll.
	UnreadCountTTL = 15 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func UnreadMessagesKey(userID uint) string {
	return fmt.Sprintf(UnreadMessagesKeyPrefix, userID)
}

func UnreadNotificationsKey(userID uint) string {
	return fmt.Sprintf(UnreadNotificationsKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateUnreadMessages(ctx context.Context, userID uint) {
	Invalidate(ctx, UnreadMessagesKey(userID))
}

func InvalidateUnreadNotifications(ctx context.Context, userID uint) {
	Invalidate(ctx, UnreadNotificationsKey(userID))
}

// GetCachedCount reads a cached integer counter. The second return value
// reports a cache hit.
func GetCachedCount(ctx context.Context, key string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	n, err := client.Get(ctx, key).Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetCachedCount stores an integer counter with the unread-count TTL.
func SetCachedCount(ctx context.Context, key string, n int64) {
	if client != nil {
		client.Set(ctx, key, n, UnreadCountTTL)
	}
}
