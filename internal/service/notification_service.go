// Package service contains the application's business logic layer.
package service

import (
	"context"
	"log/slog"

	"linkup/internal/cache"
	"linkup/internal/middleware"
	"linkup/internal/models"
	"linkup/internal/repository"
)

const notificationPageSize = 10

// NotificationService provides notification listing, read-state and
// fan-out logic.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService returns a new NotificationService.
func NewNotificationService(notificationRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Notify writes a notification best-effort: a failed insert is logged
// and counted but never propagated, so the triggering action still
// succeeds.
func (s *NotificationService) Notify(ctx context.Context, notification *models.Notification) {
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		middleware.NotificationFanout.WithLabelValues(string(notification.Type), "error").Inc()
		middleware.Logger.ErrorContext(ctx, "notification fan-out failed",
			slog.String("type", string(notification.Type)),
			slog.Uint64("recipient_id", uint64(notification.UserID)),
			slog.String("error", err.Error()),
		)
		return
	}
	middleware.NotificationFanout.WithLabelValues(string(notification.Type), "ok").Inc()
	cache.InvalidateUnreadNotifications(ctx, notification.UserID)
}

// ResolveFriendRequest stamps the final status onto the originating
// friend-request notification and marks it read. Best-effort like
// fan-out: the response action already succeeded.
func (s *NotificationService) ResolveFriendRequest(ctx context.Context, userID, friendshipID uint, status models.FriendshipStatus) {
	if err := s.notificationRepo.ResolveFriendRequest(ctx, userID, friendshipID, status); err != nil {
		middleware.Logger.WarnContext(ctx, "friend-request notification resolve failed",
			slog.Uint64("friendship_id", uint64(friendshipID)),
			slog.String("error", err.Error()),
		)
		return
	}
	cache.InvalidateUnreadNotifications(ctx, userID)
}

// List returns the newest notifications for the user, capped at the
// notification page size.
func (s *NotificationService) List(ctx context.Context, userID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetForUser(ctx, userID, notificationPageSize)
}

// UnreadCount returns the number of unread notifications, served from
// cache when fresh.
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	key := cache.UnreadNotificationsKey(userID)
	if count, ok := cache.GetCachedCount(ctx, key); ok {
		return count, nil
	}

	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	cache.SetCachedCount(ctx, key, count)
	return count, nil
}

// MarkRead marks one notification read, owner-gated.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) (*models.Notification, error) {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, models.NewForbiddenError("You can only mark your own notifications as read")
	}

	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return nil, err
	}
	notification.Read = true
	cache.InvalidateUnreadNotifications(ctx, userID)
	return notification, nil
}

// MarkAllRead marks every unread notification for the user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	cache.InvalidateUnreadNotifications(ctx, userID)
	return nil
}

// Delete removes the given notifications. IDs belonging to other users
// are silently skipped; the returned count reflects actual deletions.
func (s *NotificationService) Delete(ctx context.Context, userID uint, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, models.NewValidationError("At least one notification ID is required")
	}
	deleted, err := s.notificationRepo.DeleteByIDs(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	cache.InvalidateUnreadNotifications(ctx, userID)
	return deleted, nil
}

// DeleteRead removes every read notification for the user. Only read
// rows are removed, so the cached unread count stays valid and is not
// invalidated here.
func (s *NotificationService) DeleteRead(ctx context.Context, userID uint) (int64, error) {
	return s.notificationRepo.DeleteRead(ctx, userID)
}
