package service

import (
	"context"
	"fmt"

	"linkup/internal/models"
	"linkup/internal/repository"
)

const suggestionPageSize = 5

// FriendService provides connection-request and friendship business logic.
type FriendService struct {
	friendRepo    repository.FriendRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewFriendService returns a new FriendService.
func NewFriendService(
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
) *FriendService {
	return &FriendService{
		friendRepo:    friendRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// SendRequest creates a pending edge from the sender to the target and
// fans out a friend-request notification. A rejected edge between the
// pair is deleted and replaced by the new request.
func (s *FriendService) SendRequest(ctx context.Context, userID, targetUserID uint) (*models.Friendship, error) {
	if userID == targetUserID {
		return nil, models.NewValidationError("Cannot send a connection request to yourself")
	}

	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	existing, err := s.friendRepo.GetBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case models.FriendshipStatusAccepted:
			return nil, models.NewConflictError("You are already connected")
		case models.FriendshipStatusPending:
			if existing.SenderID == userID {
				return nil, models.NewConflictError("Connection request already sent")
			}
			return nil, models.NewConflictError("This user has already sent you a connection request")
		case models.FriendshipStatusRejected:
			if err := s.friendRepo.DeleteBetweenUsers(ctx, userID, targetUserID); err != nil {
				return nil, err
			}
		}
	}

	friendship := &models.Friendship{
		SenderID:   userID,
		ReceiverID: targetUserID,
		Status:     models.FriendshipStatusPending,
	}
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	s.notifications.Notify(ctx, &models.Notification{
		UserID:  targetUserID,
		Type:    models.NotificationTypeFriendRequest,
		Content: fmt.Sprintf("%s sent you a connection request", sender.Name),
		Metadata: models.NotificationMetadata{
			FriendshipID: friendship.ID,
			SenderID:     userID,
			Status:       models.FriendshipStatusPending,
		},
	})

	return s.friendRepo.GetByID(ctx, friendship.ID)
}

// RespondToRequest accepts or rejects a pending request addressed to
// the user. Both outcomes resolve the originating friend-request
// notification; only an accept notifies the sender, a decline stays
// silent.
func (s *FriendService) RespondToRequest(ctx context.Context, userID, requestID uint, accept bool) (*models.Friendship, error) {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if friendship.ReceiverID != userID {
		return nil, models.NewForbiddenError("You can only respond to requests sent to you")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return nil, models.NewValidationError("Connection request is not pending")
	}

	status := models.FriendshipStatusRejected
	if accept {
		status = models.FriendshipStatusAccepted
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}

	if accept {
		responder, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		s.notifications.Notify(ctx, &models.Notification{
			UserID:  friendship.SenderID,
			Type:    models.NotificationTypeFriendRequestResponse,
			Content: fmt.Sprintf("%s accepted your connection request", responder.Name),
			Metadata: models.NotificationMetadata{
				FriendshipID: friendship.ID,
				SenderID:     userID,
				Status:       status,
			},
		})
	}

	s.notifications.ResolveFriendRequest(ctx, userID, friendship.ID, status)

	return s.friendRepo.GetByID(ctx, requestID)
}

// CancelRequest withdraws a pending request the user sent.
func (s *FriendService) CancelRequest(ctx context.Context, userID, requestID uint) error {
	friendship, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if friendship.SenderID != userID {
		return models.NewForbiddenError("You can only cancel requests you sent")
	}
	if friendship.Status != models.FriendshipStatusPending {
		return models.NewValidationError("Connection request is not pending")
	}

	return s.friendRepo.Delete(ctx, requestID)
}

// RemoveFriend deletes an accepted edge between the user and the target.
func (s *FriendService) RemoveFriend(ctx context.Context, userID, targetUserID uint) error {
	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return err
	}
	if friendship == nil || friendship.Status != models.FriendshipStatusAccepted {
		return models.NewNotFoundError("Friendship", targetUserID)
	}

	return s.friendRepo.Delete(ctx, friendship.ID)
}

// GetFriends returns the user's accepted connections.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.friendRepo.GetFriends(ctx, userID)
}

// GetPendingReceived returns pending requests addressed to the user.
func (s *FriendService) GetPendingReceived(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingReceived(ctx, userID)
}

// GetSentRequests returns pending requests the user sent.
func (s *FriendService) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.friendRepo.GetPendingSent(ctx, userID)
}

// GetStatus derives the relation between the user and another profile.
func (s *FriendService) GetStatus(ctx context.Context, userID, targetUserID uint) (*models.FriendshipState, error) {
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	friendship, err := s.friendRepo.GetBetweenUsers(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if friendship == nil {
		return &models.FriendshipState{Status: models.FriendshipStatusNone}, nil
	}

	state := &models.FriendshipState{
		Status:   friendship.Status,
		IsSender: friendship.SenderID == userID,
	}
	if friendship.Status == models.FriendshipStatusPending {
		state.RequestID = friendship.ID
	}
	return state, nil
}

// GetSuggestions returns up to five users with no accepted connection
// to the requester.
func (s *FriendService) GetSuggestions(ctx context.Context, userID uint) ([]models.User, error) {
	return s.userRepo.GetSuggestions(ctx, userID, suggestionPageSize)
}
