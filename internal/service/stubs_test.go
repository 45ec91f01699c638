package service

import (
	"context"

	"linkup/internal/models"
)

type userRepoStub struct {
	createFn         func(context.Context, *models.User) error
	getByIDFn        func(context.Context, uint) (*models.User, error)
	getByEmailFn     func(context.Context, string) (*models.User, error)
	updateFn         func(context.Context, *models.User) error
	deleteFn         func(context.Context, uint) error
	searchFn         func(context.Context, string, uint, int) ([]models.User, error)
	getSuggestionsFn func(context.Context, uint, int) ([]models.User, error)
	getStatsFn       func(context.Context, uint) (*models.UserStats, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, query string, excludeID uint, limit int) ([]models.User, error) {
	return s.searchFn(ctx, query, excludeID, limit)
}
func (s *userRepoStub) GetSuggestions(ctx context.Context, userID uint, limit int) ([]models.User, error) {
	return s.getSuggestionsFn(ctx, userID, limit)
}
func (s *userRepoStub) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	return s.getStatsFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(context.Context, *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		searchFn: func(context.Context, string, uint, int) ([]models.User, error) {
			return nil, nil
		},
		getSuggestionsFn: func(context.Context, uint, int) ([]models.User, error) { return nil, nil },
		getStatsFn:       func(context.Context, uint) (*models.UserStats, error) { return &models.UserStats{}, nil },
	}
}

type friendRepoStub struct {
	createFn             func(context.Context, *models.Friendship) error
	getByIDFn            func(context.Context, uint) (*models.Friendship, error)
	getBetweenUsersFn    func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn         func(context.Context, uint) ([]models.User, error)
	getPendingReceivedFn func(context.Context, uint) ([]models.Friendship, error)
	getPendingSentFn     func(context.Context, uint) ([]models.Friendship, error)
	updateStatusFn       func(context.Context, uint, models.FriendshipStatus) error
	deleteFn             func(context.Context, uint) error
	deleteBetweenUsersFn func(context.Context, uint, uint) error
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingReceived(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingReceivedFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingSent(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingSentFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) Delete(ctx context.Context, friendshipID uint) error {
	return s.deleteFn(ctx, friendshipID)
}
func (s *friendRepoStub) DeleteBetweenUsers(ctx context.Context, userID1, userID2 uint) error {
	return s.deleteBetweenUsersFn(ctx, userID1, userID2)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:             func(context.Context, *models.Friendship) error { return nil },
		getByIDFn:            func(_ context.Context, id uint) (*models.Friendship, error) { return &models.Friendship{ID: id}, nil },
		getBetweenUsersFn:    func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getPendingReceivedFn: func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		getPendingSentFn:     func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, models.FriendshipStatus) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		deleteBetweenUsersFn: func(context.Context, uint, uint) error { return nil },
	}
}

type notificationRepoStub struct {
	createFn               func(context.Context, *models.Notification) error
	getByIDFn              func(context.Context, uint) (*models.Notification, error)
	getForUserFn           func(context.Context, uint, int) ([]models.Notification, error)
	countUnreadFn          func(context.Context, uint) (int64, error)
	markReadFn             func(context.Context, uint) error
	markAllReadFn          func(context.Context, uint) error
	deleteByIDsFn          func(context.Context, uint, []uint) (int64, error)
	deleteReadFn           func(context.Context, uint) (int64, error)
	resolveFriendRequestFn func(context.Context, uint, uint, models.FriendshipStatus) error
}

func (s *notificationRepoStub) Create(ctx context.Context, notification *models.Notification) error {
	return s.createFn(ctx, notification)
}
func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) GetForUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error) {
	return s.getForUserFn(ctx, userID, limit)
}
func (s *notificationRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}
func (s *notificationRepoStub) MarkRead(ctx context.Context, id uint) error {
	return s.markReadFn(ctx, id)
}
func (s *notificationRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *notificationRepoStub) DeleteByIDs(ctx context.Context, userID uint, ids []uint) (int64, error) {
	return s.deleteByIDsFn(ctx, userID, ids)
}
func (s *notificationRepoStub) DeleteRead(ctx context.Context, userID uint) (int64, error) {
	return s.deleteReadFn(ctx, userID)
}
func (s *notificationRepoStub) ResolveFriendRequest(ctx context.Context, userID, friendshipID uint, status models.FriendshipStatus) error {
	return s.resolveFriendRequestFn(ctx, userID, friendshipID, status)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn:      func(context.Context, *models.Notification) error { return nil },
		getByIDFn:     func(_ context.Context, id uint) (*models.Notification, error) { return &models.Notification{ID: id}, nil },
		getForUserFn:  func(context.Context, uint, int) ([]models.Notification, error) { return nil, nil },
		countUnreadFn: func(context.Context, uint) (int64, error) { return 0, nil },
		markReadFn:    func(context.Context, uint) error { return nil },
		markAllReadFn: func(context.Context, uint) error { return nil },
		deleteByIDsFn: func(context.Context, uint, []uint) (int64, error) { return 0, nil },
		deleteReadFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		resolveFriendRequestFn: func(context.Context, uint, uint, models.FriendshipStatus) error {
			return nil
		},
	}
}

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	getFeedFn       func(context.Context, int, int) ([]models.Post, error)
	getByUserFn     func(context.Context, uint, int, int) ([]models.Post, error)
	searchFn        func(context.Context, string, int) ([]models.Post, error)
	updateFn        func(context.Context, *models.Post) error
	deleteCascadeFn func(context.Context, uint) error
	getLikeFn       func(context.Context, uint, uint) (*models.Like, error)
	createLikeFn    func(context.Context, *models.Like) error
	deleteLikeFn    func(context.Context, uint, uint) error
	countLikesFn    func(context.Context, uint) (int64, error)
	countCommentsFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetFeed(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.getFeedFn(ctx, limit, offset)
}
func (s *postRepoStub) GetByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.getByUserFn(ctx, userID, limit, offset)
}
func (s *postRepoStub) Search(ctx context.Context, query string, limit int) ([]models.Post, error) {
	return s.searchFn(ctx, query, limit)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) DeleteCascade(ctx context.Context, postID uint) error {
	return s.deleteCascadeFn(ctx, postID)
}
func (s *postRepoStub) GetLike(ctx context.Context, userID, postID uint) (*models.Like, error) {
	return s.getLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CreateLike(ctx context.Context, like *models.Like) error {
	return s.createLikeFn(ctx, like)
}
func (s *postRepoStub) DeleteLike(ctx context.Context, userID, postID uint) error {
	return s.deleteLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}
func (s *postRepoStub) CountComments(ctx context.Context, postID uint) (int64, error) {
	return s.countCommentsFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(context.Context, *models.Post) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getFeedFn:       func(context.Context, int, int) ([]models.Post, error) { return nil, nil },
		getByUserFn:     func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
		searchFn:        func(context.Context, string, int) ([]models.Post, error) { return nil, nil },
		updateFn:        func(context.Context, *models.Post) error { return nil },
		deleteCascadeFn: func(context.Context, uint) error { return nil },
		getLikeFn:       func(context.Context, uint, uint) (*models.Like, error) { return nil, nil },
		createLikeFn:    func(context.Context, *models.Like) error { return nil },
		deleteLikeFn:    func(context.Context, uint, uint) error { return nil },
		countLikesFn:    func(context.Context, uint) (int64, error) { return 0, nil },
		countCommentsFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type commentRepoStub struct {
	createFn    func(context.Context, *models.Comment) error
	getByIDFn   func(context.Context, uint) (*models.Comment, error)
	getByPostFn func(context.Context, uint) ([]models.Comment, error)
	updateFn    func(context.Context, *models.Comment) error
	deleteFn    func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) GetByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.getByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:    func(context.Context, *models.Comment) error { return nil },
		getByIDFn:   func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		getByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		updateFn:    func(context.Context, *models.Comment) error { return nil },
		deleteFn:    func(context.Context, uint) error { return nil },
	}
}

type chatRepoStub struct {
	getOrCreateConversationFn   func(context.Context, uint, uint) (*models.Conversation, error)
	getConversationByIDFn       func(context.Context, uint) (*models.Conversation, error)
	getConversationsForUserFn   func(context.Context, uint) ([]models.Conversation, error)
	touchConversationFn         func(context.Context, uint) error
	createMessageFn             func(context.Context, *models.Message) error
	getMessagesFn               func(context.Context, uint, int, int) ([]models.Message, error)
	getLastMessageFn            func(context.Context, uint) (*models.Message, error)
	markMessagesReadFn          func(context.Context, uint, uint) (int64, error)
	countUnreadInConversationFn func(context.Context, uint, uint) (int64, error)
	countUnreadTotalFn          func(context.Context, uint) (int64, error)
}

func (s *chatRepoStub) GetOrCreateConversation(ctx context.Context, userID1, userID2 uint) (*models.Conversation, error) {
	return s.getOrCreateConversationFn(ctx, userID1, userID2)
}
func (s *chatRepoStub) GetConversationByID(ctx context.Context, id uint) (*models.Conversation, error) {
	return s.getConversationByIDFn(ctx, id)
}
func (s *chatRepoStub) GetConversationsForUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	return s.getConversationsForUserFn(ctx, userID)
}
func (s *chatRepoStub) TouchConversation(ctx context.Context, id uint) error {
	return s.touchConversationFn(ctx, id)
}
func (s *chatRepoStub) CreateMessage(ctx context.Context, message *models.Message) error {
	return s.createMessageFn(ctx, message)
}
func (s *chatRepoStub) GetMessages(ctx context.Context, conversationID uint, limit, offset int) ([]models.Message, error) {
	return s.getMessagesFn(ctx, conversationID, limit, offset)
}
func (s *chatRepoStub) GetLastMessage(ctx context.Context, conversationID uint) (*models.Message, error) {
	return s.getLastMessageFn(ctx, conversationID)
}
func (s *chatRepoStub) MarkMessagesRead(ctx context.Context, conversationID, readerID uint) (int64, error) {
	return s.markMessagesReadFn(ctx, conversationID, readerID)
}
func (s *chatRepoStub) CountUnreadInConversation(ctx context.Context, conversationID, userID uint) (int64, error) {
	return s.countUnreadInConversationFn(ctx, conversationID, userID)
}
func (s *chatRepoStub) CountUnreadTotal(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadTotalFn(ctx, userID)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		getOrCreateConversationFn: func(context.Context, uint, uint) (*models.Conversation, error) {
			return &models.Conversation{ID: 1}, nil
		},
		getConversationByIDFn: func(_ context.Context, id uint) (*models.Conversation, error) {
			return &models.Conversation{ID: id}, nil
		},
		getConversationsForUserFn:   func(context.Context, uint) ([]models.Conversation, error) { return nil, nil },
		touchConversationFn:         func(context.Context, uint) error { return nil },
		createMessageFn:             func(context.Context, *models.Message) error { return nil },
		getMessagesFn:               func(context.Context, uint, int, int) ([]models.Message, error) { return nil, nil },
		getLastMessageFn:            func(context.Context, uint) (*models.Message, error) { return nil, nil },
		markMessagesReadFn:          func(context.Context, uint, uint) (int64, error) { return 0, nil },
		countUnreadInConversationFn: func(context.Context, uint, uint) (int64, error) { return 0, nil },
		countUnreadTotalFn:          func(context.Context, uint) (int64, error) { return 0, nil },
	}
}
