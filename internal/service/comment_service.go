package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"
)

const maxCommentLength = 2000

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo   repository.CommentRepository
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreateComment adds a comment to a post and notifies the post owner.
func (s *CommentService) CreateComment(ctx context.Context, userID, postID uint, content string) (*models.Comment, error) {
	content = validation.SanitizePlain(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment content is too long")
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	commenter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.notifications.Notify(ctx, &models.Notification{
		UserID:  post.UserID,
		Type:    models.NotificationTypePostComment,
		Content: fmt.Sprintf("%s commented on your post", commenter.Name),
		Metadata: models.NotificationMetadata{
			SenderID:  userID,
			PostID:    postID,
			CommentID: comment.ID,
		},
	})

	created, err := s.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	created.CanEdit = true
	return created, nil
}

// GetComments returns a post's comments oldest first with CanEdit set
// for the requesting user.
func (s *CommentService) GetComments(ctx context.Context, currentUserID, postID uint) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].CanEdit = comments[i].UserID == currentUserID
	}
	return comments, nil
}

// UpdateComment edits a comment, owner-gated.
func (s *CommentService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewForbiddenError("You can only edit your own comments")
	}

	content = validation.SanitizePlain(content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}

	comment.Content = content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	comment.CanEdit = true
	return comment, nil
}

// DeleteComment removes a comment. The comment owner and the post owner
// may both delete it.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, commentID)
}
