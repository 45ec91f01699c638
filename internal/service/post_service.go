package service

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"
)

const (
	feedPageSize   = 20
	maxTitleLength = 200
	maxBodyLength  = 10000
)

// PostService provides post, like and feed business logic.
type PostService struct {
	postRepo      repository.PostRepository
	userRepo      repository.UserRepository
	notifications *NotificationService
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	notifications *NotificationService,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// CreatePostInput is the payload for creating a post.
type CreatePostInput struct {
	UserID   uint
	Title    string
	Body     string
	ImageURL string
}

// UpdatePostInput is the payload for editing a post.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	Body     string
	ImageURL string
}

// ListPostsInput selects a feed or per-user page of posts.
type ListPostsInput struct {
	CurrentUserID uint
	AuthorID      uint
	Limit         int
	Offset        int
}

// CreatePost validates, sanitizes and stores a new post.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	title := validation.SanitizePlain(input.Title)
	body := validation.SanitizeRich(input.Body)

	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, models.NewValidationError("Title is too long")
	}
	if body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if utf8.RuneCountInString(body) > maxBodyLength {
		return nil, models.NewValidationError("Body is too long")
	}

	post := &models.Post{
		Title:    title,
		Body:     body,
		ImageURL: input.ImageURL,
		UserID:   input.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, input.UserID, post.ID)
}

// GetPost returns the post with its derived fields. The three lookups
// behind the derived fields are independent and run concurrently.
func (s *PostService) GetPost(ctx context.Context, currentUserID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := s.deriveFields(ctx, post, currentUserID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) deriveFields(ctx context.Context, post *models.Post, currentUserID uint) error {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		post.LikesCount, errs[0] = s.postRepo.CountLikes(ctx, post.ID)
	}()
	go func() {
		defer wg.Done()
		post.CommentsCount, errs[1] = s.postRepo.CountComments(ctx, post.ID)
	}()
	go func() {
		defer wg.Done()
		var like *models.Like
		like, errs[2] = s.postRepo.GetLike(ctx, currentUserID, post.ID)
		post.IsLikedByCurrentUser = like != nil
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	post.CanEdit = post.UserID == currentUserID
	return nil
}

// ListPosts returns a page of the global feed, or one author's posts
// when AuthorID is set, newest first with derived fields.
func (s *PostService) ListPosts(ctx context.Context, input ListPostsInput) ([]models.Post, error) {
	limit := input.Limit
	if limit <= 0 || limit > feedPageSize {
		limit = feedPageSize
	}

	var posts []models.Post
	var err error
	if input.AuthorID != 0 {
		if _, err := s.userRepo.GetByID(ctx, input.AuthorID); err != nil {
			return nil, err
		}
		posts, err = s.postRepo.GetByUser(ctx, input.AuthorID, limit, input.Offset)
	} else {
		posts, err = s.postRepo.GetFeed(ctx, limit, input.Offset)
	}
	if err != nil {
		return nil, err
	}

	for i := range posts {
		if err := s.deriveFields(ctx, &posts[i], input.CurrentUserID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// UpdatePost edits a post, owner-gated.
func (s *PostService) UpdatePost(ctx context.Context, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != input.UserID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	title := validation.SanitizePlain(input.Title)
	body := validation.SanitizeRich(input.Body)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if body == "" {
		return nil, models.NewValidationError("Body is required")
	}

	post.Title = title
	post.Body = body
	post.ImageURL = input.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, input.UserID, post.ID)
}

// DeletePost removes a post and its likes and comments in one
// transaction, owner-gated.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.DeleteCascade(ctx, postID)
}

// ToggleLike likes the post if the user has not liked it, otherwise
// removes the like. A new like notifies the post owner.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	existing, err := s.postRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if err := s.postRepo.DeleteLike(ctx, userID, postID); err != nil {
			return nil, err
		}
		return s.GetPost(ctx, userID, postID)
	}

	if err := s.postRepo.CreateLike(ctx, &models.Like{UserID: userID, PostID: postID}); err != nil {
		return nil, err
	}

	liker, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.notifications.Notify(ctx, &models.Notification{
		UserID:  post.UserID,
		Type:    models.NotificationTypePostLike,
		Content: fmt.Sprintf("%s liked your post", liker.Name),
		Metadata: models.NotificationMetadata{
			SenderID: userID,
			PostID:   postID,
		},
	})

	return s.GetPost(ctx, userID, postID)
}

// SearchPosts finds posts matching the query, newest first.
func (s *PostService) SearchPosts(ctx context.Context, currentUserID uint, query string, limit int) ([]models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	if limit <= 0 {
		limit = searchPageSize
	}

	posts, err := s.postRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if err := s.deriveFields(ctx, &posts[i], currentUserID); err != nil {
			return nil, err
		}
	}
	return posts, nil
}
