package service

import (
	"context"
	"strings"

	"linkup/internal/cache"
	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const searchPageSize = 5

// UserService provides account, profile and search business logic.
type UserService struct {
	userRepo   repository.UserRepository
	friendRepo repository.FriendRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, friendRepo repository.FriendRepository) *UserService {
	return &UserService{userRepo: userRepo, friendRepo: friendRepo}
}

// SignupInput is the payload for account creation.
type SignupInput struct {
	Name     string `json:"name" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput is the payload for profile edits. Nil pointers
// leave the corresponding field unchanged.
type UpdateProfileInput struct {
	Name        *string                `json:"name"`
	Bio         *string                `json:"bio"`
	Image       *string                `json:"image"`
	Skills      *models.StringList     `json:"skills"`
	Experiences *models.ProfileEntries `json:"experiences"`
	Educations  *models.ProfileEntries `json:"educations"`
}

// Signup validates the input, hashes the password and creates the
// account. Duplicate emails are reported as conflicts.
func (s *UserService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	if err := validation.ValidateStruct(input); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	name := validation.SanitizePlain(input.Name)
	if err := validation.ValidateUsername(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, models.NewConflictError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the account.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

// GetProfile returns a user's profile. Viewing another user derives the
// is_friend field.
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 && viewerID != targetID {
		friendship, err := s.friendRepo.GetBetweenUsers(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
		isFriend := friendship != nil && friendship.Status == models.FriendshipStatusAccepted
		user.IsFriend = &isFriend
	}

	return user, nil
}

// UpdateProfile applies the provided fields to the user's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := validation.SanitizePlain(*input.Name)
		if err := validation.ValidateUsername(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = name
	}
	if input.Bio != nil {
		user.Bio = validation.SanitizeRich(*input.Bio)
	}
	if input.Image != nil {
		user.Image = *input.Image
	}
	if input.Skills != nil {
		skills := make(models.StringList, 0, len(*input.Skills))
		for _, skill := range *input.Skills {
			if cleaned := validation.SanitizePlain(skill); cleaned != "" {
				skills = append(skills, cleaned)
			}
		}
		user.Skills = skills
	}
	if input.Experiences != nil {
		user.Experiences = sanitizeEntries(*input.Experiences)
	}
	if input.Educations != nil {
		user.Educations = sanitizeEntries(*input.Educations)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUser(ctx, userID)
	return user, nil
}

func sanitizeEntries(entries models.ProfileEntries) models.ProfileEntries {
	out := make(models.ProfileEntries, 0, len(entries))
	for _, entry := range entries {
		entry.Title = validation.SanitizePlain(entry.Title)
		entry.Organization = validation.SanitizePlain(entry.Organization)
		entry.Description = validation.SanitizePlain(entry.Description)
		if entry.Title == "" && entry.Organization == "" {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// GetStats returns profile aggregates for the user.
func (s *UserService) GetStats(ctx context.Context, userID uint) (*models.UserStats, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.userRepo.GetStats(ctx, userID)
}

// SearchUsers finds users by name or email, excluding the requester.
func (s *UserService) SearchUsers(ctx context.Context, currentUserID uint, query string) ([]models.User, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.userRepo.Search(ctx, query, currentUserID, searchPageSize)
}
