package service

import (
	"context"
	"testing"

	"linkup/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "SecurePass12!@"

func signupUserRepo() *userRepoStub {
	repo := noopUserRepo()
	// No existing account with any email
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return nil, models.NewNotFoundError("User", email)
	}
	return repo
}

func TestSignup_HashesPasswordAndNormalizesEmail(t *testing.T) {
	var created *models.User
	repo := signupUserRepo()
	repo.createFn = func(_ context.Context, user *models.User) error {
		created = user
		return nil
	}
	svc := NewUserService(repo, noopFriendRepo())

	user, err := svc.Signup(context.Background(), SignupInput{
		Name:     "new_user",
		Email:    "  Person@Example.COM ",
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "person@example.com", user.Email)
	assert.NotEqual(t, testPassword, user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(testPassword)))
}

func TestSignup_Validation(t *testing.T) {
	svc := NewUserService(signupUserRepo(), noopFriendRepo())

	tests := []struct {
		name  string
		input SignupInput
	}{
		{"Missing Email", SignupInput{Name: "someone", Password: testPassword}},
		{"Bad Email", SignupInput{Name: "someone", Email: "nope", Password: testPassword}},
		{"Weak Password", SignupInput{Name: "someone", Email: "a@b.com", Password: "short"}},
		{"Bad Name", SignupInput{Name: "x!", Email: "a@b.com", Password: testPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.input)
			require.Error(t, err)
			appErr, ok := err.(*models.AppError)
			require.True(t, ok)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email}, nil
	}
	svc := NewUserService(repo, noopFriendRepo())

	_, err := svc.Signup(context.Background(), SignupInput{
		Name: "someone", Email: "a@b.com", Password: testPassword,
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "known@example.com" {
			return &models.User{ID: 1, Email: email, Password: string(hash)}, nil
		}
		return nil, models.NewNotFoundError("User", email)
	}
	svc := NewUserService(repo, noopFriendRepo())

	user, err := svc.Authenticate(context.Background(), "Known@Example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	// Wrong password and unknown email return the same error
	_, wrongPass := svc.Authenticate(context.Background(), "known@example.com", "WrongPass12!@")
	_, unknown := svc.Authenticate(context.Background(), "nobody@example.com", testPassword)
	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestGetProfile_DerivesIsFriend(t *testing.T) {
	friendRepo := noopFriendRepo()
	friendRepo.getBetweenUsersFn = func(context.Context, uint, uint) (*models.Friendship, error) {
		return &models.Friendship{Status: models.FriendshipStatusAccepted}, nil
	}
	svc := NewUserService(noopUserRepo(), friendRepo)

	profile, err := svc.GetProfile(context.Background(), 1, 2)
	require.NoError(t, err)
	require.NotNil(t, profile.IsFriend)
	assert.True(t, *profile.IsFriend)

	// Own profile omits the field
	own, err := svc.GetProfile(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Nil(t, own.IsFriend)
}

func TestUpdateProfile_PartialAndSanitized(t *testing.T) {
	var saved *models.User
	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "old_name", Bio: "old bio"}, nil
	}
	repo.updateFn = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}
	svc := NewUserService(repo, noopFriendRepo())

	bio := "<script>x</script>builder of things"
	skills := models.StringList{" go ", "<b>sql</b>", ""}
	_, err := svc.UpdateProfile(context.Background(), 1, UpdateProfileInput{
		Bio:    &bio,
		Skills: &skills,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "old_name", saved.Name, "omitted fields stay unchanged")
	assert.Equal(t, "builder of things", saved.Bio)
	assert.Equal(t, models.StringList{"go", "sql"}, saved.Skills)
}

func TestSearchUsers_RequiresQuery(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFriendRepo())

	_, err := svc.SearchUsers(context.Background(), 1, "")
	require.Error(t, err)

	var gotLimit int
	repo := noopUserRepo()
	repo.searchFn = func(_ context.Context, _ string, _ uint, limit int) ([]models.User, error) {
		gotLimit = limit
		return nil, nil
	}
	svc = NewUserService(repo, noopFriendRepo())
	_, err = svc.SearchUsers(context.Background(), 1, "ada")
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
}
