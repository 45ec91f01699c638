// Package seed provides helpers to create demo data for development
// and testing.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		//nolint:gosec // weak randomness is fine for demo data
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	skills := make(models.StringList, 0, 4)
	for i := 0; i < f.rng.Intn(4)+1; i++ {
		skills = append(skills, gofakeit.ProgrammingLanguage())
	}

	user := &models.User{
		Name:   fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(10, 99)),
		Email:  gofakeit.Email(),
		Bio:    gofakeit.JobDescriptor() + " " + gofakeit.JobTitle(),
		Image:  fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Skills: skills,
		Experiences: models.ProfileEntries{{
			Title:        gofakeit.JobTitle(),
			Organization: gofakeit.Company(),
			Description:  gofakeit.Sentence(8),
		}},
	}

	// Bcrypt dominates seeding time, so dev fast mode skips it
	if f.opts.SkipBcrypt {
		user.Password = "SeededPass12!@"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("SeededPass12!@"), bcrypt.MinCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user
// with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:  gofakeit.Sentence(5),
		Body:   gofakeit.Paragraph(1, 3, 5, "\n"),
		UserID: user.ID,
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	if f.rng.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a sample comment on the post by the user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		PostID:  post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from the user on the post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// CreateFriendship persists a connection edge between two users.
func (f *Factory) CreateFriendship(sender, receiver *models.User, status models.FriendshipStatus) error {
	return f.db.Create(&models.Friendship{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Status:     status,
	}).Error
}

// CreateConversation persists the pairwise conversation between two
// users, normalizing the pair order like the chat layer does.
func (f *Factory) CreateConversation(user1, user2 *models.User) (*models.Conversation, error) {
	id1, id2 := user1.ID, user2.ID
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	conversation := &models.Conversation{User1ID: id1, User2ID: id2}
	if err := f.db.Create(conversation).Error; err != nil {
		return nil, err
	}
	return conversation, nil
}

// CreateMessage persists a sample message in the conversation from the
// sender to the other participant.
func (f *Factory) CreateMessage(conversation *models.Conversation, sender *models.User, overrides ...func(*models.Message)) (*models.Message, error) {
	receiverID := conversation.User1ID
	if receiverID == sender.ID {
		receiverID = conversation.User2ID
	}

	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		ReceiverID:     receiverID,
		Content:        gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(message)
	}

	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}
