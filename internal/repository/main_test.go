package repository

import (
	"log"
	"os"
	"testing"

	"linkup/internal/database"
	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(testDB); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}

	os.Exit(m.Run())
}

func createTestUser(t *testing.T) *models.User {
	t.Helper()
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    uuid.NewString() + "@example.com",
		Password: "not-a-real-hash",
		Bio:      gofakeit.JobTitle(),
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, userID uint) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:  gofakeit.Sentence(4),
		Body:   gofakeit.Paragraph(1, 3, 8, " "),
		UserID: userID,
	}
	require.NoError(t, testDB.Create(post).Error)
	return post
}
