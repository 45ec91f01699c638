package seed

import (
	"fmt"
	"log"

	"linkup/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores a plaintext placeholder password instead of a
	// bcrypt hash. Seeded accounts then cannot log in.
	SkipBcrypt bool
	// MaxDays bounds the created_at spread of generated posts.
	MaxDays int
}

// Seed populates the database with demo data: users, a social graph of
// connections, posts with likes and comments, and a few conversations
// between connected pairs.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Printf("Warning: could not clear existing data, continuing anyway: %v", err)
		}
	}

	factory := NewFactory(db, opts)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	if err := seedConnections(factory, users); err != nil {
		return fmt.Errorf("failed to create connections: %w", err)
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.rng.Intn(len(users))]
		post, err := factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	if err := seedEngagement(factory, users, posts); err != nil {
		return fmt.Errorf("failed to create likes and comments: %w", err)
	}
	if err := seedConversations(factory, users); err != nil {
		return fmt.Errorf("failed to create conversations: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedConnections links each user to a handful of others: mostly
// accepted edges plus some still-pending requests.
func seedConnections(factory *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	for i, user := range users {
		edges := factory.rng.Intn(3) + 1
		for j := 1; j <= edges; j++ {
			other := users[(i+j)%len(users)]
			if other.ID == user.ID {
				continue
			}

			status := models.FriendshipStatusAccepted
			if factory.rng.Intn(4) == 0 {
				status = models.FriendshipStatusPending
			}
			if err := factory.CreateFriendship(user, other, status); err != nil {
				// The pair may already have an edge from the other
				// direction; skip and keep going.
				continue
			}
		}
	}
	return nil
}

func seedEngagement(factory *Factory, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		likes := factory.rng.Intn(len(users))
		for i := 0; i < likes; i++ {
			if err := factory.CreateLike(users[i], post); err != nil {
				continue
			}
		}
		comments := factory.rng.Intn(3)
		for i := 0; i < comments; i++ {
			commenter := users[factory.rng.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return err
			}
		}
	}
	return nil
}

func seedConversations(factory *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	pairs := len(users) / 2
	for i := 0; i < pairs; i++ {
		a, b := users[i*2], users[i*2+1]
		conversation, err := factory.CreateConversation(a, b)
		if err != nil {
			continue
		}

		messages := factory.rng.Intn(5) + 2
		for j := 0; j < messages; j++ {
			sender := a
			if j%2 == 1 {
				sender = b
			}
			if _, err := factory.CreateMessage(conversation, sender); err != nil {
				return err
			}
		}
	}
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	if db.Dialector.Name() == "postgres" {
		return db.Exec(`TRUNCATE TABLE comments, likes, posts, messages, conversations, notifications, friendships, users RESTART IDENTITY CASCADE;`).Error
	}
	for _, table := range []string{"comments", "likes", "posts", "messages", "conversations", "notifications", "friendships", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
