package seed

import (
	"fmt"
	"os"

	"linkup/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset is a declarative seed scenario loaded from a YAML file.
// Users are referenced by email in the connection and post sections.
type Preset struct {
	Name  string `yaml:"name"`
	Users []struct {
		Name     string   `yaml:"name"`
		Email    string   `yaml:"email"`
		Password string   `yaml:"password"`
		Bio      string   `yaml:"bio"`
		Skills   []string `yaml:"skills"`
	} `yaml:"users"`
	Connections []struct {
		From   string `yaml:"from"`
		To     string `yaml:"to"`
		Status string `yaml:"status"`
	} `yaml:"connections"`
	Posts []struct {
		Author string `yaml:"author"`
		Title  string `yaml:"title"`
		Body   string `yaml:"body"`
	} `yaml:"posts"`
}

// LoadPreset parses a preset file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}

	var preset Preset
	if err := yaml.Unmarshal(raw, &preset); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if len(preset.Users) == 0 {
		return nil, fmt.Errorf("preset %q defines no users", preset.Name)
	}
	return &preset, nil
}

// Apply persists the preset's users, connections and posts in one
// transaction so a malformed preset leaves nothing behind.
func (p *Preset) Apply(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		byEmail := make(map[string]*models.User, len(p.Users))

		for _, entry := range p.Users {
			password := entry.Password
			if password == "" {
				password = "SeededPass12!@"
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
			if err != nil {
				return err
			}

			user := &models.User{
				Name:     entry.Name,
				Email:    entry.Email,
				Password: string(hash),
				Bio:      entry.Bio,
				Skills:   models.StringList(entry.Skills),
			}
			if err := tx.Create(user).Error; err != nil {
				return fmt.Errorf("create preset user %q: %w", entry.Email, err)
			}
			byEmail[entry.Email] = user
		}

		for _, edge := range p.Connections {
			sender, ok := byEmail[edge.From]
			if !ok {
				return fmt.Errorf("connection references unknown user %q", edge.From)
			}
			receiver, ok := byEmail[edge.To]
			if !ok {
				return fmt.Errorf("connection references unknown user %q", edge.To)
			}

			status := models.FriendshipStatus(edge.Status)
			if status == "" {
				status = models.FriendshipStatusAccepted
			}
			if status != models.FriendshipStatusAccepted && status != models.FriendshipStatusPending {
				return fmt.Errorf("connection %s -> %s has invalid status %q", edge.From, edge.To, edge.Status)
			}

			if err := tx.Create(&models.Friendship{
				SenderID:   sender.ID,
				ReceiverID: receiver.ID,
				Status:     status,
			}).Error; err != nil {
				return fmt.Errorf("create preset connection: %w", err)
			}
		}

		for _, entry := range p.Posts {
			author, ok := byEmail[entry.Author]
			if !ok {
				return fmt.Errorf("post references unknown user %q", entry.Author)
			}
			if err := tx.Create(&models.Post{
				UserID: author.ID,
				Title:  entry.Title,
				Body:   entry.Body,
			}).Error; err != nil {
				return fmt.Errorf("create preset post: %w", err)
			}
		}

		return nil
	})
}
