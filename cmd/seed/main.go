// Command seed populates the database with demo data.
package main

import (
	"flag"
	"log"

	"linkup/internal/bootstrap"
	"linkup/internal/config"
	"linkup/internal/featureflags"
	"linkup/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing (seeded accounts cannot log in)")
	preset := flag.String("preset", "", "Apply a YAML preset file instead of random data")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	rt, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if *preset != "" {
		if !rt.Flags.Enabled(featureflags.FlagSeedPresets, 0) {
			log.Fatalf("Preset seeding is disabled; set %s=on in FEATURE_FLAGS to enable it",
				featureflags.FlagSeedPresets)
		}

		p, err := seed.LoadPreset(*preset)
		if err != nil {
			log.Fatalf("Preset load failed: %v", err)
		}
		if err := p.Apply(rt.DB); err != nil {
			log.Fatalf("Preset seeding failed: %v", err)
		}
		log.Printf("Applied preset %q", p.Name)
		return
	}

	if err := seed.Seed(rt.DB, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Seeded accounts use the password: SeededPass12!@")
}
