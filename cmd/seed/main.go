// Command main runs the database seeder for HomeGenie.
package main

import (
	"context"
	"flag"
	"log"

	"homegenie/internal/config"
	"homegenie/internal/database"
	"homegenie/internal/repository"
	"homegenie/internal/seed"
)

func main() {
	// Parse command line flags
	demo := flag.Bool("demo", false, "Generate demo residents and community posts")
	numUsers := flag.Int("users", 10, "Number of demo users to create")
	numPosts := flag.Int("posts", 25, "Number of demo posts to create")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StorageBackend != "postgres" {
		log.Fatalf("Seeding requires STORAGE_BACKEND=postgres (the memory backend seeds itself at startup)")
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	repos := repository.NewGormRepositories(db)

	if err := seed.Apply(ctx, repos); err != nil {
		log.Fatalf("❌ Catalog seeding failed: %v", err)
	}
	log.Println("✓ Baseline categories and providers seeded")

	if *demo {
		if err := seed.Demo(ctx, repos, seed.DemoOptions{
			NumUsers: *numUsers,
			NumPosts: *numPosts,
		}); err != nil {
			log.Fatalf("❌ Demo data seeding failed: %v", err)
		}
		log.Printf("✓ %d demo users and %d posts created", *numUsers, *numPosts)
		log.Println("📧 All demo users have the password: password123")
	}

	log.Println("✨ All done!")
}
