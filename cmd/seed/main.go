package main

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

// demoUsers are inserted when missing so a fresh environment has data
// to browse.
var demoUsers = []model.User{
	{Username: "alice", Email: "alice@example.com"},
	{Username: "bob", Email: "bob@example.com"},
	{Username: "carol", Email: "carol@example.com"},
	{Username: "dave", Email: "dave@example.com"},
	{Username: "erin", Email: "erin@example.com"},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	healthRepo := repository.NewHealthCheckRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding users into database...")
	seeded, skipped, err := seedUsers(ctx, userRepo, demoUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// Record a health check row so the history is never empty
	if err := healthRepo.Create(ctx, &model.HealthCheck{Status: model.StatusHealthy}); err != nil {
		log.Fatalf("Failed to record health check: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Existing users skipped: %d", skipped)
	log.Printf("  - Total users processed: %d", seeded+skipped)
}

// seedUsers inserts the users that are not present yet. Users whose
// username or email is already taken are left untouched.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []model.User) (seeded int, skipped int, err error) {
	for _, user := range users {
		existing, err := repo.FindByUsernameOrEmail(ctx, user.Username, user.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return seeded, skipped, fmt.Errorf("error checking user %s: %w", user.Username, err)
		}

		if existing != nil {
			skipped++
			continue
		}

		if err := repo.Create(ctx, &user); err != nil {
			return seeded, skipped, fmt.Errorf("error creating user %s: %w", user.Username, err)
		}
		seeded++
	}

	return seeded, skipped, nil
}
