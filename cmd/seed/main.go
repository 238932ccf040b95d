// Command seed populates a development database with demo accounts and entries.
package main

import (
	"context"
	"log"

	"trailpost/internal/config"
	"trailpost/internal/database"
	"trailpost/internal/models"
	"trailpost/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type demoUser struct {
	email    string
	password string
	name     string
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	campingRepo := repository.NewCampingRepository(db)

	demos := []demoUser{
		{"alice@example.com", "test123!@#", "Alice"},
		{"bob@example.com", "test123!@#", "Bob"},
		{"carol@example.com", "test123!@#", "Carol"},
	}

	for _, d := range demos {
		existing, err := userRepo.GetByEmail(ctx, d.email)
		if err != nil {
			log.Fatalf("Failed to look up %s: %v", d.email, err)
		}
		if existing != nil {
			log.Printf("Skipping %s: already seeded", d.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &models.User{
			Email:    d.email,
			Password: string(hash),
			Name:     d.name,
			IsActive: true,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", d.email, err)
		}

		blog := &models.Blog{
			UserID:  user.ID,
			Title:   d.name + "'s first post",
			Content: "Notes from the trail.",
		}
		if err := blogRepo.Create(ctx, blog); err != nil {
			log.Fatalf("Failed to create blog for %s: %v", d.email, err)
		}
		if err := blogRepo.ReplaceTags(ctx, blog, []string{"first", "hiking"}); err != nil {
			log.Fatalf("Failed to tag blog for %s: %v", d.email, err)
		}

		camping := &models.Camping{
			UserID: user.ID,
			Title:  "Riverside pitch",
			Review: "Quiet site, good water access.",
		}
		if err := campingRepo.Create(ctx, camping); err != nil {
			log.Fatalf("Failed to create camping entry for %s: %v", d.email, err)
		}

		log.Printf("Seeded %s", d.email)
	}

	log.Println("Seeding complete")
}
