// Command seed populates the database from the bundled historical events.
package main

import (
	"context"
	"log"

	"vietchronicle/internal/config"
	"vietchronicle/internal/content"
	"vietchronicle/internal/database"
	"vietchronicle/internal/middleware"
	"vietchronicle/internal/repository"
	"vietchronicle/internal/service"
)

func main() {
	log.Println("🌱 VietChronicle Seeder")
	log.Println("=======================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	store := content.NewStore(cfg.EventsFile, cfg.PostsFile, cfg.SystemPromptFile)
	seeder := service.NewSeedService(repository.NewPostRepository(db), store, middleware.Logger)

	result, err := seeder.Run(context.Background())
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Đã thêm %d bài viết lịch sử Việt Nam vào database", result.Count)
	log.Printf("   Topics: %v", result.Topics)
}
