package app

import (
	"log"

	"estatehub/internal/cache"
	"estatehub/internal/config"
	"estatehub/internal/database"
	"estatehub/internal/repository"
	"estatehub/internal/service"
	"estatehub/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	listingCache := cache.NewListingCache(cfg)

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, listingCache)

	return db, repo, services
}
