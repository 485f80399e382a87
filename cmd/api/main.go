package main

import (
	"context"
	"log"

	"github.com/SkowyrnyMG/healthy-meal-sub000/config"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/database"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/server"
	"github.com/SkowyrnyMG/healthy-meal-sub000/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, image uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	srv := server.NewServer(db, redisClient, imageService, cfg.JWTSecret)
	if err := srv.Start(cfg.ServerHost + ":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
