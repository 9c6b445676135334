package main

import (
	"context"
	"log"

	"carhub/config"
	"carhub/internal/handler"
	"carhub/internal/repository"
	"carhub/internal/server"
	"carhub/internal/services"
	"carhub/internal/storage"
	"carhub/pkg/database"
	"carhub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(cfg.AppMode)
	logger.SetGlobalLogger(l)
	defer l.Logger.Sync()

	l.Logger.Info("environment check",
		zap.String("port", cfg.AppPort),
		zap.String("cors_origin", cfg.CORSOrigin),
		zap.String("media_bucket", cfg.MediaBucket),
		zap.Bool("media_access_key_set", cfg.MediaAccessKey != ""),
		zap.Bool("media_secret_set", cfg.MediaSecretKey != ""),
		zap.Bool("jwt_secret_set", cfg.JWTSecret != ""),
	)

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	media, err := storage.NewClient(ctx, storage.MediaConfig{
		Region:     cfg.MediaRegion,
		Bucket:     cfg.MediaBucket,
		AccessKey:  cfg.MediaAccessKey,
		SecretKey:  cfg.MediaSecretKey,
		Endpoint:   cfg.MediaEndpoint,
		PublicBase: cfg.MediaPublicBase,
	})
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	carRepo := repository.NewCarRepository(pool)

	authService := services.NewAuthService(userRepo, cfg)
	carService := services.NewCarService(carRepo, media, l)

	handlers := &server.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Car:  handler.NewCarHandler(carService),
	}

	srv := server.New(cfg, l, pool)
	srv.SetupRoutes(handlers, authService)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
