package main

import (
	"context"
	"log"

	"carhub/config"
	"carhub/pkg/database"
)

func main() {
	cfg := config.LoadConfig()

	if err := database.RunMigrations(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("Migrations applied")
}
