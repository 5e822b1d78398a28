package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Mahhmanee/Sup/internal/config"
	"github.com/Mahhmanee/Sup/internal/database"
	"github.com/Mahhmanee/Sup/internal/repository"
	"github.com/Mahhmanee/Sup/internal/telegram"
	"github.com/Mahhmanee/Sup/migration"
)

func main() {
	_ = godotenv.Load()

	config.Load("config")

	pool, err := database.NewPostgresPool(config.App.Database)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := migration.RunMigrations(pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)

	telegram.RunTelegramBot(config.App.Telegram, config.App.Tickets, userRepo)
}
