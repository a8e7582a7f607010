package main

import (
	"context"
	"log"
	"os"

	"personnel-bot/bot"
	"personnel-bot/commands"
	"personnel-bot/config"
	"personnel-bot/handlers"
	"personnel-bot/utils/database/registry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := registry.Init(cfg.RegistryDBPath)
	if err != nil {
		log.Fatalf("Error initializing registry database: %v", err)
	}
	defer db.Close()

	b, err := bot.New(context.Background(), cfg, db)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run(commands.GenerateCommands())

	defer b.Close()
}
