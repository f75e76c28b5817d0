package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"medirisk/adapters/api"
	"medirisk/adapters/model"
	"medirisk/app"
	"medirisk/internal"
	"medirisk/internal/config"
	"medirisk/internal/history"
)

// API-only entrypoint: serves the JSON assessment API without the HTML UI.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	registry, err := model.LoadRegistry(context.Background(), appConfig.Models.Dir, logger)
	if err != nil {
		log.Fatalf("Model loading failed: %v", err)
	}

	assessments := app.NewAssessmentService(registry, history.NewMemoryStore(appConfig.History.Limit), logger)
	service := api.NewService(assessments, logger, appConfig.Server.GinMode)

	log.Fatal(service.Run(":" + appConfig.Server.Port))
}
