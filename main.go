package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"medirisk/adapters/api"
	"medirisk/adapters/model"
	"medirisk/adapters/postgres"
	"medirisk/app"
	"medirisk/internal"
	"medirisk/internal/config"
	"medirisk/internal/history"
	"medirisk/ports"
	"medirisk/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	ctx := context.Background()

	// Load the model registry. A load failure degrades to an empty, unusable
	// model set; the UI reports the error instead of the process crashing.
	loadError := ""
	registry, err := model.LoadRegistry(ctx, appConfig.Models.Dir, logger)
	if err != nil {
		logger.Error("model loading failed: %v", err)
		registry = model.EmptyRegistry()
		loadError = err.Error()
	}

	assessments := app.NewAssessmentService(registry, buildHistoryStore(ctx, appConfig, logger), logger)

	uiApp, err := ui.NewApp(assessments, logger, ui.Config{LoadError: loadError})
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}

	// Optional JSON API for non-browser clients, on its own port.
	if appConfig.Server.APIPort != "" {
		apiService := api.NewService(assessments, logger, appConfig.Server.GinMode)
		go func() {
			if err := apiService.Run(":" + appConfig.Server.APIPort); err != nil {
				logger.Error("API server failed: %v", err)
			}
		}()
	}

	log.Fatal(uiApp.Start(":" + appConfig.Server.Port))
}

// buildHistoryStore picks the assessment log backend: Postgres when
// DATABASE_URL is set, the bounded in-memory store otherwise, nil when
// history is disabled entirely.
func buildHistoryStore(ctx context.Context, appConfig *config.Config, logger *internal.Logger) ports.AssessmentRepository {
	if !appConfig.History.Enabled {
		logger.Info("assessment history disabled")
		return nil
	}

	if appConfig.Database.URL == "" {
		return history.NewMemoryStore(appConfig.History.Limit)
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		logger.Error("database connection failed, falling back to in-memory history: %v", err)
		return history.NewMemoryStore(appConfig.History.Limit)
	}

	repo := postgres.NewAssessmentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("database schema setup failed, falling back to in-memory history: %v", err)
		return history.NewMemoryStore(appConfig.History.Limit)
	}

	logger.Info("assessment history persisted to PostgreSQL")
	return repo
}
