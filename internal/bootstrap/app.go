package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"icebreaker-backend/internal/contacts"
	"icebreaker-backend/internal/extract"
	"icebreaker-backend/internal/icebreakers"
	"icebreaker-backend/internal/llm"
	openai "icebreaker-backend/internal/llm/openai"
	"icebreaker-backend/internal/services/health"
	"icebreaker-backend/internal/shared/config"
	"icebreaker-backend/internal/shared/server"
	"icebreaker-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	Bank               *icebreakers.Bank
	IcebreakersService *icebreakers.Service
	ContactsRepo       contacts.Repo
	ContactsService    *contacts.Service
	IcebreakersHandler *icebreakers.Handler
	ContactsHandler    *contacts.Handler
	ImportHandler      *extract.Handler
	Health             *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	bank, err := icebreakers.LoadBank()
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Bank:   bank,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		IcebreakersHandler: app.IcebreakersHandler,
		ContactsHandler:    app.ContactsHandler,
		ImportHandler:      app.ImportHandler,
		Health:             app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildServices(app *App) {
	var llmClient llm.Client
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(app.Config.OpenAIAPIKey) != "" {
		client, err := openai.NewClient(app.Config.OpenAIAPIKey, app.Config.LLMModel)
		if err != nil {
			log.Printf("bootstrap: openai client unavailable, AI customization disabled: %v", err)
		} else {
			llmClient = client
		}
	}

	app.IcebreakersService = icebreakers.NewService(app.Bank, llmClient, app.Config.AICustomizeTimeout)

	var contactsRepo contacts.Repo
	if app.DB != nil {
		contactsRepo = &contacts.PGRepo{DB: app.DB}
	} else {
		contactsRepo = contacts.NewMemoryRepo()
	}
	app.ContactsRepo = contactsRepo
	app.ContactsService = contacts.NewService(contactsRepo)

	app.IcebreakersHandler = icebreakers.NewHandler(app.IcebreakersService)
	app.ContactsHandler = contacts.NewHandler(app.ContactsService)
	app.ImportHandler = extract.NewHandler()
	app.Health = health.NewService(app.Bank.Len(), app.Bank.Fingerprint(), app.DB)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
