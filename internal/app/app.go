package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/templui/smartgoals/internal/config"
	"github.com/templui/smartgoals/internal/db"
	"github.com/templui/smartgoals/internal/repository"
	"github.com/templui/smartgoals/internal/service"
	"github.com/templui/smartgoals/internal/service/llm"
	"github.com/templui/smartgoals/internal/storage"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	AuthService  *service.AuthService
	EmailService *service.EmailService
	Synthesizer  *service.Synthesizer
	GoalService  *service.GoalService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	if cfg.MigrateOnStart {
		err = db.RunMigrations(database.DB, cfg.DBDriver)
		if err != nil {
			_ = db.Close(database)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Repositories
	goalRepository := repository.NewGoalRepository(database)
	progressRepository := repository.NewProgressRepository(database)

	// Storage
	archive, err := storage.New(ctx, cfg)
	if err != nil {
		_ = db.Close(database)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Model provider
	provider, err := llm.NewProvider(cfg)
	if err != nil {
		_ = db.Close(database)
		return nil, fmt.Errorf("failed to initialize model provider: %w", err)
	}

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	synthesizer := service.NewSynthesizer(provider, cfg.SynthesisTimeout)
	goalService := service.NewGoalService(goalRepository, progressRepository, synthesizer, emailService, archive)
	authService := service.NewAuthService(cfg.JWTSecret, cfg.IsProduction(), cfg.JWTExpiry)

	return &App{
		Cfg:          cfg,
		DB:           database,
		AuthService:  authService,
		EmailService: emailService,
		Synthesizer:  synthesizer,
		GoalService:  goalService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return db.Close(a.DB)
	}
	return nil
}
