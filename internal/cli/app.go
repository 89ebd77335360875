// Package cli implements the interactive admin tool for the messagely
// store: registration, login checks, user listings, and message threads,
// driven directly against the database.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"messagely/internal/config"
	"messagely/internal/logging"
	"messagely/internal/repositories/repomanager"
	"messagely/internal/services"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	userService    *services.UserService
	messageService *services.MessageService
	reader         *bufio.Reader
}

// NewApp opens the database, applies pending migrations, and wires the
// services. The returned App owns the connection handle; call Close at
// shutdown.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := repomanager.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:         cfg,
		logger:         logger,
		db:             db,
		userService:    services.NewUserService(db, rm, cfg),
		messageService: services.NewMessageService(db, rm),
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}
