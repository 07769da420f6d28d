package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/pressly/goose/v3"

	"enrollform/internal/config"
	"enrollform/internal/logging"
	"enrollform/internal/migrations"
	"enrollform/internal/services"
	"enrollform/internal/store"
	"enrollform/internal/validation"

	_ "modernc.org/sqlite"
)

// App is the interactive shell: it owns the database handle, the user
// service and the current session display state.
type App struct {
	config      *config.Config
	users       services.UserService
	db          *sql.DB
	reader      *bufio.Reader
	activeEmail string
}

// runMigrations applies the embedded schema migrations.
func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// NewApp opens the local database, migrates it and wires the service
// stack. Call Close when done.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	logger := logging.NewDefault()
	st := store.New(db, logger)
	users := services.NewUserService(st, validation.New(), logger)

	a := &App{
		config: cfg,
		users:  users,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}

	// the session survives restarts; pick it up for the prompt
	if u, ok := users.ActiveProfile(ctx); ok {
		a.activeEmail = u.Email
	}
	return a, nil
}

// Close releases the database handle.
func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.activeEmail != ""
}

func (a *App) getStatus() string {
	if a.activeEmail == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.activeEmail)
}
