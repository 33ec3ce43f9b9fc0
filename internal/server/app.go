// Package server boots the user store: it opens and tunes the PostgreSQL
// connection pool, applies migrations and vends the users repository.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdb/internal/logging"
	"github.com/dmitrijs2005/userdb/internal/server/config"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userdb/internal/server/repositories/users"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	manager repomanager.RepositoryManager
	users   users.Repository
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp opens the pool described by c, applies the pool limits and verifies
// connectivity within c.PingTimeout.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), c.PingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return newApp(c, logger, db, repomanager.NewPostgresRepositoryManager()), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, m repomanager.RepositoryManager) *App {
	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		manager: m,
		users:   m.Users(db),
	}
}

// Users returns the repository bound to the application pool.
func (app *App) Users() users.Repository {
	return app.users
}

// Run applies migrations when configured, reports the number of stored users
// and, with Wait set, blocks until ctx is cancelled. The pool is closed on return.
func (app *App) Run(ctx context.Context) (err error) {
	defer func() {
		if cerr := app.db.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("db close error: %w", cerr))
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	if app.config.MigrateOnStart {
		if err := app.manager.RunMigrations(ctx, app.db); err != nil {
			return fmt.Errorf("migrations error: %w", err)
		}
		app.logger.Debug(ctx, "migrations applied")
	}

	count, err := app.users.GetUserCount(ctx)
	if err != nil {
		return err
	}
	app.logger.Info(ctx, "user store ready", "users", count, "max_open_conns", app.config.MaxOpenConns)

	if app.config.Wait {
		<-ctx.Done()
		app.logger.Info(ctx, "shutting down")
	}

	return nil
}
