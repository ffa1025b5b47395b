package db

import (
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/cafezinho/coffee-service/internal/config"
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know a bind
	// type for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// New opens (creating if absent) the SQLite database file and brings the
// schema up to date before returning the connection.
func New(cfg *config.Config) (*sqlx.DB, error) {
	dbConn, err := sqlx.Connect("sqlite", cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DB.Path, err)
	}

	log.Info().Str("path", cfg.DB.Path).Msg("Connected to SQLite")

	if err := applyMigrations(dbConn, cfg.DB.MigrationsPath); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return dbConn, nil
}

func applyMigrations(db *sqlx.DB, migrationsPath string) error {
	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migration instance: %w", err)
	}

	err = m.Up()
	if err == migrate.ErrNoChange {
		log.Info().Msg("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	log.Info().Msg("New migrations applied successfully")

	return nil
}
