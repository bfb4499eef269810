package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var MigrationFS embed.FS

// NewMigrate returns a migrate instance reading the embedded migrations
func NewMigrate(databaseURL string) (*migrate.Migrate, error) {
	source, err := iofs.New(MigrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("error opening migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies all pending migrations
func RunMigrations(databaseURL string, log *zap.Logger) error {
	m, err := NewMigrate(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return nil
		}
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info("Migrations completed successfully")
	return nil
}
