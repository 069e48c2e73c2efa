// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (logging, database, clock) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/registry-admin/internal/config"
	"github.com/JaimeStill/registry-admin/internal/migrations"
	"github.com/JaimeStill/registry-admin/pkg/clock"
	"github.com/JaimeStill/registry-admin/pkg/database"
	"github.com/JaimeStill/registry-admin/pkg/lifecycle"
	"github.com/JaimeStill/registry-admin/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Clock     clock.Clock

	dsn string
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Clock:     clock.NewSystem(),
		dsn:       cfg.Database.Dsn(),
	}, nil
}

// Start connects the database and brings the schema up to date.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := migrations.Up(i.dsn, i.Logger.With("system", "migrations")); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	return nil
}
