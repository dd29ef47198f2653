package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/romangod6/sitemapgen/internal/models"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// ErrNoHistory is returned when history is requested but no store is configured.
var ErrNoHistory = errors.New("run history is not configured (set history.driver and history.dsn)")

// Store keeps a history of generated sitemaps. Generation never reads it back.
type Store interface {
	Initialize() error
	Close() error

	RecordRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.Run, error)
	ListRuns(ctx context.Context, limit, offset int) ([]*models.Run, error)
}

// Open connects to the store for driver and creates its tables.
func Open(driver, dsn string) (Store, error) {
	if driver == "" || dsn == "" {
		return nil, ErrNoHistory
	}

	var (
		store Store
		err   error
	)
	switch driver {
	case DriverSQLite:
		store, err = NewSQLiteStore(dsn)
	case DriverPostgres:
		store, err = NewPostgresStore(dsn)
	default:
		return nil, fmt.Errorf("unsupported history driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history store: %w", driver, err)
	}

	if err := store.Initialize(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize history tables: %w", err)
	}
	return store, nil
}
