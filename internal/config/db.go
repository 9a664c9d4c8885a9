package config

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	connMu sync.Mutex
	conn   *gorm.DB
)

// Connect returns the process-wide gorm handle, dialing on first use. The
// mutex is held across the dial so concurrent callers wait on the same
// attempt instead of opening duplicate connections; a failed attempt leaves
// the cache empty and the next caller redials.
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	connMu.Lock()
	defer connMu.Unlock()

	if conn != nil {
		return conn, nil
	}
	if dsn == "" {
		return nil, errors.New("database dsn is not configured")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	conn = db
	return conn, nil
}
