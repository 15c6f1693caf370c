package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"todopane/pkg/utils"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Open connects to the database named by dsn and ensures the schema.
// For sqlite3 the dsn is a file path; a leading ~ expands to the home directory.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	switch driver {
	case "", "sqlite", DriverSQLite:
		driver = DriverSQLite
		path, err := prepareSQLitePath(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	case DriverPostgres, "postgresql":
		driver = DriverPostgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	s := NewSQLStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	utils.Log("Opened %s store", driver)
	return s, nil
}

func prepareSQLitePath(dbPath string) (string, error) {
	// Expand tilde to home directory if present
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dbPath = homeDir + dbPath[1:]
	}

	// SQLite creates the file but not its directory
	dbDir := filepath.Dir(dbPath)
	if dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return "", err
		}
	}
	return dbPath, nil
}

// placeholders picks the bind style squirrel should emit for the driver
func placeholders(driverName string) sq.PlaceholderFormat {
	if sqlx.BindType(driverName) == sqlx.DOLLAR {
		return sq.Dollar
	}
	return sq.Question
}
