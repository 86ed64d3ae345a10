// Package database connects to the target database and loads generated
// datasets into it. One adapter covers PostgreSQL, MySQL and SQLite behind
// database/sql; the provider only decides the driver name and the
// placeholder format.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Lumos-Labs-HQ/stockforge/internal/config"
)

type Connection struct {
	DB       *sql.DB
	Provider string
	qb       squirrel.StatementBuilderType
}

func driverName(provider string) (string, error) {
	switch provider {
	case "postgresql", "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database provider: %s", provider)
	}
}

func placeholderFormat(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

// NewConnection opens and pings a connection using the URL from the
// environment variable the config names.
func NewConnection(ctx context.Context, cfg *config.Config) (*Connection, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	driver, err := driverName(cfg.Database.Provider)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{
		DB:       db,
		Provider: cfg.Database.Provider,
		qb:       squirrel.StatementBuilder.PlaceholderFormat(placeholderFormat(cfg.Database.Provider)),
	}, nil
}

func (c *Connection) Close() error {
	return c.DB.Close()
}
