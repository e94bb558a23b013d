package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open connects to the Postgres survey archive via the pgx stdlib
// driver and verifies the connection.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open archive: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open archive: verify postgres connection: %w", err)
	}

	return db, nil
}
