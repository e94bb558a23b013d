package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite survey schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSurveysQuery := `
	CREATE TABLE IF NOT EXISTS surveys (
		survey_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		inline_offset REAL NOT NULL,
		lateral_offset REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createSurveyPointsQuery := `
	CREATE TABLE IF NOT EXISTS survey_points (
		survey_id INTEGER NOT NULL REFERENCES surveys(survey_id),
		seq INTEGER NOT NULL,
		xgps REAL NOT NULL,
		ygps REAL NOT NULL,
		xsens REAL,
		ysens REAL,
		PRIMARY KEY (survey_id, seq)
	);
	`

	statements := []string{
		createSurveysQuery,
		createSurveyPointsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
