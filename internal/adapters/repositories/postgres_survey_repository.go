package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/platform/obs"
	"transect-offset-service/internal/ports"
)

// Postgres-backed implementation of the SurveyRepository port, used by
// the archive tooling. Same storage model as the SQLite repository;
// placeholders and ID generation follow Postgres conventions.
type PostgresSurveyRepository struct{ DB *sql.DB }

func NewPostgresSurveyRepository(db *sql.DB) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{DB: db}
}

// Initialize the Postgres archive schema.
func InitArchiveSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init archive schema: DB is nil")
	}

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS surveys (
		survey_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		inline_offset DOUBLE PRECISION NOT NULL,
		lateral_offset DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS survey_points (
		survey_id BIGINT NOT NULL REFERENCES surveys(survey_id),
		seq INTEGER NOT NULL,
		xgps DOUBLE PRECISION NOT NULL,
		ygps DOUBLE PRECISION NOT NULL,
		xsens DOUBLE PRECISION,
		ysens DOUBLE PRECISION,
		PRIMARY KEY (survey_id, seq)
	);
	`,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init archive schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// Persist a survey and its corrections in one transaction.
func (p *PostgresSurveyRepository) SaveSurvey(ctx context.Context, survey *domain.Survey) (id int64, err error) {
	defer obs.Time(ctx, "archive.surveys.Save")(&err)

	if p.DB == nil {
		return 0, errors.New("postgres survey repository: DB is nil")
	}
	if survey == nil {
		return 0, errors.New("save survey: survey is nil")
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save survey: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
	INSERT INTO surveys (
		name,
		inline_offset,
		lateral_offset,
		created_at
	)
	VALUES ($1, $2, $3, $4)
	RETURNING survey_id;
	`, survey.Name, survey.Offsets.Inline, survey.Offsets.Lateral,
		survey.CreatedAt.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save survey: insert survey row: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO survey_points (
		survey_id,
		seq,
		xgps,
		ygps,
		xsens,
		ysens
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`)
	if err != nil {
		return 0, fmt.Errorf("save survey: prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range survey.Corrections {
		_, err := stmt.ExecContext(ctx, id, i,
			c.GPS.X, c.GPS.Y, nullableCoord(c.Sensor.X), nullableCoord(c.Sensor.Y))
		if err != nil {
			return 0, fmt.Errorf("save survey: insert point seq=%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save survey: commit tx: %w", err)
	}

	return id, nil
}

// Retrieve one survey including its corrections, ordered by sequence.
func (p *PostgresSurveyRepository) GetSurvey(ctx context.Context, id int64) (survey *domain.Survey, err error) {
	defer obs.Time(ctx, "archive.surveys.Get")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres survey repository: DB is nil")
	}

	var (
		name      string
		inline    float64
		lateral   float64
		createdAt time.Time
	)
	err = p.DB.QueryRowContext(ctx, `
	SELECT
		name,
		inline_offset,
		lateral_offset,
		created_at
	FROM surveys
	WHERE survey_id = $1;
	`, id).Scan(&name, &inline, &lateral, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get survey id=%d: %w", id, ports.ErrSurveyNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get survey id=%d: query survey row: %w", id, err)
	}

	survey = &domain.Survey{
		ID:        id,
		Name:      name,
		Offsets:   domain.Offsets{Inline: inline, Lateral: lateral},
		CreatedAt: createdAt.UTC(),
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT
		xgps,
		ygps,
		xsens,
		ysens
	FROM survey_points
	WHERE survey_id = $1
	ORDER BY seq;
	`, id)
	if err != nil {
		return nil, fmt.Errorf("get survey id=%d: query points: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			xgps, ygps float64
			xs, ys     sql.NullFloat64
		)
		if err := rows.Scan(&xgps, &ygps, &xs, &ys); err != nil {
			return nil, fmt.Errorf("get survey id=%d: scan point: %w", id, err)
		}
		survey.Corrections = append(survey.Corrections, domain.Correction{
			GPS:    domain.Point{X: xgps, Y: ygps},
			Sensor: domain.SensorPoint{X: coordOrNaN(xs), Y: coordOrNaN(ys)},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get survey id=%d: row iteration: %w", id, err)
	}

	return survey, nil
}

// Return all archived surveys without their point data, newest first.
func (p *PostgresSurveyRepository) ListSurveys(ctx context.Context) (surveys []*domain.Survey, err error) {
	defer obs.Time(ctx, "archive.surveys.List")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres survey repository: DB is nil")
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT
		survey_id,
		name,
		inline_offset,
		lateral_offset,
		created_at
	FROM surveys
	ORDER BY survey_id DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("list surveys: query surveys table: %w", err)
	}
	defer rows.Close()

	surveys = make([]*domain.Survey, 0, 16)
	for rows.Next() {
		var (
			id        int64
			name      string
			inline    float64
			lateral   float64
			createdAt time.Time
		)
		if err := rows.Scan(&id, &name, &inline, &lateral, &createdAt); err != nil {
			return nil, fmt.Errorf("list surveys: scan row: %w", err)
		}
		surveys = append(surveys, &domain.Survey{
			ID:        id,
			Name:      name,
			Offsets:   domain.Offsets{Inline: inline, Lateral: lateral},
			CreatedAt: createdAt.UTC(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list surveys: row iteration: %w", err)
	}

	return surveys, nil
}
