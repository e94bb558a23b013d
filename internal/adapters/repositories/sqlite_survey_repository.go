package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/platform/obs"
	"transect-offset-service/internal/ports"
)

// SQLite-backed implementation of the SurveyRepository port.
// Undefined sensor coordinates are stored as NULL and restored as NaN.
type SqliteSurveyRepository struct{ DB *sql.DB }

func NewSqliteSurveyRepository(db *sql.DB) *SqliteSurveyRepository {
	return &SqliteSurveyRepository{DB: db}
}

// Persist a survey and its corrections in one transaction.
func (s *SqliteSurveyRepository) SaveSurvey(ctx context.Context, survey *domain.Survey) (id int64, err error) {
	defer obs.Time(ctx, "surveys.Save")(&err)

	if s.DB == nil {
		return 0, errors.New("sqlite survey repository: DB is nil")
	}
	if survey == nil {
		return 0, errors.New("save survey: survey is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save survey: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
	INSERT INTO surveys (
		name,
		inline_offset,
		lateral_offset,
		created_at
	)
	VALUES (?, ?, ?, ?);
	`, survey.Name, survey.Offsets.Inline, survey.Offsets.Lateral,
		survey.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("save survey: insert survey row: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save survey: last insert id: %w", err)
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
	VALUES (?, ?, ?, ?, ?, ?);
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
func (s *SqliteSurveyRepository) GetSurvey(ctx context.Context, id int64) (survey *domain.Survey, err error) {
	defer obs.Time(ctx, "surveys.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite survey repository: DB is nil")
	}

	var (
		name      string
		inline    float64
		lateral   float64
		createdAt string
	)
	err = s.DB.QueryRowContext(ctx, `
	SELECT
		name,
		inline_offset,
		lateral_offset,
		created_at
	FROM surveys
	WHERE survey_id = ?;
	`, id).Scan(&name, &inline, &lateral, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get survey id=%d: %w", id, ports.ErrSurveyNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get survey id=%d: query survey row: %w", id, err)
	}

	survey = &domain.Survey{
		ID:      id,
		Name:    name,
		Offsets: domain.Offsets{Inline: inline, Lateral: lateral},
	}
	if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		survey.CreatedAt = t
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		xgps,
		ygps,
		xsens,
		ysens
	FROM survey_points
	WHERE survey_id = ?
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

// Return all stored surveys without their point data, newest first.
func (s *SqliteSurveyRepository) ListSurveys(ctx context.Context) (surveys []*domain.Survey, err error) {
	defer obs.Time(ctx, "surveys.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite survey repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
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
			createdAt string
		)
		if err := rows.Scan(&id, &name, &inline, &lateral, &createdAt); err != nil {
			return nil, fmt.Errorf("list surveys: scan row: %w", err)
		}

		sv := &domain.Survey{
			ID:      id,
			Name:    name,
			Offsets: domain.Offsets{Inline: inline, Lateral: lateral},
		}
		if t, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
			sv.CreatedAt = t
		}
		surveys = append(surveys, sv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list surveys: row iteration: %w", err)
	}

	return surveys, nil
}

func nullableCoord(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func coordOrNaN(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}
