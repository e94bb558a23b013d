package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	_ "modernc.org/sqlite"

	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/ports"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// A second pool connection would see its own empty :memory: database.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func testSurvey(name string) *domain.Survey {
	return &domain.Survey{
		Name:      name,
		Offsets:   domain.Offsets{Inline: 1, Lateral: -1},
		CreatedAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		Corrections: []domain.Correction{
			{GPS: domain.Point{X: 0, Y: 0}, Sensor: domain.Undefined()},
			{GPS: domain.Point{X: 1, Y: 0}, Sensor: domain.SensorPoint{X: 2, Y: -1}},
			{GPS: domain.Point{X: 2, Y: 0}, Sensor: domain.Undefined()},
		},
	}
}

func TestSqliteSurveyRepositoryRoundTrip(t *testing.T) {
	repo := NewSqliteSurveyRepository(openTestDB(t))
	ctx := context.Background()

	want := testSurvey("roundtrip")
	id, err := repo.SaveSurvey(ctx, want)
	if err != nil {
		t.Fatalf("save survey: %v", err)
	}
	if id == 0 {
		t.Fatal("save survey returned id 0")
	}

	got, err := repo.GetSurvey(ctx, id)
	if err != nil {
		t.Fatalf("get survey: %v", err)
	}

	want.ID = id
	// NULL sensor columns round-trip back to NaN.
	if diff := cmp.Diff(want, got, cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("survey mismatch (-want +got):\n%s", diff)
	}
	if got.Corrections[0].Sensor.Defined() {
		t.Error("endpoint sensor point came back defined, want undefined")
	}
	if !got.Corrections[1].Sensor.Defined() {
		t.Error("interior sensor point came back undefined")
	}
}

func TestSqliteSurveyRepositoryNotFound(t *testing.T) {
	repo := NewSqliteSurveyRepository(openTestDB(t))

	_, err := repo.GetSurvey(context.Background(), 42)
	if !errors.Is(err, ports.ErrSurveyNotFound) {
		t.Fatalf("error = %v, want ErrSurveyNotFound", err)
	}
}

func TestSqliteSurveyRepositoryList(t *testing.T) {
	repo := NewSqliteSurveyRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.SaveSurvey(ctx, testSurvey("first")); err != nil {
		t.Fatalf("save survey: %v", err)
	}
	if _, err := repo.SaveSurvey(ctx, testSurvey("second")); err != nil {
		t.Fatalf("save survey: %v", err)
	}

	surveys, err := repo.ListSurveys(ctx)
	if err != nil {
		t.Fatalf("list surveys: %v", err)
	}

	if len(surveys) != 2 {
		t.Fatalf("listed %d surveys, want 2", len(surveys))
	}
	if surveys[0].Name != "second" || surveys[1].Name != "first" {
		t.Errorf("order = [%q, %q], want newest first", surveys[0].Name, surveys[1].Name)
	}
	if len(surveys[0].Corrections) != 0 {
		t.Errorf("listing loaded %d corrections, want none", len(surveys[0].Corrections))
	}
}
