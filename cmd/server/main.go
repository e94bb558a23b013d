package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"transect-offset-service/internal/adapters/repositories"
	"transect-offset-service/internal/api"
	"transect-offset-service/internal/config"
	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/services"
)

// main is the application composition root.
// It wires the SQLite survey store behind the repository port and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/surveys.db")
	seedPath := config.Get("SEED_PATH", "")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteSurveyRepository(db)

	// Demo surveys are seeded only into an empty store so restarts do
	// not duplicate them.
	if seedPath != "" {
		if err := seedSurveys(context.Background(), repo, seedPath); err != nil {
			log.Fatal(err)
		}
	}

	router := api.NewRouter(repo)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func seedSurveys(ctx context.Context, repo *repositories.SqliteSurveyRepository, seedPath string) error {
	existing, err := repo.ListSurveys(ctx)
	if err != nil {
		return fmt.Errorf("seed surveys: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seeds, err := repositories.LoadSeeds(seedPath)
	if err != nil {
		return fmt.Errorf("seed surveys: %w", err)
	}

	for _, seed := range seeds {
		corrections, err := services.Corrections(seed.Transect(), seed.Offsets())
		if err != nil {
			return fmt.Errorf("seed surveys: correct %q: %w", seed.Name, err)
		}

		survey := &domain.Survey{
			Name:        seed.Name,
			Offsets:     seed.Offsets(),
			CreatedAt:   time.Now().UTC(),
			Corrections: corrections,
		}
		if _, err := repo.SaveSurvey(ctx, survey); err != nil {
			return fmt.Errorf("seed surveys: save %q: %w", seed.Name, err)
		}
	}

	log.Printf("Seeded %d surveys from %s", len(seeds), seedPath)
	return nil
}
