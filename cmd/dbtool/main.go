package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"transect-offset-service/internal/adapters/repositories"
	"transect-offset-service/internal/config"
	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/platform/db"
	"transect-offset-service/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	archive, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer archive.Close()

	log.Println("Initializing archive schema...")
	if err := repositories.InitArchiveSchema(archive); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/surveys.json")
	log.Println("Archiving seed surveys...")

	repo := repositories.NewPostgresSurveyRepository(archive)
	n, err := archiveSeeds(context.Background(), repo, seedPath)
	if err != nil {
		log.Fatalf("archiving failed: %v", err)
	}
	log.Printf("Archived %d surveys.", n)
}

func archiveSeeds(ctx context.Context, repo *repositories.PostgresSurveyRepository, seedPath string) (int, error) {
	seeds, err := repositories.LoadSeeds(seedPath)
	if err != nil {
		return 0, err
	}

	for _, seed := range seeds {
		corrections, err := services.Corrections(seed.Transect(), seed.Offsets())
		if err != nil {
			return 0, err
		}

		survey := &domain.Survey{
			Name:        seed.Name,
			Offsets:     seed.Offsets(),
			CreatedAt:   time.Now().UTC(),
			Corrections: corrections,
		}
		if _, err := repo.SaveSurvey(ctx, survey); err != nil {
			return 0, err
		}
	}

	return len(seeds), nil
}
