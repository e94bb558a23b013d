package api

import (
	"net/http"

	"transect-offset-service/internal/api/handlers"
	"transect-offset-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.SurveyRepository) http.Handler {
	mux := http.NewServeMux()

	correctionHandler := &handlers.CorrectionHandler{Repo: repo}
	surveyHandler := &handlers.SurveyHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/corrections", correctionHandler.Correct)
	mux.HandleFunc("/surveys", surveyHandler.List)

	return loggingMiddleware(mux)
}
