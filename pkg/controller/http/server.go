package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, ingestUC interfaces.Ingest, reportUC interfaces.Report) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := NewFeedbackHandler(ingestUC, reportUC)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Post("/feedback", handler.HandleSubmitFeedback)
		r.Get("/feedback/{id}", handler.HandleGetFeedback)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", handler.HandleListReports)
			r.Get("/{id}", handler.HandleGetReport)
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "feedpulse",
	})
}

// writeJSON writes a JSON response with the given status
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response with the status derived from the
// domain error
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrInvalidFeedback):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrFeedbackNotFound), errors.Is(err, model.ErrReportNotFound):
		status = http.StatusNotFound
	}

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
