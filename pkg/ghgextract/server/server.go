// Package server exposes document extraction over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ukaji3/ghgextract-go/pkg/ghgextract"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/logging"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/models"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/output"
	"github.com/ukaji3/ghgextract-go/pkg/ghgextract/source"
)

// DefaultMaxBodyBytes limits the size of an uploaded Document AI document.
const DefaultMaxBodyBytes = 64 << 20

// Server is the HTTP front end for extraction.
type Server struct {
	router       *chi.Mux
	server       *http.Server
	opts         ghgextract.Options
	maxBodyBytes int64
}

// New creates a server whose requests default to opts. Requests may
// override the mode and keywords; each request logs through the default
// logger tagged with its request ID.
func New(opts ghgextract.Options) *Server {
	s := &Server{
		router:       chi.NewRouter(),
		opts:         opts,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/extract", s.handleExtract)
	})
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract runs extraction over a Document AI JSON body and responds
// with the records as TSV.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sector, company := q.Get("sector"), q.Get("company")
	if sector == "" || company == "" {
		writeError(w, http.StatusBadRequest, "sector and company are required")
		return
	}

	opts := s.opts
	if m := q.Get("mode"); m != "" {
		mode, err := ghgextract.ParseMode(m)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.Mode = mode
	}
	if kw := q.Get("keywords"); kw != "" {
		opts.Keywords = strings.Split(kw, ",")
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "document too large")
			return
		}
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	doc, err := source.DecodeDocAIJSON(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	extractionID := uuid.NewString()
	opts.Logger = logging.FromContext(r.Context()).With("extraction_id", extractionID)

	src := models.Source{Sector: sector, Company: company}
	result := ghgextract.ExtractDocument(doc, src, opts)
	opts.Logger.Info("document done",
		"sector", sector, "company", company,
		"records", len(result.Records), "diagnostics", len(result.Diagnostics))

	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("X-Extraction-ID", extractionID)
	w.Header().Set("X-Diagnostic-Count", fmt.Sprint(len(result.Diagnostics)))
	w.WriteHeader(http.StatusOK)
	if err := output.NewTSVWriter(w, opts.ShouldIncludeUnit()).WriteAll(result.Records); err != nil {
		opts.Logger.Error("write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
