// Package server exposes the storescout HTTP API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/cache"
	"github.com/sells-group/storescout/internal/cost"
	"github.com/sells-group/storescout/internal/market"
	"github.com/sells-group/storescout/internal/model"
	"github.com/sells-group/storescout/internal/search"
	"github.com/sells-group/storescout/internal/store"
	"github.com/sells-group/storescout/pkg/places"
)

const tokenCookie = "search_token"

// Config wires the server's collaborators. Search and Places may be nil
// when no Maps API key is configured; the search endpoints then answer 503.
type Config struct {
	Search            *search.Service
	Places            places.Client
	Importer          *market.Importer
	Store             store.Store
	Cache             *cache.ResultCache
	Tracker           *cost.Tracker
	BillingConfigured bool
	DefaultRadius     int
	MaxUploadBytes    int64
}

// Server handles the HTTP API.
type Server struct {
	cfg Config
	log *zap.Logger
}

// New creates a Server.
func New(cfg Config) *Server {
	if cfg.DefaultRadius <= 0 {
		cfg.DefaultRadius = 50000
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 16 << 20
	}
	return &Server{
		cfg: cfg,
		log: zap.L().With(zap.String("component", "server")),
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.handleHealth)

	r.Post("/api/search", s.requireSearch(s.handleSingleSearch))
	r.Post("/search", s.requireSearch(s.handleBatchSearch))
	r.Get("/results", s.handleResults)
	r.Post("/api/store-details", s.requireSearch(s.handleStoreDetails))

	r.Post("/save-to-database", s.handleSaveToDatabase)
	r.Post("/remove-retailer", s.handleRemoveRetailer)
	r.Post("/restore-retailer", s.handleRestoreRetailer)
	r.Post("/delete-retailer", s.handleDeleteRetailer)
	r.Post("/clear-database", s.handleClearDatabase)
	r.Get("/retailer-database", s.handleRetailerDatabase)

	r.Post("/markets", s.handleMarketUpload)
	r.Get("/markets", s.handleMarketsDatabase)
	r.Post("/clear-markets", s.handleClearMarkets)
	r.Get("/api/markets-database", s.handleMarketsDatabase)
	r.Delete("/api/markets-database/{index}", s.handleDeleteMarket)
	r.Post("/api/markets-database/clear", s.handleClearMarkets)

	r.Get("/api/zip-cache", s.handleZipCache)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/upload-results-csv", s.handleUploadResults)
	r.Post("/bulk-upload-retailers", s.handleBulkUpload)
	r.Get("/api/billing", s.handleBilling)

	return r
}

// requireSearch guards endpoints that need the places provider.
func (s *Server) requireSearch(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Search == nil || s.cfg.Places == nil {
			s.writeError(w, http.StatusServiceUnavailable, "search is disabled: no Maps API key configured")
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleBilling(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cfg.Tracker.Snapshot(s.cfg.BillingConfigured))
}

// handleZipCache reports the market ZIP rows currently driving analysis:
// the rows of the most recent market upload.
func (s *Server) handleZipCache(w http.ResponseWriter, _ *http.Request) {
	uploads, err := s.cfg.Store.LoadMarkets()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not load markets")
		return
	}

	rows := []model.MarketRow{}
	if len(uploads) > 0 {
		rows = uploads[len(uploads)-1].Rows
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"cached_entries": len(rows),
		"data":           rows,
		"has_data":       len(rows) > 0,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a JSON request body into v. Returns false after writing
// a 400 when the body does not parse.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
