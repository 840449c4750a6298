package server

import (
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/analyze"
	"github.com/sells-group/storescout/internal/model"
)

func (s *Server) handleSaveToDatabase(w http.ResponseWriter, r *http.Request) {
	token := s.requestToken(r)
	if token == "" {
		s.writeError(w, http.StatusBadRequest, "no search token")
		return
	}
	result, ok := s.cfg.Cache.Get(token)
	if !ok {
		s.writeError(w, http.StatusNotFound, "search results expired or not found")
		return
	}

	names := make([]string, 0, len(result.ByRetailer))
	for name := range result.ByRetailer {
		names = append(names, name)
	}
	sort.Strings(names)

	saved := 0
	for _, name := range names {
		record, ok := model.RetailerFromSearch(name, result.ByRetailer[name].Stores, time.Now())
		if !ok {
			continue
		}
		if err := s.cfg.Store.AppendRetailer(record); err != nil {
			s.log.Error("save retailer failed", zap.String("retailer", name), zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "could not save retailer")
			return
		}
		saved++
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"saved_retailers": saved,
		"total_stores":    result.TotalFound,
	})
}

type indexRequest struct {
	Index int `json:"index"`
}

func (s *Server) retailerIndexOp(w http.ResponseWriter, r *http.Request, op func(int) error) {
	var req indexRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := op(req.Index); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "index": req.Index})
}

func (s *Server) handleRemoveRetailer(w http.ResponseWriter, r *http.Request) {
	s.retailerIndexOp(w, r, s.cfg.Store.RemoveRetailer)
}

func (s *Server) handleRestoreRetailer(w http.ResponseWriter, r *http.Request) {
	s.retailerIndexOp(w, r, s.cfg.Store.RestoreRetailer)
}

func (s *Server) handleDeleteRetailer(w http.ResponseWriter, r *http.Request) {
	s.retailerIndexOp(w, r, s.cfg.Store.DeleteRetailer)
}

func (s *Server) handleClearDatabase(w http.ResponseWriter, _ *http.Request) {
	if err := s.cfg.Store.ClearRetailers(); err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not clear database")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleRetailerDatabase(w http.ResponseWriter, _ *http.Request) {
	// Normalize stale records (closed stores, drifted counts) on every load.
	if _, err := s.cfg.Store.MigrateRetailers(); err != nil {
		s.log.Warn("retailer migration failed", zap.Error(err))
	}

	records, err := s.cfg.Store.LoadRetailers()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not load database")
		return
	}

	active := model.ActiveRetailers(records)
	totalStores := 0
	for _, rec := range active {
		totalStores += len(rec.Stores)
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"retailers":       records,
		"total_retailers": len(records),
		"active":          len(active),
		"total_stores":    totalStores,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, _ *http.Request) {
	records, err := s.cfg.Store.LoadRetailers()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not load database")
		return
	}
	uploads, err := s.cfg.Store.LoadMarkets()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not load markets")
		return
	}

	// Only the most recent market upload drives reflex flags.
	var markets []model.MarketRow
	if len(uploads) > 0 {
		markets = uploads[len(uploads)-1].Rows
	}

	reports := analyze.Analyze(records, markets)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"cities":       reports,
		"total_cities": len(reports),
	})
}
