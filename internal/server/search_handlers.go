package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/search"
)

type singleSearchRequest struct {
	RetailerName string `json:"retailer_name"`
	Location     string `json:"location"`
	Radius       int    `json:"radius"`
}

func (s *Server) handleSingleSearch(w http.ResponseWriter, r *http.Request) {
	var req singleSearchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	req.RetailerName = strings.TrimSpace(req.RetailerName)
	req.Location = strings.TrimSpace(req.Location)
	if req.RetailerName == "" {
		s.writeError(w, http.StatusBadRequest, "retailer_name is required")
		return
	}
	if req.Location == "" {
		s.writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	if req.Radius <= 0 {
		req.Radius = s.cfg.DefaultRadius
	}

	stores := s.cfg.Search.SearchRetailer(r.Context(), req.RetailerName, req.Location, req.Radius)
	s.cfg.Tracker.AddSearches(1)
	s.cfg.Tracker.AddGeocodes(1)
	s.cfg.Tracker.AddDetails(len(stores))

	s.writeJSON(w, http.StatusOK, map[string]any{
		"retailer_name": req.RetailerName,
		"stores":        stores,
		"total_found":   len(stores),
	})
}

type batchSearchRequest struct {
	RetailerName  string   `json:"retailer_name"`
	RetailerNames []string `json:"retailer_names"`
}

func (s *Server) handleBatchSearch(w http.ResponseWriter, r *http.Request) {
	var req batchSearchRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	retailers := req.RetailerNames
	if len(retailers) == 0 && strings.TrimSpace(req.RetailerName) != "" {
		retailers = []string{req.RetailerName}
	}
	var cleaned []string
	for _, name := range retailers {
		if n := strings.TrimSpace(name); n != "" {
			cleaned = append(cleaned, n)
		}
	}
	if len(cleaned) == 0 {
		s.writeError(w, http.StatusBadRequest, "at least one retailer name is required")
		return
	}

	result := s.cfg.Search.BatchSearch(r.Context(), cleaned, search.DefaultLocations())
	s.cfg.Tracker.AddSearches(result.APICalls)
	s.cfg.Tracker.AddGeocodes(result.APICalls)
	s.cfg.Tracker.AddDetails(result.TotalFound)

	token := s.cfg.Cache.Put(result)
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	s.log.Info("batch search complete",
		zap.Strings("retailers", cleaned),
		zap.Int("total_found", result.TotalFound),
		zap.Int("api_calls", result.APICalls),
	)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"token":  token,
		"result": result,
	})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
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
	s.writeJSON(w, http.StatusOK, result)
}

type storeDetailsRequest struct {
	PlaceID string `json:"place_id"`
}

func (s *Server) handleStoreDetails(w http.ResponseWriter, r *http.Request) {
	var req storeDetailsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.PlaceID) == "" {
		s.writeError(w, http.StatusBadRequest, "place_id is required")
		return
	}

	details, err := s.cfg.Places.PlaceDetails(r.Context(), req.PlaceID, nil)
	if err != nil {
		s.log.Warn("store details lookup failed", zap.String("place_id", req.PlaceID), zap.Error(err))
		s.writeError(w, http.StatusBadGateway, "details lookup failed")
		return
	}
	s.cfg.Tracker.AddDetails(1)
	s.writeJSON(w, http.StatusOK, details)
}

// requestToken finds the search token in the cookie, query, or header.
func (s *Server) requestToken(r *http.Request) string {
	if c, err := r.Cookie(tokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	return r.URL.Query().Get("token")
}
