package server

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/crossref"
	"github.com/sells-group/storescout/internal/fetcher"
	"github.com/sells-group/storescout/internal/model"
)

// defaultMatchThresholdMiles bounds how far apart a found store and an
// uploaded row may be and still reconcile by location.
const defaultMatchThresholdMiles = 0.5

// handleUploadResults ingests one results spreadsheet as a retailer record.
// When the request carries a live search token, the uploaded rows are also
// cross-referenced against the cached search results.
func (s *Server) handleUploadResults(w http.ResponseWriter, r *http.Request) {
	path, filename, ok := s.receiveUpload(w, r, "file")
	if !ok {
		return
	}
	defer os.Remove(path) //nolint:errcheck

	rows, err := fetcher.ReadRows(path)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "could not read spreadsheet")
		return
	}

	retailerName := strings.TrimSpace(r.FormValue("retailer_name"))
	if retailerName == "" {
		retailerName = fetcher.RetailerNameFromFilename(filename)
	}

	stores := fetcher.StoresFromRows(rows, retailerName)
	if len(stores) == 0 {
		s.writeError(w, http.StatusBadRequest, "no stores found in file")
		return
	}

	record := model.Retailer{
		RetailerName: retailerName,
		Stores:       stores,
		TotalStores:  len(stores),
		TotalCities:  model.CountCities(stores),
		DateAdded:    time.Now(),
		Source:       "uploaded",
		Filename:     filename,
	}
	if err := s.cfg.Store.AppendRetailer(record); err != nil {
		s.log.Error("save uploaded retailer failed", zap.String("retailer", retailerName), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not save retailer")
		return
	}

	resp := map[string]any{
		"retailer_name": retailerName,
		"total_stores":  len(stores),
		"total_cities":  record.TotalCities,
	}

	if token := s.requestToken(r); token != "" {
		if cached, found := s.cfg.Cache.Get(token); found {
			threshold := defaultMatchThresholdMiles
			if v, err := strconv.ParseFloat(r.FormValue("threshold"), 64); err == nil && v > 0 {
				threshold = v
			}
			resp["cross_reference"] = crossref.CrossReference(cached.Stores, fetcher.RowMaps(rows), threshold)
		}
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleBulkUpload ingests several results spreadsheets in one request,
// deriving each retailer name from its filename.
func (s *Server) handleBulkUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		s.writeError(w, http.StatusBadRequest, "no files provided")
		return
	}

	type fileResult struct {
		Filename     string `json:"filename"`
		RetailerName string `json:"retailer_name,omitempty"`
		TotalStores  int    `json:"total_stores,omitempty"`
		Error        string `json:"error,omitempty"`
	}

	var results []fileResult
	saved := 0
	for _, header := range r.MultipartForm.File["files"] {
		res := fileResult{Filename: header.Filename}

		file, err := header.Open()
		if err != nil {
			res.Error = "could not open file"
			results = append(results, res)
			continue
		}
		path, err := s.saveUploadTemp(file, header.Filename)
		file.Close() //nolint:errcheck
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}

		rows, err := fetcher.ReadRows(path)
		os.Remove(path) //nolint:errcheck
		if err != nil {
			res.Error = "could not read spreadsheet"
			results = append(results, res)
			continue
		}

		retailerName := fetcher.RetailerNameFromFilename(header.Filename)
		stores := fetcher.StoresFromRows(rows, retailerName)
		if len(stores) == 0 {
			res.Error = "no stores found"
			results = append(results, res)
			continue
		}

		record := model.Retailer{
			RetailerName: retailerName,
			Stores:       stores,
			TotalStores:  len(stores),
			TotalCities:  model.CountCities(stores),
			DateAdded:    time.Now(),
			Source:       "uploaded",
			Filename:     header.Filename,
		}
		if err := s.cfg.Store.AppendRetailer(record); err != nil {
			res.Error = "could not save retailer"
			results = append(results, res)
			continue
		}

		res.RetailerName = retailerName
		res.TotalStores = len(stores)
		results = append(results, res)
		saved++
	}

	s.log.Info("bulk retailer upload",
		zap.Int("files", len(results)),
		zap.Int("saved", saved),
	)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"files": results,
		"saved": saved,
	})
}
