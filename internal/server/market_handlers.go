package server

import (
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/fetcher"
	"github.com/sells-group/storescout/internal/model"
)

// receiveUpload saves one multipart spreadsheet to a temp file and returns
// its path plus the original filename. The caller removes the file.
func (s *Server) receiveUpload(w http.ResponseWriter, r *http.Request, field string) (path, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return "", "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "no file provided")
		return "", "", false
	}
	defer file.Close() //nolint:errcheck

	path, err = s.saveUploadTemp(file, header.Filename)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return "", "", false
	}
	return path, header.Filename, true
}

func (s *Server) saveUploadTemp(file multipart.File, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".csv" && ext != ".xlsx" {
		return "", eris.Errorf("unsupported file type %q: use .csv or .xlsx", ext)
	}

	tmp, err := os.CreateTemp("", "storescout-upload-*"+ext)
	if err != nil {
		return "", eris.Wrap(err, "server: create temp file")
	}
	defer tmp.Close() //nolint:errcheck

	if _, err := tmp.ReadFrom(file); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return "", eris.Wrap(err, "server: save upload")
	}
	return tmp.Name(), nil
}

func (s *Server) handleMarketUpload(w http.ResponseWriter, r *http.Request) {
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

	entries := fetcher.FirstColumn(rows, 0)
	// Tolerate a header row on the city column.
	if len(entries) > 0 {
		switch strings.ToLower(entries[0]) {
		case "city", "market", "city, state":
			entries = entries[1:]
		}
	}
	if len(entries) == 0 {
		s.writeError(w, http.StatusBadRequest, "no cities found in file")
		return
	}

	marketRows := s.cfg.Importer.Import(r.Context(), entries)
	upload := model.NewMarketUpload(filename, entries, marketRows, time.Now())
	if err := s.cfg.Store.AppendMarket(upload); err != nil {
		s.log.Error("save market upload failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "could not save markets")
		return
	}

	s.log.Info("market list imported",
		zap.String("filename", filename),
		zap.Int("entries", len(entries)),
		zap.Int("cities", len(marketRows)),
	)
	s.writeJSON(w, http.StatusOK, upload)
}

func (s *Server) handleMarketsDatabase(w http.ResponseWriter, _ *http.Request) {
	uploads, err := s.cfg.Store.LoadMarkets()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not load markets")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"uploads":       uploads,
		"total_uploads": len(uploads),
	})
}

func (s *Server) handleDeleteMarket(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}
	if err := s.cfg.Store.DeleteMarket(index); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "index": index})
}

func (s *Server) handleClearMarkets(w http.ResponseWriter, _ *http.Request) {
	if err := s.cfg.Store.ClearMarkets(); err != nil {
		s.writeError(w, http.StatusInternalServerError, "could not clear markets")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
