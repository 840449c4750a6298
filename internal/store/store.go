// Package store persists retailer and market data as flat JSON files.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/model"
)

const (
	retailerFile = "retailer_database.json"
	marketFile   = "markets_database.json"
)

// Store persists retailer records and market uploads.
type Store interface {
	LoadRetailers() ([]model.Retailer, error)
	SaveRetailers(records []model.Retailer) error
	AppendRetailer(r model.Retailer) error
	RemoveRetailer(index int) error
	RestoreRetailer(index int) error
	DeleteRetailer(index int) error
	ClearRetailers() error
	MigrateRetailers() (int, error)

	LoadMarkets() ([]model.MarketUpload, error)
	AppendMarket(u model.MarketUpload) error
	DeleteMarket(index int) error
	ClearMarkets() error
}

// FileStore keeps each collection in a pretty-printed JSON file under one
// directory. A missing or unreadable file reads as an empty collection so a
// fresh deployment needs no setup. All operations serialize on one mutex;
// the HTTP handlers call in from concurrent requests.
type FileStore struct {
	mu  sync.Mutex
	dir string
	now func() time.Time
	log *zap.Logger
}

// NewFileStore creates a FileStore rooted at dir, creating dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "store: create data dir %s", dir)
	}
	return &FileStore{
		dir: dir,
		now: time.Now,
		log: zap.L().With(zap.String("component", "store.file")),
	}, nil
}

// LoadRetailers reads every saved retailer record, soft-deleted ones
// included.
func (fs *FileStore) LoadRetailers() ([]model.Retailer, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.readRetailers()
}

// SaveRetailers replaces the whole retailer collection.
func (fs *FileStore) SaveRetailers(records []model.Retailer) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.writeRetailers(records)
}

// AppendRetailer adds one retailer record.
func (fs *FileStore) AppendRetailer(r model.Retailer) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, err := fs.readRetailers()
	if err != nil {
		return err
	}
	return fs.writeRetailers(append(records, r))
}

// RemoveRetailer soft-deletes the record at index, stamping the removal
// time so it can be restored later.
func (fs *FileStore) RemoveRetailer(index int) error {
	return fs.updateRetailer(index, func(r *model.Retailer) {
		now := fs.now()
		r.Removed = true
		r.RemovedDate = &now
	})
}

// RestoreRetailer clears the soft-delete flag on the record at index.
func (fs *FileStore) RestoreRetailer(index int) error {
	return fs.updateRetailer(index, func(r *model.Retailer) {
		r.Removed = false
		r.RemovedDate = nil
	})
}

// DeleteRetailer permanently removes the record at index.
func (fs *FileStore) DeleteRetailer(index int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, err := fs.readRetailers()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return eris.Errorf("store: retailer index %d out of range", index)
	}
	fs.log.Info("deleting retailer record",
		zap.Int("index", index),
		zap.String("retailer", records[index].RetailerName),
	)
	return fs.writeRetailers(append(records[:index], records[index+1:]...))
}

// ClearRetailers drops every retailer record.
func (fs *FileStore) ClearRetailers() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.writeRetailers([]model.Retailer{})
}

// MigrateRetailers normalizes stored records in place: permanently closed
// stores are dropped and the store and city counts are recomputed. It
// returns the number of records that changed. Safe to run repeatedly.
func (fs *FileStore) MigrateRetailers() (int, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, err := fs.readRetailers()
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range records {
		active := records[i].ActiveStores()
		cities := model.CountCities(active)
		if len(active) != len(records[i].Stores) ||
			records[i].TotalStores != len(active) ||
			records[i].TotalCities != cities {
			records[i].Stores = active
			records[i].TotalStores = len(active)
			records[i].TotalCities = cities
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}
	fs.log.Info("migrated retailer records", zap.Int("changed", changed))
	return changed, fs.writeRetailers(records)
}

// LoadMarkets reads every market upload.
func (fs *FileStore) LoadMarkets() ([]model.MarketUpload, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.readMarkets()
}

// AppendMarket adds one market upload.
func (fs *FileStore) AppendMarket(u model.MarketUpload) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	uploads, err := fs.readMarkets()
	if err != nil {
		return err
	}
	return fs.writeMarkets(append(uploads, u))
}

// DeleteMarket removes the upload at index.
func (fs *FileStore) DeleteMarket(index int) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	uploads, err := fs.readMarkets()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(uploads) {
		return eris.Errorf("store: market index %d out of range", index)
	}
	return fs.writeMarkets(append(uploads[:index], uploads[index+1:]...))
}

// ClearMarkets drops every market upload.
func (fs *FileStore) ClearMarkets() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.writeMarkets([]model.MarketUpload{})
}

func (fs *FileStore) updateRetailer(index int, mutate func(*model.Retailer)) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records, err := fs.readRetailers()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return eris.Errorf("store: retailer index %d out of range", index)
	}
	mutate(&records[index])
	return fs.writeRetailers(records)
}

func (fs *FileStore) readRetailers() ([]model.Retailer, error) {
	var records []model.Retailer
	if err := fs.readJSON(retailerFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (fs *FileStore) writeRetailers(records []model.Retailer) error {
	return fs.writeJSON(retailerFile, records)
}

func (fs *FileStore) readMarkets() ([]model.MarketUpload, error) {
	var uploads []model.MarketUpload
	if err := fs.readJSON(marketFile, &uploads); err != nil {
		return nil, err
	}
	return uploads, nil
}

func (fs *FileStore) writeMarkets(uploads []model.MarketUpload) error {
	return fs.writeJSON(marketFile, uploads)
}

func (fs *FileStore) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(fs.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			fs.log.Warn("could not read data file, treating as empty",
				zap.String("file", name),
				zap.Error(err),
			)
		}
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		fs.log.Warn("corrupt data file, treating as empty",
			zap.String("file", name),
			zap.Error(err),
		)
	}
	return nil
}

func (fs *FileStore) writeJSON(name string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "store: marshal %s", name)
	}
	if err := os.WriteFile(filepath.Join(fs.dir, name), data, 0o644); err != nil {
		return eris.Wrapf(err, "store: write %s", name)
	}
	return nil
}
