package service

import "github.com/mkcho/brewstation/internal/models"

// TelemetrySource is interface for reading the latest device snapshot
type TelemetrySource interface {
	// Read returns the current snapshot, false while absent
	Read() (models.Snapshot, bool)
	// ReadField returns a single reading from the current snapshot
	ReadField(key string) (any, error)
}

// StockService implements StockService interface
type StockService struct {
	src TelemetrySource
}

// NewStockService creates new StockService instance
func NewStockService(src TelemetrySource) *StockService {
	return &StockService{src: src}
}

// Snapshot returns the full current snapshot
func (ss *StockService) Snapshot() (models.Snapshot, error) {
	snap, ok := ss.src.Read()
	if !ok {
		return nil, models.ErrNoSnapshot
	}

	return snap, nil
}

// Reading returns a single stock reading by key
func (ss *StockService) Reading(key string) (any, error) {
	return ss.src.ReadField(key)
}
