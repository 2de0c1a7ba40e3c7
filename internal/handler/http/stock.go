package handler

import (
	"errors"
	"net/http"

	"github.com/mkcho/brewstation/internal/models"
)

type StockService interface {
	// Snapshot returns the full current snapshot
	Snapshot() (models.Snapshot, error)
	// Reading returns a single stock reading by key
	Reading(key string) (any, error)
}

// StockHandler represents HTTP handler for stock telemetry requests
type StockHandler struct {
	svc StockService
}

// NewStockHandler creates new StockHandler instance
func NewStockHandler(svc StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

// GetStock returns a single stock reading selected by the type query
// parameter, or the full snapshot when type is omitted
func (sh *StockHandler) GetStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("type")

		if key == "" {
			snap, err := sh.svc.Snapshot()
			if err != nil {
				writeError(w, http.StatusOK, "no stock data available")
				return
			}
			writeJSON(w, http.StatusOK, snap)
			return
		}

		value, err := sh.svc.Reading(key)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrNoSnapshot):
				writeError(w, http.StatusOK, "no stock data available")
			case errors.Is(err, models.ErrReadingNotFound):
				writeError(w, http.StatusOK, "unknown stock type")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{key: value})
	}
}
