// Package handler internal/infrastructure/handler/snapshot_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rbaiju151/CurrenseeHW3/internal/application/service"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/middleware"
)

// SnapshotHandler handles HTTP requests for single-destination snapshots
type SnapshotHandler struct {
	service *service.SnapshotService
	logger  logger.Logger
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(service *service.SnapshotService, log logger.Logger) *SnapshotHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &SnapshotHandler{
		service: service,
		logger:  log,
	}
}

// GetSnapshot handles fetching the today/~1y/~3y/~5y rate snapshot for one
// destination
func (h *SnapshotHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	home := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("home")))
	countryName := strings.TrimSpace(r.URL.Query().Get("country"))

	h.logger.Info("Handling snapshot request", map[string]interface{}{
		"request_id": requestID,
		"home":       home,
		"country":    countryName,
	})

	if home == "" || countryName == "" {
		sendErrorResponse(w, h.logger, "Missing parameters",
			"Both 'home' and 'country' query parameters are required",
			http.StatusBadRequest, requestID)
		return
	}

	if !service.IsHomeCurrency(home) {
		h.logger.Warn("Unsupported home currency", map[string]interface{}{
			"request_id": requestID,
			"home":       home,
		})
		sendErrorResponse(w, h.logger, "Unsupported home currency",
			"Home currency must be one of: "+strings.Join(service.HomeCurrencies, ", "),
			http.StatusBadRequest, requestID)
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), home, countryName)
	if err != nil {
		sendFlowError(w, h.logger, err, requestID)
		return
	}

	resp := SnapshotResponse{
		Country:        snapshot.Country.Name,
		CountryCode:    snapshot.Country.Code,
		FlagURL:        snapshot.Country.FlagURL,
		Capital:        snapshot.Country.Capital,
		Region:         snapshot.Country.Region,
		HomeCurrency:   snapshot.HomeCurrency,
		DestCurrency:   snapshot.Country.CurrencyCode,
		CurrencyName:   snapshot.Country.CurrencyName,
		CurrencySymbol: snapshot.Country.CurrencySymbol,
		RateToday:      snapshot.RateToday,
		OneYearAgo:     historicalRateResponse(snapshot.OneYearAgo),
		ThreeYearsAgo:  historicalRateResponse(snapshot.ThreeYearsAgo),
		FiveYearsAgo:   historicalRateResponse(snapshot.FiveYearsAgo),
		Verdict:        string(snapshot.Verdict),
		ElapsedMS:      snapshot.ElapsedMS,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func historicalRateResponse(h service.HistoricalRate) HistoricalRateResponse {
	return HistoricalRateResponse{
		Date:      h.Date.Format("2006-01-02"),
		Rate:      h.Rate,
		PctChange: h.PctChange,
	}
}

// RegisterRoutes registers the snapshot handler routes
func (h *SnapshotHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/snapshot", h.GetSnapshot).Methods("GET")

	h.logger.Info("Snapshot routes registered", map[string]interface{}{
		"routes": []string{
			"GET /snapshot",
		},
	})
}
