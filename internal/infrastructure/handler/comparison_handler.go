// Package handler internal/infrastructure/handler/comparison_handler.go
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

// ComparisonHandler handles HTTP requests for multi-destination comparisons
type ComparisonHandler struct {
	service *service.ComparisonService
	logger  logger.Logger
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(service *service.ComparisonService, log logger.Logger) *ComparisonHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &ComparisonHandler{
		service: service,
		logger:  log,
	}
}

// Compare handles ranking up to eight destinations by today-vs-1y change
func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid request body", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendErrorResponse(w, h.logger, "Invalid request body",
			"The request body could not be parsed as valid JSON", http.StatusBadRequest, requestID)
		return
	}

	home := strings.ToUpper(strings.TrimSpace(req.Home))

	h.logger.Info("Handling comparison request", map[string]interface{}{
		"request_id":   requestID,
		"home":         home,
		"destinations": len(req.Countries),
	})

	if !service.IsHomeCurrency(home) {
		sendErrorResponse(w, h.logger, "Unsupported home currency",
			"Home currency must be one of: "+strings.Join(service.HomeCurrencies, ", "),
			http.StatusBadRequest, requestID)
		return
	}

	if len(req.Countries) == 0 {
		sendErrorResponse(w, h.logger, "No destinations selected",
			"Pick at least one destination country", http.StatusBadRequest, requestID)
		return
	}

	if len(req.Countries) > service.MaxComparisonDestinations {
		sendErrorResponse(w, h.logger, "Too many destinations",
			"At most 8 destination countries can be compared at once",
			http.StatusBadRequest, requestID)
		return
	}

	comparison, err := h.service.Compare(r.Context(), home, req.Countries)
	if err != nil {
		sendFlowError(w, h.logger, err, requestID)
		return
	}

	resp := ComparisonResponse{
		HomeCurrency: comparison.HomeCurrency,
		Rows:         make([]ComparisonRowResponse, 0, len(comparison.Rows)),
		ElapsedMS:    comparison.ElapsedMS,
	}
	for _, row := range comparison.Rows {
		resp.Rows = append(resp.Rows, ComparisonRowResponse{
			Country:        row.Country,
			Currency:       row.Currency,
			RateToday:      row.RateToday,
			RateOneYearAgo: row.RateOneYearAgo,
			PctChange:      row.PctChange,
			Verdict:        string(row.Verdict),
		})
	}
	if len(resp.Rows) > 0 {
		resp.MostFavorable = &resp.Rows[0]
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// RegisterRoutes registers the comparison handler routes
func (h *ComparisonHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/comparisons", h.Compare).Methods("POST")

	h.logger.Info("Comparison routes registered", map[string]interface{}{
		"routes": []string{
			"POST /comparisons",
		},
	})
}
