// Package handler internal/infrastructure/handler/directory_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rbaiju151/CurrenseeHW3/internal/application/service"
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/repository"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/middleware"
)

// DirectoryHandler serves the country directory and the fixed home-currency
// set.
type DirectoryHandler struct {
	directory repository.CountryDirectory
	logger    logger.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory repository.CountryDirectory, log logger.Logger) *DirectoryHandler {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &DirectoryHandler{
		directory: directory,
		logger:    log,
	}
}

// ListCountries handles retrieving the normalized country list
func (h *DirectoryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	countries, err := h.directory.LoadCountries(r.Context())
	if err != nil {
		h.logger.Error("Failed to load country directory", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		sendFlowError(w, h.logger, err, requestID)
		return
	}

	h.logger.Info("Country directory served", map[string]interface{}{
		"request_id": requestID,
		"countries":  len(countries),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(countries)
}

// ListHomeCurrencies handles retrieving the supported home currencies
func (h *DirectoryHandler) ListHomeCurrencies(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CurrenciesResponse{Currencies: service.HomeCurrencies})
}

// RegisterRoutes registers the directory handler routes
func (h *DirectoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/countries", h.ListCountries).Methods("GET")
	router.HandleFunc("/currencies", h.ListHomeCurrencies).Methods("GET")

	h.logger.Info("Directory routes registered", map[string]interface{}{
		"routes": []string{
			"GET /countries",
			"GET /currencies",
		},
	})
}
