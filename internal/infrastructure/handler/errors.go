// Package handler internal/infrastructure/handler/errors.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rbaiju151/CurrenseeHW3/internal/application/service"
	"github.com/rbaiju151/CurrenseeHW3/internal/domain/errs"
	"github.com/rbaiju151/CurrenseeHW3/internal/infrastructure/logger"
)

// sendErrorResponse sends a standardized error response
func sendErrorResponse(w http.ResponseWriter, log logger.Logger, message, description string, statusCode int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:       message,
		Status:      statusCode,
		Description: description,
		RequestID:   requestID,
	}

	log.Debug("Sending error response", map[string]interface{}{
		"request_id":  requestID,
		"status_code": statusCode,
		"message":     message,
	})

	json.NewEncoder(w).Encode(resp)
}

// sendFlowError maps a flow failure to an HTTP response by error kind. Rate
// limiting gets its own throttling message; everything else stays generic
// with the full detail attached.
func sendFlowError(w http.ResponseWriter, log logger.Logger, err error, requestID string) {
	var (
		rateLimitErr *errs.RateLimitError
		transportErr *errs.TransportError
		dataErr      *errs.DataShapeError
		configErr    *errs.ConfigurationError
	)

	switch {
	case errors.Is(err, service.ErrUnknownCountry):
		sendErrorResponse(w, log, "Unknown destination country",
			"The requested country is not in the directory", http.StatusNotFound, requestID)
	case errors.As(err, &rateLimitErr):
		sendErrorResponse(w, log, "Too many requests",
			"The rate provider is throttling requests. Try again in a bit.",
			http.StatusTooManyRequests, requestID)
	case errors.As(err, &transportErr):
		description := "HTTP error from an upstream provider."
		if transportErr.StatusCode != 0 {
			description = fmt.Sprintf("Upstream provider returned HTTP %d.", transportErr.StatusCode)
		}
		sendErrorResponse(w, log, "Upstream provider error", description,
			http.StatusBadGateway, requestID)
	case errors.As(err, &dataErr):
		sendErrorResponse(w, log, "Unexpected rate data", dataErr.Error(),
			http.StatusBadGateway, requestID)
	case errors.As(err, &configErr):
		sendErrorResponse(w, log, "Service misconfigured", configErr.Error(),
			http.StatusInternalServerError, requestID)
	default:
		sendErrorResponse(w, log, "Couldn't fetch rates", err.Error(),
			http.StatusInternalServerError, requestID)
	}
}
