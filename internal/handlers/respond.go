package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
)

// Error messages returned to clients.
const (
	msgInvalidBody    = "Invalid request body"
	msgPricesLoading  = "Prices are loading"
	msgPricesFailed   = "Failed to load prices"
	msgQuoteMissing   = "Quote unavailable for the selected tokens and amount"
	msgInternalServer = "Internal server error"
)

// writeJSON writes v as a JSON response with status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, models.ErrorResponse{Error: msg})
}

// writePriceError maps price availability errors to status codes.
// It reports false when err is not one of them.
func writePriceError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, services.ErrPricesLoading):
		w.Header().Set("Retry-After", "1")
		writeError(w, http.StatusServiceUnavailable, msgPricesLoading)
	case errors.Is(err, services.ErrPriceFeedFailed):
		writeError(w, http.StatusBadGateway, msgPricesFailed)
	default:
		return false
	}
	return true
}
