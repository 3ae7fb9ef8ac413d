package handlers

//go:generate mockgen -source=swap.go -destination=swap_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// Submitter validates and submits swaps.
type Submitter interface {
	Submit(ctx context.Context, req swap.Request) (models.SwapSubmission, error)
}

// NewSwapHandler submits a swap.
// @Summary Submit a swap
// @Description Validates the form values, quotes them and submits the swap after a short processing delay.
// @Tags swap
// @Accept json
// @Produce json
// @Param request body models.SwapRequest true "Swap request"
// @Success 200 {object} models.SwapResponse "Swap submitted"
// @Failure 400 {object} models.SwapErrorResponse "Validation failed"
// @Failure 422 {object} models.SwapErrorResponse "Quote unavailable"
// @Failure 502 {object} models.ErrorResponse "Failed to load prices"
// @Failure 503 {object} models.ErrorResponse "Prices are loading"
// @Router /swap [post]
func NewSwapHandler(submitter Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.SwapErrorResponse{Error: msgInvalidBody})
			return
		}

		sub, err := submitter.Submit(r.Context(), swap.Request{
			From:        req.From,
			To:          req.To,
			InputAmount: req.InputAmount,
			FeePct:      req.FeePct,
		})
		if err != nil {
			var fieldErrs swap.FieldErrors
			switch {
			case errors.As(err, &fieldErrs):
				msg := fieldErrs.FirstError()
				if msg == "" {
					msg = fieldErrs.Error()
				}
				writeJSON(w, http.StatusBadRequest, models.SwapErrorResponse{Error: msg, Fields: fieldErrs})
			case errors.Is(err, services.ErrQuoteUnavailable):
				writeJSON(w, http.StatusUnprocessableEntity, models.SwapErrorResponse{Error: msgQuoteMissing})
			case writePriceError(w, err):
			default:
				logger.Log.Errorw("failed to submit swap", "error", err)
				writeError(w, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.SwapResponse{
			Message:    "Swap submitted",
			Submission: sub,
		})
	}
}
