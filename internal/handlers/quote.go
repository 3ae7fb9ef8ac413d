package handlers

//go:generate mockgen -source=quote.go -destination=quote_mock.go -package=handlers

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

// Quoter prices a prospective swap.
type Quoter interface {
	Quote(ctx context.Context, from, to string, amount, feePct float64) (swap.Quote, error)
}

// NewQuoteHandler returns rate, output and fee for a swap.
// @Summary Quote a swap
// @Description Computes rate, output and fee from the current prices. Raw values are unrounded; text values are rounded to 8 places.
// @Tags swap
// @Accept json
// @Produce json
// @Param request body models.QuoteRequest true "Quote request"
// @Success 200 {object} models.QuoteResponse "Quote"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.ErrorResponse "Quote unavailable"
// @Failure 502 {object} models.ErrorResponse "Failed to load prices"
// @Failure 503 {object} models.ErrorResponse "Prices are loading"
// @Router /swap/quote [post]
func NewQuoteHandler(quoter Quoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		q, err := quoter.Quote(r.Context(), req.From, req.To, req.InputAmount, req.FeePct)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrQuoteUnavailable):
				writeError(w, http.StatusUnprocessableEntity, msgQuoteMissing)
			case writePriceError(w, err):
			default:
				logger.Log.Errorw("failed to quote swap", "from", req.From, "to", req.To, "error", err)
				writeError(w, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.QuoteResponse{
			Rate:         q.Rate,
			OutputAmount: q.OutputAmount,
			FeeAmount:    q.FeeAmount,
			OutputText:   swap.RoundTo(q.OutputAmount, swap.DisplayDecimals),
			FeeText:      swap.RoundTo(q.FeeAmount, swap.DisplayDecimals),
			RateText:     swap.RateText(swap.NormalizeSymbol(req.From), swap.NormalizeSymbol(req.To), q.Rate),
		})
	}
}
