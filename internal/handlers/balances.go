package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/balances"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// NewBalancesHandler turns wallet balances into display rows.
// @Summary Wallet balance rows
// @Description Drops empty balances, sorts by blockchain priority and values each row with the current prices. Rows are valued at 0 while prices are unavailable.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.BalancesRequest true "Wallet balances"
// @Success 200 {object} models.BalancesResponse "Rows"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /wallet/balances [post]
func NewBalancesHandler(prices PriceBookReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BalancesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		var lookup balances.PriceLookup
		if book, err := prices.Book(); err == nil {
			lookup = book
		}

		rows := balances.Rows(req.Balances, lookup)
		if rows == nil {
			rows = []models.BalanceRow{}
		}
		writeJSON(w, http.StatusOK, models.BalancesResponse{Rows: rows})
	}
}
