package handlers

//go:generate mockgen -source=prices.go -destination=prices_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// PriceBookReader returns the current price book.
type PriceBookReader interface {
	Book() (*swap.PriceBook, error)
}

// PriceRefresher reloads prices from the feed.
type PriceRefresher interface {
	Refresh(ctx context.Context) (*swap.PriceBook, error)
}

// NewPricesHandler returns the priced tokens.
// @Summary List tokens
// @Description Returns every token with a usable price, sorted by symbol, with its icon URL
// @Tags prices
// @Produce json
// @Success 200 {object} models.PricesResponse "Priced tokens"
// @Failure 502 {object} models.ErrorResponse "Failed to load prices"
// @Failure 503 {object} models.ErrorResponse "Prices are loading"
// @Router /prices [get]
func NewPricesHandler(prices PriceBookReader, iconBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := prices.Book()
		if err != nil {
			if !writePriceError(w, err) {
				logger.Log.Errorw("failed to read price book", "error", err)
				writeError(w, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, pricesResponse(book, iconBaseURL))
	}
}

// NewRefreshPricesHandler reloads prices from the feed.
// @Summary Refresh prices
// @Description Fetches the price feed again. On failure the previous prices stay in force.
// @Tags prices
// @Produce json
// @Success 200 {object} models.PricesResponse "Refreshed tokens"
// @Failure 502 {object} models.ErrorResponse "Failed to load prices"
// @Router /prices/refresh [post]
func NewRefreshPricesHandler(prices PriceRefresher, iconBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err := prices.Refresh(r.Context())
		if err != nil {
			if !writePriceError(w, err) {
				logger.Log.Errorw("failed to refresh prices", "error", err)
				writeError(w, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, pricesResponse(book, iconBaseURL))
	}
}

func pricesResponse(book *swap.PriceBook, iconBaseURL string) models.PricesResponse {
	symbols := book.Symbols()
	tokens := make([]models.Token, 0, len(symbols))
	for _, s := range symbols {
		price, _ := book.Lookup(s)
		tokens = append(tokens, models.Token{
			Symbol:  s,
			Price:   price,
			IconURL: swap.IconURL(iconBaseURL, s),
		})
	}
	return models.PricesResponse{Tokens: tokens}
}
