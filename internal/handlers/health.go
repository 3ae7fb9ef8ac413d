package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// PriceStatusReader reports the price book lifecycle.
type PriceStatusReader interface {
	Status() swap.Status
	Book() (*swap.PriceBook, error)
}

// NewHealthHandler reports whether price data is available.
// @Summary Health
// @Description Reports the price book status. Responds 503 once the initial price load has failed.
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse "Loading or ready"
// @Failure 503 {object} models.HealthResponse "Failed"
// @Router /health [get]
func NewHealthHandler(prices PriceStatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := prices.Status()
		resp := models.HealthResponse{Status: string(status)}
		if book, err := prices.Book(); err == nil {
			resp.Tokens = book.Len()
		}

		code := http.StatusOK
		if status == swap.StatusFailed {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, resp)
	}
}
