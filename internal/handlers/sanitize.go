package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// NewSanitizeHandler canonicalises amount text typed into the swap form.
// @Summary Sanitize amount
// @Description Strips everything but digits and one decimal point. An edit adding a second point returns the previous value.
// @Tags swap
// @Accept json
// @Produce json
// @Param request body models.SanitizeRequest true "Raw and previous text"
// @Success 200 {object} models.SanitizeResponse "Canonical text"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /swap/sanitize [post]
func NewSanitizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SanitizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		writeJSON(w, http.StatusOK, models.SanitizeResponse{Value: swap.Sanitize(req.Raw, req.Previous)})
	}
}
