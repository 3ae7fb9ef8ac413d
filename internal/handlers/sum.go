package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/sum"
)

// NewSumHandler computes 1 + 2 + ... + n.
// Iterative sums above maxIterativeN are refused to bound request time. A non-positive
// maxIterativeN means sum.DefaultIterativeLimit; the limit never exceeds sum.MaxIterativeN.
// @Summary Sum to n
// @Description Computes 1+2+...+n with the iterative, closed-form or exact strategy (default exact). The exact strategy refuses results above 2^53-1.
// @Tags sum
// @Produce json
// @Param n path int true "Upper bound"
// @Param strategy query string false "iterative, closed-form or exact"
// @Success 200 {object} models.SumResponse "Result"
// @Failure 400 {object} models.ErrorResponse "Invalid n or strategy"
// @Failure 422 {object} models.ErrorResponse "Result exceeds max safe integer"
// @Router /sum/{n} [get]
func NewSumHandler(maxIterativeN int64) http.HandlerFunc {
	limit := iterativeLimit(maxIterativeN)
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.ParseInt(chi.URLParam(r, "n"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "n must be an integer")
			return
		}

		strategy := r.URL.Query().Get("strategy")
		if strategy == "" {
			strategy = sum.StrategyExact
		}
		if strategy == sum.StrategyIterative && n > limit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("n must not exceed %d for the iterative strategy", limit))
			return
		}

		result, err := sum.Compute(strategy, n)
		if err != nil {
			var rangeErr *sum.RangeError
			switch {
			case errors.As(err, &rangeErr):
				writeError(w, http.StatusUnprocessableEntity, rangeErr.Error())
			case errors.Is(err, sum.ErrUnknownStrategy):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, msgInternalServer)
			}
			return
		}

		writeJSON(w, http.StatusOK, models.SumResponse{Strategy: strategy, N: n, Result: result})
	}
}

func iterativeLimit(configured int64) int64 {
	switch {
	case configured <= 0:
		return sum.DefaultIterativeLimit
	case configured > sum.MaxIterativeN:
		return sum.MaxIterativeN
	default:
		return configured
	}
}
