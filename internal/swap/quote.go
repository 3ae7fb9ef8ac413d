package swap

import (
	"fmt"
	"math"
	"strconv"
)

// Quote is the derived rate, output and fee for a prospective conversion.
// It is never stored and no rounding is applied to its fields.
type Quote struct {
	Rate         float64
	OutputAmount float64
	FeeAmount    float64
}

// ComputeQuote converts inputAmount of from into to using the prices in book.
// The fee is charged proportionally to the pre-fee converted value, in units of to.
// ok is false when either price is missing or inputAmount is not a finite positive number.
func ComputeQuote(book *PriceBook, from, to string, inputAmount, feePct float64) (q Quote, ok bool) {
	priceFrom, ok := book.Lookup(from)
	if !ok {
		return Quote{}, false
	}
	priceTo, ok := book.Lookup(to)
	if !ok || priceTo <= 0 {
		return Quote{}, false
	}
	if !isFinite(inputAmount) || inputAmount <= 0 {
		return Quote{}, false
	}

	rate := priceFrom / priceTo
	feeFactor := clampFee(feePct) / 100
	effective := 1 - feeFactor

	return Quote{
		Rate:         rate,
		OutputAmount: inputAmount * effective * rate,
		FeeAmount:    inputAmount * rate * feeFactor,
	}, true
}

// RateText renders the rate line shown under the swap form.
func RateText(from, to string, rate float64) string {
	if !isFinite(rate) || rate <= 0 {
		return ""
	}
	return fmt.Sprintf("1 %s ≈ %s %s", from, strconv.FormatFloat(rate, 'f', -1, 64), to)
}

func clampFee(feePct float64) float64 {
	if math.IsNaN(feePct) {
		return 0
	}
	return math.Min(100, math.Max(0, feePct))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
