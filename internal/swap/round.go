package swap

import (
	"github.com/shopspring/decimal"
)

// RoundTo rounds value half away from zero to decimals places for display.
// Trailing zeros and a bare trailing decimal point are dropped; non-finite values render as "".
func RoundTo(value float64, decimals int) string {
	if !isFinite(value) {
		return ""
	}
	if decimals < 0 {
		decimals = 0
	}
	return decimal.NewFromFloat(value).Round(int32(decimals)).String()
}
