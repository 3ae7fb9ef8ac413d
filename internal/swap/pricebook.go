package swap

import (
	"math"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// PriceBook maps currency symbols to unit prices in a common quote unit.
// It is immutable after Build and safe for concurrent reads.
type PriceBook struct {
	prices map[string]float64
}

// NormalizeSymbol returns the canonical form of a currency symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Build creates a PriceBook from feed records.
// Records with an empty currency or a non-finite or non-positive price are dropped.
// Later records with the same symbol overwrite earlier ones.
func Build(records []models.PriceRecord) *PriceBook {
	prices := make(map[string]float64, len(records))
	for _, rec := range records {
		symbol := NormalizeSymbol(rec.Currency)
		if symbol == "" {
			continue
		}
		if math.IsNaN(rec.Price) || math.IsInf(rec.Price, 0) || rec.Price <= 0 {
			continue
		}
		prices[symbol] = rec.Price
	}
	return &PriceBook{prices: prices}
}

// Lookup returns the price of symbol and whether it is known.
func (b *PriceBook) Lookup(symbol string) (float64, bool) {
	if b == nil {
		return 0, false
	}
	price, ok := b.prices[NormalizeSymbol(symbol)]
	return price, ok
}

// Symbols returns the known symbols in ascending order.
func (b *PriceBook) Symbols() []string {
	if b == nil {
		return nil
	}
	symbols := make([]string, 0, len(b.prices))
	for symbol := range b.prices {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Len returns the number of known symbols.
func (b *PriceBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.prices)
}

// Prices returns a copy of the underlying symbol to price mapping.
func (b *PriceBook) Prices() map[string]float64 {
	out := make(map[string]float64, b.Len())
	if b == nil {
		return out
	}
	for symbol, price := range b.prices {
		out[symbol] = price
	}
	return out
}
