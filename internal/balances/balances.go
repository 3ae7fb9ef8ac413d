// Package balances prepares wallet balances for display.
package balances

import (
	"sort"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
)

// FormatDecimals is the maximum number of fraction digits shown for an amount.
const FormatDecimals = 8

// DefaultPriority ranks blockchains missing from the priority table.
const DefaultPriority = 0

var priorities = map[string]int{
	"Osmosis":  5,
	"Ethereum": 4,
	"Arbitrum": 3,
	"Zilliqa":  2,
	"Neo":      1,
}

// Priority returns the display rank of a blockchain. Higher ranks sort first.
func Priority(blockchain string) int {
	if p, ok := priorities[blockchain]; ok {
		return p
	}
	return DefaultPriority
}

// PriceLookup resolves a unit price for a currency.
type PriceLookup interface {
	Lookup(symbol string) (float64, bool)
}

// Rows drops empty balances, orders the rest by blockchain priority and attaches
// formatted amounts, values and stable keys. A missing price values the row at 0.
func Rows(balances []models.WalletBalance, prices PriceLookup) []models.BalanceRow {
	rows := make([]models.BalanceRow, 0, len(balances))
	for _, b := range balances {
		priority := Priority(b.Blockchain)
		if priority < 0 || b.Amount <= 0 {
			continue
		}

		var price float64
		if prices != nil {
			price, _ = prices.Lookup(b.Currency)
		}

		rows = append(rows, models.BalanceRow{
			Key:        Key(b),
			Currency:   b.Currency,
			Blockchain: b.Blockchain,
			Amount:     b.Amount,
			Formatted:  swap.RoundTo(b.Amount, FormatDecimals),
			USDValue:   price * b.Amount,
			Priority:   priority,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Priority > rows[j].Priority
	})
	return rows
}

// Key identifies a balance row independently of its position.
func Key(b models.WalletBalance) string {
	return b.Currency + "-" + b.Blockchain
}
