package models

// WalletBalance is a holding of one currency on one blockchain.
type WalletBalance struct {
	Currency   string  `json:"currency"`   // Currency symbol
	Amount     float64 `json:"amount"`     // Held amount
	Blockchain string  `json:"blockchain"` // Chain the balance lives on
}

// BalanceRow is a wallet balance prepared for display.
// swagger:model BalanceRow
type BalanceRow struct {
	// Stable row key
	// example: ETH-Ethereum
	Key string `json:"key"`

	// Currency symbol
	// example: ETH
	Currency string `json:"currency"`

	// Blockchain
	// example: Ethereum
	Blockchain string `json:"blockchain"`

	// Held amount
	// example: 1.5
	Amount float64 `json:"amount"`

	// Amount formatted for display
	// example: 1.5
	Formatted string `json:"formatted"`

	// Value in the quote unit
	// example: 2468.89
	USDValue float64 `json:"usd_value"`

	// Blockchain priority
	// example: 4
	Priority int `json:"priority"`
}

// BalancesRequest represents the JSON body for building balance rows
// swagger:model BalancesRequest
type BalancesRequest struct {
	// Wallet balances
	Balances []WalletBalance `json:"balances"`
}

// BalancesResponse represents sorted balance rows
// swagger:model BalancesResponse
type BalancesResponse struct {
	// Rows ordered by blockchain priority
	Rows []BalanceRow `json:"rows"`
}
