package models

// PriceRecord is a single entry of the external price feed.
type PriceRecord struct {
	Currency string  `json:"currency"`       // Currency symbol, e.g. ETH
	Price    float64 `json:"price"`          // Unit price in the common quote unit
	Date     string  `json:"date,omitempty"` // Feed timestamp, when present
}

// Token describes a tradable token
// swagger:model Token
type Token struct {
	// Token symbol
	// example: ETH
	Symbol string `json:"symbol"`

	// Unit price in the quote unit
	// example: 1645.93
	Price float64 `json:"price"`

	// Icon location
	// example: https://raw.githubusercontent.com/Switcheo/token-icons/main/tokens/ETH.svg
	IconURL string `json:"icon_url"`
}

// PricesResponse represents the list of tokens with prices
// swagger:model PricesResponse
type PricesResponse struct {
	// Known tokens, ordered by symbol
	Tokens []Token `json:"tokens"`
}

// PricesErrorResponse represents an error response when prices are not available
// swagger:model PricesErrorResponse
type PricesErrorResponse struct {
	// Error message
	// example: Fetching token prices
	Error string `json:"error"`
}
