package models

// SumResponse represents the result of 1+2+...+n
// swagger:model SumResponse
type SumResponse struct {
	// Strategy used
	// example: exact
	Strategy string `json:"strategy"`

	// Upper bound
	// example: 100
	N int64 `json:"n"`

	// Decimal result
	// example: 5050
	Result string `json:"result"`
}

// ErrorResponse represents a generic error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// HealthResponse reports whether price data is available
// swagger:model HealthResponse
type HealthResponse struct {
	// loading, ready or failed
	// example: ready
	Status string `json:"status"`

	// Number of priced tokens
	// example: 32
	Tokens int `json:"tokens"`
}
