package models

// SwapSubmission is the event published for every accepted swap.
type SwapSubmission struct {
	SubmissionID string  `json:"submission_id"` // SubmissionID is a unique identifier of the swap
	Timestamp    int64   `json:"timestamp"`     // Timestamp is the Unix time (seconds) of acceptance
	From         string  `json:"from"`          // From is the send token
	To           string  `json:"to"`            // To is the receive token
	InputAmount  float64 `json:"input_amount"`  // InputAmount is the amount of From sent
	FeePct       float64 `json:"fee_pct"`       // FeePct is the fee percentage applied
	Rate         float64 `json:"rate"`          // Rate is price(From)/price(To)
	OutputAmount float64 `json:"output_amount"` // OutputAmount is the amount of To received
	FeeAmount    float64 `json:"fee_amount"`    // FeeAmount is the fee in units of To
}

// SanitizeRequest represents the JSON body for amount sanitization
// swagger:model SanitizeRequest
type SanitizeRequest struct {
	// Raw keystroke buffer
	// example: 007.5
	Raw string `json:"raw"`

	// Value before the edit
	// example: 07.
	Previous string `json:"previous"`
}

// SanitizeResponse represents the canonical amount text
// swagger:model SanitizeResponse
type SanitizeResponse struct {
	// Canonical amount text
	// example: 7.5
	Value string `json:"value"`
}

// QuoteRequest represents the JSON body for a swap quote
// swagger:model QuoteRequest
type QuoteRequest struct {
	// Send token
	// required: true
	// example: USDC
	From string `json:"from"`

	// Receive token
	// required: true
	// example: ETH
	To string `json:"to"`

	// Amount of the send token
	// required: true
	// example: 2500
	InputAmount float64 `json:"inputAmount"`

	// Fee percentage
	// example: 0.3
	FeePct float64 `json:"feePct"`
}

// QuoteResponse represents a computed swap quote
// swagger:model QuoteResponse
type QuoteResponse struct {
	// price(from)/price(to)
	// example: 0.0004
	Rate float64 `json:"rate"`

	// Amount received after fee
	// example: 0.9988
	OutputAmount float64 `json:"outputAmount"`

	// Fee in units of the receive token
	// example: 0.0012
	FeeAmount float64 `json:"feeAmount"`

	// Rounded output for display
	// example: 0.9988
	OutputText string `json:"outputText"`

	// Rounded fee for display
	// example: 0.0012
	FeeText string `json:"feeText"`

	// Rate line for display
	// example: 1 USDC ≈ 0.0004 ETH
	RateText string `json:"rateText"`
}

// SwapRequest represents the JSON body for a swap submission
// swagger:model SwapRequest
type SwapRequest struct {
	// Send token
	// required: true
	// example: USDC
	From string `json:"from"`

	// Receive token
	// required: true
	// example: ETH
	To string `json:"to"`

	// Amount of the send token as entered
	// required: true
	// example: 2500
	InputAmount string `json:"inputAmount"`

	// Fee percentage
	// example: 0.3
	FeePct float64 `json:"feePct"`
}

// SwapResponse represents an accepted swap
// swagger:model SwapResponse
type SwapResponse struct {
	// Success message
	// example: Swap submitted
	Message string `json:"message"`

	// Accepted submission
	Submission SwapSubmission `json:"submission"`
}

// SwapErrorResponse represents a rejected quote or swap
// swagger:model SwapErrorResponse
type SwapErrorResponse struct {
	// Error message
	// example: Send and receive tokens must differ.
	Error string `json:"error"`

	// Field level messages
	Fields map[string]string `json:"fields,omitempty"`
}
