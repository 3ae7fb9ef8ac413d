package swap

import (
	"math"
	"sort"
	"strings"
)

// Form field names used as FieldErrors keys.
const (
	FieldFrom        = "from"
	FieldTo          = "to"
	FieldInputAmount = "inputAmount"
	FieldFeePct      = "feePct"
)

// Validation messages.
const (
	MsgSelectFrom     = "Select send token"
	MsgSelectTo       = "Select receive token"
	MsgAmountRequired = "Please enter send amount."
	MsgAmountPositive = "Send amount must be greater than 0."
	MsgFeeRange       = "Fee must be between 0 and 100."
	MsgTokensDiffer   = "Send and receive tokens must differ."
)

// Request is the validated swap form state.
type Request struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	InputAmount string  `json:"inputAmount"`
	FeePct      float64 `json:"feePct"`
}

// FieldErrors maps a form field to a human-readable message.
type FieldErrors map[string]string

// Error implements error.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid swap request: " + strings.Join(parts, "; ")
}

// Validate checks a swap request and returns the errors keyed by field.
// A nil result means the request is valid.
func Validate(req Request) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(req.From) == "" {
		errs[FieldFrom] = MsgSelectFrom
	}
	if strings.TrimSpace(req.To) == "" {
		errs[FieldTo] = MsgSelectTo
	}

	if strings.TrimSpace(req.InputAmount) == "" {
		errs[FieldInputAmount] = MsgAmountRequired
	} else if v, ok := ParseAmount(req.InputAmount); !ok || v <= 0 {
		errs[FieldInputAmount] = MsgAmountPositive
	}

	if math.IsNaN(req.FeePct) || req.FeePct < 0 || req.FeePct > 100 {
		errs[FieldFeePct] = MsgFeeRange
	}

	from, to := NormalizeSymbol(req.From), NormalizeSymbol(req.To)
	if from != "" && to != "" && from == to {
		errs[FieldTo] = MsgTokensDiffer
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FirstError returns the message shown in the form's common error banner.
func (e FieldErrors) FirstError() string {
	if msg := e[FieldInputAmount]; msg != "" {
		return msg
	}
	return e[FieldTo]
}
