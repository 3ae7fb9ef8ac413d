// Package sum computes 1 + 2 + ... + n with interchangeable strategies.
package sum

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
)

// MaxSafeInteger is the largest integer a float64 represents without gaps.
const MaxSafeInteger int64 = 1<<53 - 1

// MaxIterativeN is the largest n whose sum still fits in int64.
const MaxIterativeN int64 = 1<<32 - 1

// DefaultIterativeLimit bounds iterative requests when no limit is configured.
const DefaultIterativeLimit int64 = 100_000_000

// Strategy names accepted by Compute.
const (
	StrategyIterative  = "iterative"
	StrategyClosedForm = "closed-form"
	StrategyExact      = "exact"
)

// ErrUnknownStrategy is returned by Compute for unsupported strategy names.
var ErrUnknownStrategy = errors.New("unknown sum strategy")

// RangeError reports a sum that does not fit below MaxSafeInteger.
type RangeError struct {
	N int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sum of 1..%d exceeds max safe integer %d", e.N, MaxSafeInteger)
}

// Iterative adds 1..n one by one. It is exact while the accumulator does not overflow int64.
func Iterative(n int64) int64 {
	var total int64
	for i := int64(1); i <= n; i++ {
		total += i
	}
	return total
}

// ClosedForm evaluates n*(n+1)/2 in float64, halving the even factor first.
// Beyond MaxSafeInteger the result is silently imprecise.
func ClosedForm(n int64) float64 {
	if n <= 0 {
		return 0
	}
	f := float64(n)
	if n%2 == 0 {
		return (f / 2) * (f + 1)
	}
	return f * ((f + 1) / 2)
}

// ExactChecked evaluates n*(n+1)/2 in 256-bit integer arithmetic and fails with
// *RangeError when the result exceeds MaxSafeInteger.
func ExactChecked(n int64) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	a := uint256.NewInt(uint64(n))
	b := new(uint256.Int).AddUint64(a, 1)

	product, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return 0, &RangeError{N: n}
	}
	result := product.Rsh(product, 1)
	if result.GtUint64(uint64(MaxSafeInteger)) {
		return 0, &RangeError{N: n}
	}
	return int64(result.Uint64()), nil
}

var strategies = map[string]func(n int64) (string, error){
	StrategyIterative: func(n int64) (string, error) {
		return strconv.FormatInt(Iterative(n), 10), nil
	},
	StrategyClosedForm: func(n int64) (string, error) {
		return strconv.FormatFloat(ClosedForm(n), 'f', -1, 64), nil
	},
	StrategyExact: func(n int64) (string, error) {
		v, err := ExactChecked(n)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	},
}

// Compute runs the named strategy and renders the result in decimal.
func Compute(strategy string, n int64) (string, error) {
	fn, ok := strategies[strategy]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	return fn(n)
}
