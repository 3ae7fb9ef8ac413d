package swap

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		value    float64
		decimals int
		want     string
	}{
		{value: 1.23, decimals: 4, want: "1.23"},
		{value: 1.0, decimals: 2, want: "1"},
		{value: 0.99, decimals: 8, want: "0.99"},
		{value: 2.5, decimals: 0, want: "3"},
		{value: -2.5, decimals: 0, want: "-3"},
		{value: 0.00005, decimals: 4, want: "0.0001"},
		{value: -0.00005, decimals: 4, want: "-0.0001"},
		{value: -0.00001, decimals: 4, want: "0"},
		{value: 123456.789, decimals: 1, want: "123456.8"},
		{value: 0, decimals: 3, want: "0"},
		{value: 7, decimals: -2, want: "7"},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.value, 'g', -1, 64), func(t *testing.T) {
			assert.Equal(t, tt.want, RoundTo(tt.value, tt.decimals))
		})
	}
}

func TestRoundTo_NonFinite(t *testing.T) {
	assert.Equal(t, "", RoundTo(math.NaN(), 2))
	assert.Equal(t, "", RoundTo(math.Inf(1), 2))
	assert.Equal(t, "", RoundTo(math.Inf(-1), 2))
}

func TestRoundTo_Idempotent(t *testing.T) {
	values := []float64{0, 1, -1, 0.1, 1.00005, 2.99995, 1234.56789, -98.76543, 1e-9, 1e15 + 0.3, math.Pi, -math.E}

	for _, x := range values {
		once := RoundTo(x, 4)
		parsed, err := strconv.ParseFloat(once, 64)
		require.NoError(t, err)
		assert.Equal(t, once, RoundTo(parsed, 4), "x=%v", x)
	}
}
