package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDollars(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"$1,234,567", 1234567},
		{"$10.5M", 10.5},
		{"$1,234.5M", 1234.5},
		{"10.5", 10.5},
		{"255700000", 255700000},
		{"-$5,000,000", -5000000},
	}

	for _, test := range testCases {
		parsed, ok := ParseDollars(test.input)
		require.True(t, ok, test.input)
		require.Equal(t, test.expected, parsed, test.input)
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"$1,234,567", 1234567},
		{"$255,700,000", 255700000},
		{"-$5,000,000", -5000000},
		{"$17,026,838.5", 17026838.5},
		{"0", 0},
	}

	for _, test := range testCases {
		parsed, ok := ParseAmount(test.input)
		require.True(t, ok, test.input)
		require.Equal(t, test.expected, parsed, test.input)
	}
}

// the cleaning path must not strip "M", only "$" and ","
func TestParseAmountKeepsMagnitudeSuffix(t *testing.T) {
	_, ok := ParseAmount("$10.5M")
	require.False(t, ok)
}

func TestParseUnparseable(t *testing.T) {
	for _, input := range []string{"", "--", "N/A", "$", "Totals"} {
		parsed, ok := ParseDollars(input)
		require.False(t, ok, input)
		require.True(t, math.IsNaN(parsed), input)

		parsed, ok = ParseAmount(input)
		require.False(t, ok, input)
		require.True(t, math.IsNaN(parsed), input)
	}
}
