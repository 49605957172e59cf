package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Total Cap\nAllocations", "Total Cap Allocations"},
		{"Cap Space\nAll", "Cap Space All"},
		{"  Team \n", "Team"},
		{"Reserves\n  IR/PUP/NFI/SUSP", "Reserves IR/PUP/NFI/SUSP"},
		{"Dead Cap", "Dead Cap"},
		{"", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeHeader(test.input))
	}
}

func TestCollapseWhitespace(t *testing.T) {
	require.Equal(t, " a b ", CollapseWhitespace("\na \t b\n"))
}
