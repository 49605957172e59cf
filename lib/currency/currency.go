package currency

import (
	"math"
	"strconv"
	"strings"
)

// ParseDollars converts a scraped dollar string such as "$1,234,567" or
// "$10.5M" into a number. The "$", "," and "M" characters are stripped
// before parsing. Note that the "M" suffix is removed without scaling:
// "$10.5M" parses to 10.5, not 10500000. The cap table's dollar columns
// carry full-dollar figures, so the cleaning path uses ParseAmount, which
// never touches "M".
func ParseDollars(value string) (float64, bool) {
	return parseStripped(value, "$,M")
}

// ParseAmount converts a dollar string into a number, stripping only "$"
// and comma thousand-separators. A leading "-" survives the strip, so
// over-cap values like "-$5,000,000" parse to a negative number.
func ParseAmount(value string) (float64, bool) {
	return parseStripped(value, "$,")
}

// A value that does not parse yields (NaN, false) rather than an error:
// one bad cell must not stop a batch run.
func parseStripped(value string, cutset string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, value)
	cleaned = strings.TrimSpace(cleaned)

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN(), false
	}
	return parsed, true
}
