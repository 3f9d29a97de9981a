package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroPrice is the fallback for negative or unparsable input.
const zeroPrice = "0.00"

// NormalizePrice coerces raw to a non-negative decimal string with exactly
// two fractional digits. Negative or unparsable input becomes "0.00".
func NormalizePrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zeroPrice
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return zeroPrice
	}
	return d.StringFixed(2)
}
